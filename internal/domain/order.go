package domain

import "time"

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order records a purchase of a service slot.
// 슬롯 삭제 가드의 참조 카운트 대상이다.
// Table: orders
type Order struct {
	ID            string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	ServiceSlotID string    `gorm:"column:service_slot_id;size:36;not null;index" json:"serviceSlotId"`
	Quantity      int       `gorm:"column:quantity" json:"quantity"`
	Amount        float64   `gorm:"column:amount" json:"amount"`
	Status        string    `gorm:"column:status;size:16;index" json:"status"`
	TargetURL     string    `gorm:"column:target_url;size:512" json:"targetUrl,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for Order model
func (Order) TableName() string {
	return "orders"
}
