package domain

// Bulk target entity types
const (
	BulkTypePlatform    = "platform"
	BulkTypeCategory    = "category"
	BulkTypeServiceSlot = "serviceSlot"
)

// BulkStatusRequest toggles is_active for a batch of entities of one type
type BulkStatusRequest struct {
	IDs      []string `json:"ids" binding:"required,min=1"`
	IsActive bool     `json:"isActive"`
	Type     string   `json:"type" binding:"required,oneof=platform category serviceSlot"`
}

// BulkStatusItem per-id outcome of a bulk update
type BulkStatusItem struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// BulkStatusResult aggregate outcome of a bulk update
type BulkStatusResult struct {
	Updated int              `json:"updated"`
	Failed  int              `json:"failed"`
	Items   []BulkStatusItem `json:"items"`
}
