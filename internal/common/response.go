package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response standard API envelope
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Pagination list metadata
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination computes pages = ceil(total / limit)
func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) > 0 {
		pages++
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

// OK returns a 200 success envelope
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// OKMessage returns a 200 success envelope with a message
func OKMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Message: message})
}

// Created returns a 201 success envelope
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data, Message: message})
}

// Fail returns a failure envelope with an explicit status
func Fail(c *gin.Context, status int, message string, err error) {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

// FailError maps a service error to its status through the error taxonomy:
// NotFound→404, Conflict→409, Validation→400, 그 외→500.
// ValidationError의 Reason 코드가 있으면 error 필드로 내려간다.
func FailError(c *gin.Context, message string, err error) {
	status := HTTPStatus(err)
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	var ve *ValidationError
	if errors.As(err, &ve) && ve.Reason != "" {
		resp.Message = ve.Message
		resp.Error = ve.Reason
	}
	c.JSON(status, resp)
}
