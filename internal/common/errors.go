package common

import (
	"errors"
	"net/http"
)

// NotFoundError id가 해석되지 않을 때
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFound creates a NotFoundError
func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}

// ConflictError slug 중복 또는 종속 행이 남아 있어 삭제가 차단될 때.
// Dependents는 메시지에 포함된 종속 항목 수 (slug 충돌이면 0).
type ConflictError struct {
	Message    string
	Dependents int64
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflict creates a ConflictError for slug collisions
func NewConflict(message string) error {
	return &ConflictError{Message: message}
}

// NewDependencyConflict creates a ConflictError for blocked deletions
func NewDependencyConflict(message string, dependents int64) error {
	return &ConflictError{Message: message, Dependents: dependents}
}

// ValidationError 잘못된 입력 (업로드 MIME/크기/개수 위반 포함).
// Reason은 기계 판독용 코드 (FILE_TOO_LARGE 등), 없으면 빈 문자열.
type ValidationError struct {
	Message string
	Reason  string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation creates a ValidationError
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// NewValidationReason creates a ValidationError with a machine-readable reason code
func NewValidationReason(message, reason string) error {
	return &ValidationError{Message: message, Reason: reason}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// HTTPStatus maps an error to its response status code.
// 분류되지 않은 에러는 전부 500으로 처리한다.
func HTTPStatus(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case IsConflict(err):
		return http.StatusConflict
	case IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
