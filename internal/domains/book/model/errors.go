package model

import (
	"errors"
	"net/http"
	"strings"

	"bookstore-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrISBNAlreadyExists = errors.New("ISBN already exists")
)

// ValidationError gom toàn bộ field-level messages của một payload.
// Handler trả về 400 với danh sách này, không bao giờ là lỗi fatal.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// NewValidationError tạo ValidationError từ danh sách messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

// IsValidationError kiểm tra err có phải ValidationError không
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

var bookErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Code:    "BOOK_NOT_FOUND",
		Message: "The specified book does not exist",
	},
	ErrISBNAlreadyExists: {
		Status:  http.StatusConflict,
		Code:    "ISBN_ALREADY_EXISTS",
		Message: "This ISBN is already registered in the system",
	},
}

// HandleBookError map domain error sang HTTP response.
// Return false nếu err == nil (caller tiếp tục xử lý success path).
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		response.ValidationFailed(c, vErr.Errors)
		return true
	}

	for target, mapped := range bookErrorMap {
		if errors.Is(err, target) {
			response.ErrorResponse(c, mapped.Status, mapped.Code, mapped.Message)
			return true
		}
	}

	// Store connectivity / unexpected errors: per-request failure, process vẫn tiếp tục phục vụ
	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Book request failed")
	response.InternalServerError(c, "Internal server error")
	return true
}
