package common

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// ResolveError 將錯誤轉換為 HTTP 狀態碼與回應內容
func ResolveError(err error) (int, ErrorResponse) {
	if ce, ok := AsCustomError(err); ok {
		status := ce.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return status, ErrorResponse{Error: ce.Message, Code: ce.Code}
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ErrorResponse{Error: ve.Error(), Code: ErrCodeInvalidRequest}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: ErrInternalError.Message, Code: ErrCodeInternalError}
}
