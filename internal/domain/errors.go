package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"numclass/pkg/errcodes"
)

// AppError доменная ошибка инфраструктуры (сервис фактов, кеш, очередь).
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// CodeOf код для логов и метрик: код AppError или InternalServerError.
func CodeOf(err error) failure.ErrorCode {
	if code, ok := GetCode(err); ok {
		return code
	}
	return errcodes.InternalServerError
}
