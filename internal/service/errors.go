package service

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind 错误分类，error_type 字段直接输出该值
type ErrorKind string

const (
	KindNotFound             ErrorKind = "NotFound"
	KindConflict             ErrorKind = "Conflict"
	KindValidationFailure    ErrorKind = "ValidationFailure"
	KindUnsupportedMediaType ErrorKind = "UnsupportedMediaType"
	KindPayloadTooLarge      ErrorKind = "PayloadTooLarge"
	KindStorageFailure       ErrorKind = "StorageFailure"
)

// Error 业务错误，Message 原样返回给调用方
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 仅按 Kind 比较，便于 errors.Is(err, ErrNotFound)
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNotFound             = &Error{Kind: KindNotFound}
	ErrConflict             = &Error{Kind: KindConflict}
	ErrValidationFailure    = &Error{Kind: KindValidationFailure}
	ErrUnsupportedMediaType = &Error{Kind: KindUnsupportedMediaType}
	ErrPayloadTooLarge      = &Error{Kind: KindPayloadTooLarge}
	ErrStorageFailure       = &Error{Kind: KindStorageFailure}
)

var ErrorMap = map[ErrorKind]int{
	KindNotFound:             http.StatusNotFound,
	KindConflict:             http.StatusConflict,
	KindValidationFailure:    http.StatusUnprocessableEntity,
	KindUnsupportedMediaType: http.StatusUnsupportedMediaType,
	KindPayloadTooLarge:      http.StatusRequestEntityTooLarge,
	KindStorageFailure:       http.StatusInternalServerError,
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return newError(KindConflict, format, args...)
}

func ValidationFailure(format string, args ...any) *Error {
	return newError(KindValidationFailure, format, args...)
}

func UnsupportedMediaType(format string, args ...any) *Error {
	return newError(KindUnsupportedMediaType, format, args...)
}

func PayloadTooLarge(format string, args ...any) *Error {
	return newError(KindPayloadTooLarge, format, args...)
}

// StorageFailure 包装底层持久化错误，原始错误保留在 Err 中用于日志
func StorageFailure(err error, message string) *Error {
	return &Error{Kind: KindStorageFailure, Message: message, Err: err}
}

// KindOf 未分类的错误统一视为 StorageFailure
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorageFailure
}
