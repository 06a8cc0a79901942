// Package apperr задает таксономию ошибок сервиса.
//
// Kind предназначен для автоматической обработки (маппинг в HTTP-статус),
// Message показывается клиенту, Err хранит причину для логов оператора.
package apperr

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindBadRequest      Kind = "bad_request"
	KindPayloadTooLarge Kind = "payload_too_large"
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindStoreAuth       Kind = "store_auth"
	KindStoreConfig     Kind = "store_config"
	KindStoreTimeout    Kind = "store_timeout"
	KindStore           Kind = "store_error"
	KindTransform       Kind = "transform_error"
	KindInternal        Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		var b strings.Builder
		b.WriteString(e.Message)
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
		return b.String()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}

	return "<" + string(e.Kind) + ">"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по Kind, чтобы errors.Is(err, apperr.New(KindNotFound, "")) работал
// независимо от текста сообщения.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// KindOf возвращает Kind первой *Error в цепочке, иначе KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindInternal
}

// MessageOf возвращает клиентское сообщение первой *Error в цепочке.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}

	return ""
}

// IsStore сообщает, относится ли Kind к ошибкам blob-хранилища.
func (k Kind) IsStore() bool {
	switch k {
	case KindStoreAuth, KindStoreConfig, KindStoreTimeout, KindStore:
		return true
	}

	return false
}
