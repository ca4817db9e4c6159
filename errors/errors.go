package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind clasifica los errores de la aplicación.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindAuth       Kind = "AUTH"
	KindForbidden  Kind = "FORBIDDEN"
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
	KindPolicy     Kind = "POLICY"
	KindInternal   Kind = "INTERNAL"
)

// AppError es el error de negocio que los controllers traducen a JSON.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *AppError { return New(KindValidation, message) }
func NotFound(message string) *AppError   { return New(KindNotFound, message) }
func Conflict(message string) *AppError   { return New(KindConflict, message) }
func Policy(message string) *AppError     { return New(KindPolicy, message) }

func Internal(err error) *AppError {
	return Wrap(KindInternal, "Error interno del servidor", err)
}

// IsKind reporta si err es un AppError del tipo dado.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// HTTPStatus mapea el tipo de error al código HTTP de la respuesta.
// Los conflictos y violaciones de política responden 400, igual que
// la validación; sólo la autenticación distingue 401 de 403.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation, KindConflict, KindPolicy:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message devuelve el mensaje que se expone al cliente. Los errores que
// no son AppError nunca filtran detalles internos.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "Error interno del servidor"
}
