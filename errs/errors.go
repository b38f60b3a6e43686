// Package errs define los errores de la aplicación y cómo se traducen a
// respuestas HTTP.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Code es un código estable para que el cliente pueda reaccionar al error
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeValidation      Code = "VALIDATION_ERROR"
	CodeDuplicateName   Code = "DUPLICATE_NAME"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

// FieldError es un error asociado a un campo del payload
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// AppError es el error que devuelven los servicios
type AppError struct {
	Code    Code
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// InvalidArgument se usa para ids inválidos o bodies que no coinciden con la ruta
func InvalidArgument(message string) *AppError {
	return &AppError{Code: CodeInvalidArgument, Message: message}
}

// Validation agrupa errores de campos del payload
func Validation(message string, fields ...FieldError) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Fields: fields}
}

// DuplicateName indica que ya existe una villa con ese nombre.
// Se reporta igual que un error de validación, con la clave "name_exists".
func DuplicateName(name string) *AppError {
	return &AppError{
		Code:    CodeDuplicateName,
		Message: "villa name already exists",
		Fields: []FieldError{{
			Field: "name_exists",
			Error: fmt.Sprintf("a villa named %q already exists", name),
		}},
	}
}

// NotFound indica que no existe el registro pedido
func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// Wrap envuelve un error de infraestructura (base de datos, broker, etc.)
func Wrap(err error, message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Err: err}
}

// IsCode verifica si el error (o alguno que envuelve) tiene el código indicado
func IsCode(err error, code Code) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// HTTPStatus traduce un error al status HTTP que corresponde.
// Cualquier error que no sea un AppError conocido termina en 500.
func HTTPStatus(err error) int {
	var ae *AppError
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}

	switch ae.Code {
	case CodeInvalidArgument, CodeValidation, CodeDuplicateName:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
