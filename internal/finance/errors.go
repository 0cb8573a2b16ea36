package finance

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation помечает любые ошибки валидации входных данных калькуляторов.
	ErrValidation = errors.New("validation failed")
	// ErrParse помечает ошибки разбора дат на границе API.
	ErrParse = errors.New("parse failed")
)

// ValidationError описывает недопустимое числовое значение на входе калькулятора.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is позволяет сопоставлять ошибку с ErrValidation через errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ParseError описывает некорректную строку даты в формате YYYY-MM-DD.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
}

// Is позволяет сопоставлять ошибку с ErrParse через errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
