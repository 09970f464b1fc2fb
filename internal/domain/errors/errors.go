package errors

import "fmt"

// AdviceParseError indica que el advisor devolvió algo que no es JSON
// válido. Es la única condición fatal del pipeline: quien llama decide si
// la muestra al usuario o reintenta.
type AdviceParseError struct {
	Raw string
	Err error
}

func (e *AdviceParseError) Error() string {
	return fmt.Sprintf("el advisor devolvió JSON inválido: %v", e.Err)
}

func (e *AdviceParseError) Unwrap() error {
	return e.Err
}

// NewAdviceParseError crea un nuevo error de parseo de respuesta del advisor
func NewAdviceParseError(raw string, err error) *AdviceParseError {
	return &AdviceParseError{Raw: raw, Err: err}
}

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Err: err}
}

// AdvisorNotConfiguredError indica que el advisor de IA no está configurado
type AdvisorNotConfiguredError struct {
	Reason string
}

func (e *AdvisorNotConfiguredError) Error() string {
	return fmt.Sprintf("advisor de IA no configurado: %s", e.Reason)
}

// NewAdvisorNotConfiguredError crea un nuevo error de advisor no configurado
func NewAdvisorNotConfiguredError(reason string) *AdvisorNotConfiguredError {
	return &AdvisorNotConfiguredError{Reason: reason}
}
