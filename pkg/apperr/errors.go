// Package apperr provides the coded error taxonomy shared by the service.
package apperr

import (
	"errors"
	"fmt"
)

// Code represents standardized internal error codes.
type Code string

const (
	CodeValidation    Code = "VALIDATION_FAILED"
	CodeUpstream      Code = "UPSTREAM_FAILED"
	CodeDataLoad      Code = "DATA_LOAD_FAILED"
	CodeConfiguration Code = "CONFIGURATION_MISSING"
	CodeMailSend      Code = "MAIL_SEND_FAILED"
	CodeCalendar      Code = "CALENDAR_FAILED"
)

// Error represents a structured application error.
type Error struct {
	Code      Code   `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Retryable bool   `json:"retryable"`
	Err       error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation wraps a malformed request. Details carry the field-level messages.
func Validation(message, details string) *Error {
	return &Error{Code: CodeValidation, Message: message, Details: details}
}

// Upstream wraps a failed call to the language model or another remote API.
func Upstream(message string, err error) *Error {
	return &Error{Code: CodeUpstream, Message: message, Details: errText(err), Retryable: true, Err: err}
}

// DataLoad marks static data that could not be read or parsed.
func DataLoad(source string, err error) *Error {
	return &Error{Code: CodeDataLoad, Message: "failed to load " + source, Details: errText(err), Err: err}
}

// Configuration marks a missing credential or setting.
func Configuration(what string) *Error {
	return &Error{Code: CodeConfiguration, Message: what + " not configured"}
}

func MailSend(err error) *Error {
	return &Error{Code: CodeMailSend, Message: "failed to send email", Details: errText(err), Retryable: true, Err: err}
}

func Calendar(err error) *Error {
	return &Error{Code: CodeCalendar, Message: "calendar request failed", Details: errText(err), Retryable: true, Err: err}
}

// HasCode reports whether err carries an *Error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
