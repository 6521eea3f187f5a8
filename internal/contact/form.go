// Package contact validates and records messages sent through the contact channel.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ErrInvalidSubmission wraps every validation failure returned by Validate.
var ErrInvalidSubmission = errors.New("invalid submission")

// Field names used in FieldError.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// MaxMessageLength bounds the message body.
const MaxMessageLength = 5000

// Form is what the visitor typed.
type Form struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// FieldError describes a problem with one form field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Normalize trims surrounding whitespace from every field.
func (f Form) Normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks f after normalization. The returned error matches
// ErrInvalidSubmission with errors.Is and each *FieldError with errors.As.
func (f Form) Validate() error {
	f = f.Normalize()
	var errs []error
	required := func(field, value string) bool {
		if value == "" {
			errs = append(errs, &FieldError{Field: field, Reason: "is required"})
			return false
		}
		return true
	}

	required(FieldName, f.Name)
	if required(FieldEmail, f.Email) {
		if addr, err := mail.ParseAddress(f.Email); err != nil || addr.Address != f.Email {
			errs = append(errs, &FieldError{Field: FieldEmail, Reason: "is not a valid e-mail address"})
		}
	}
	required(FieldSubject, f.Subject)
	if required(FieldMessage, f.Message) && utf8.RuneCountInString(f.Message) > MaxMessageLength {
		errs = append(errs, &FieldError{Field: FieldMessage, Reason: fmt.Sprintf("must be at most %d characters", MaxMessageLength)})
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSubmission, errors.Join(errs...))
}

// FieldErrors extracts the per-field problems from an error returned by
// Validate, keeping the first reason reported for each field.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var walk func(error)
	walk = func(e error) {
		switch x := e.(type) {
		case *FieldError:
			if _, seen := out[x.Field]; !seen {
				out[x.Field] = x.Reason
			}
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(x.Unwrap())
		}
	}
	walk(err)
	return out
}

// Submission is a recorded contact message.
type Submission struct {
	ID        uuid.UUID
	Form      Form
	CreatedAt time.Time
}
