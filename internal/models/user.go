// Package models defines the record types that flow through the pipeline.
package models

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnsupportedID is returned when a raw id value cannot serve as an identifier.
var ErrUnsupportedID = errors.New("unsupported id type")

// Header is the CSV header row for cleaned user records.
var Header = []string{"id", "name", "email", "full_address"}

// RawUser is a user record as delivered by the source API. No schema is
// enforced on input: fields may be missing, null, or of unexpected type.
type RawUser map[string]any

// ID returns the raw id value, nil when absent.
func (u RawUser) ID() any {
	return u["id"]
}

// Field returns the named field, nil when absent.
func (u RawUser) Field(name string) any {
	return u[name]
}

// Text returns the named field as a string. Missing or non-string values
// yield the empty string.
func (u RawUser) Text(name string) string {
	s, _ := u[name].(string)

	return s
}

// CleanUser is the fixed output record, with every field rendered as text.
type CleanUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	FullAddress string `json:"full_address"`
}

// Row returns the CSV row for this record, in Header order.
func (u CleanUser) Row() []string {
	return []string{u.ID, u.Name, u.Email, u.FullAddress}
}

// FormatID renders a raw id value as text. JSON numbers render without an
// exponent so numeric ids survive the float64 decoding intact. Arrays and
// objects cannot serve as identifiers.
func FormatID(v any) (string, error) {
	switch id := v.(type) {
	case nil:
		return "", nil
	case string:
		return id, nil
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(id), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedID, v)
	}
}
