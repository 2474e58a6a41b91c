// Package errors provides custom error types for the eternal-zoo catalog.
// These errors enable programmatic error checking with errors.Is and carry
// enough context (hash, model name, field) to diagnose bad catalog data.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are aliases for the standard library helpers so callers don't
// need a second errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the catalog system
var (
	// ErrNotFound indicates that a requested hash, model, or base model was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates that the identity table registers the same hash or
	// model name more than once
	ErrDuplicate = errors.New("duplicate entry")

	// ErrInvalidData indicates that catalog data violates a schema rule
	ErrInvalidData = errors.New("invalid catalog data")

	// ErrAlreadyExists indicates that a catalog entry already exists
	ErrAlreadyExists = errors.New("already exists")
)

// UnknownHashError is returned when a content-address hash is not registered
// in the identity table.
type UnknownHashError struct {
	Hash string
}

// Error implements the error interface
func (e *UnknownHashError) Error() string {
	return fmt.Sprintf("unknown hash %s", e.Hash)
}

// Is implements errors.Is support
func (e *UnknownHashError) Is(target error) bool {
	return target == ErrNotFound
}

// UnknownModelError is returned when a canonical model name has no catalog entry.
type UnknownModelError struct {
	Name string
}

// Error implements the error interface
func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown model %q", e.Name)
}

// Is implements errors.Is support
func (e *UnknownModelError) Is(target error) bool {
	return target == ErrNotFound
}

// NoHashError is returned when a catalog model has no published hash yet.
// This is legal for unreleased entries and callers should treat it as not found.
type NoHashError struct {
	Name string
}

// Error implements the error interface
func (e *NoHashError) Error() string {
	return fmt.Sprintf("model %q has no published hash", e.Name)
}

// Is implements errors.Is support
func (e *NoHashError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateHashError indicates the identity table lists the same hash twice.
// This is a corrupt table and fatal at construction time.
type DuplicateHashError struct {
	Hash string
	Name string
}

// Error implements the error interface
func (e *DuplicateHashError) Error() string {
	return fmt.Sprintf("hash %s registered more than once (model %q)", e.Hash, e.Name)
}

// Is implements errors.Is support
func (e *DuplicateHashError) Is(target error) bool {
	return target == ErrDuplicate
}

// DuplicateModelNameError indicates two distinct hashes map to the same model
// name, breaking the hash/name bijection. Fatal at construction time.
type DuplicateModelNameError struct {
	Name      string
	Hash      string
	PriorHash string
}

// Error implements the error interface
func (e *DuplicateModelNameError) Error() string {
	return fmt.Sprintf("model %q mapped by both %s and %s", e.Name, e.PriorHash, e.Hash)
}

// Is implements errors.Is support
func (e *DuplicateModelNameError) Is(target error) bool {
	return target == ErrDuplicate
}

// MissingFieldError indicates a catalog entry lacks a field its backend requires.
type MissingFieldError struct {
	Model string
	Field string
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("model %q missing required field %q", e.Model, e.Field)
}

// Is implements errors.Is support
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrInvalidData
}

// ConflictingSelectorError indicates a gguf entry declares both or neither of
// the exact file name and the selection pattern.
type ConflictingSelectorError struct {
	Model string
	Both  bool // true when both are set, false when neither is
}

// Error implements the error interface
func (e *ConflictingSelectorError) Error() string {
	if e.Both {
		return fmt.Sprintf("model %q sets both an exact weight file and a pattern", e.Model)
	}
	return fmt.Sprintf("model %q sets neither an exact weight file nor a pattern", e.Model)
}

// Is implements errors.Is support
func (e *ConflictingSelectorError) Is(target error) bool {
	return target == ErrInvalidData
}

// DanglingBaseModelError indicates a LoRA entry references a base model that
// does not resolve to a usable catalog entry.
type DanglingBaseModelError struct {
	Model     string
	BaseModel string
	Reason    string
}

// Error implements the error interface
func (e *DanglingBaseModelError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("model %q base model %q: %s", e.Model, e.BaseModel, e.Reason)
	}
	return fmt.Sprintf("model %q references unknown base model %q", e.Model, e.BaseModel)
}

// Is implements errors.Is support
func (e *DanglingBaseModelError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a generic validation failure on a catalog entry.
type ValidationError struct {
	Model   string
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("model %q field %q: %s", e.Model, e.Field, e.Message)
	}
	return fmt.Sprintf("model %q: %s", e.Model, e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidData
}

// ParseError represents an error when parsing catalog data files.
type ParseError struct {
	Format  string // "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents an error reading catalog data.
type IOError struct {
	Operation string // "read", "open", "stat"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate checks if an error indicates a duplicate identity entry
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsInvalidData checks if an error indicates a schema violation
func IsInvalidData(err error) bool {
	return errors.Is(err, ErrInvalidData)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// Helper wrapping functions for common patterns

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}
