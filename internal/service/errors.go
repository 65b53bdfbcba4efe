package service

import "errors"

// ErrorKind classifies failures that are safe to show to API clients.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthorized
)

// Error is a client-facing failure. Its message is returned verbatim in
// the response envelope; anything that is not an *Error is treated as an
// internal failure and never shown.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func validationError(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }

var (
	ErrProductNotFound   = &Error{Kind: KindNotFound, Msg: "Product not found"}
	ErrCategoryNotFound  = &Error{Kind: KindNotFound, Msg: "Category not found"}
	ErrSlugTaken         = &Error{Kind: KindConflict, Msg: "A product with this slug already exists"}
	ErrCategoryTaken     = &Error{Kind: KindConflict, Msg: "A category with this name already exists"}
	ErrInvalidLogin      = &Error{Kind: KindUnauthorized, Msg: "Invalid email or password"}
	ErrUnauthorized      = &Error{Kind: KindUnauthorized, Msg: "Unauthorized"}
	ErrCategoryNameBlank = &Error{Kind: KindValidation, Msg: "Category name is required"}
)

// KindOf returns the kind of a service error, or 0 for internal errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
