// Package errors provides structured error handling for infinitelist.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid list configuration.
	KindConfig
	// KindSource indicates a page fetch failure in a data source.
	KindSource
	// KindRender indicates an item content builder failure.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindSource:
		return "source"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Configuration sentinels returned (wrapped in a ListError) by infinite.New.
var (
	ErrNoData      = errors.New("data binding is required")
	ErrNoLoading   = errors.New("loading binding is required")
	ErrNoLoadMore  = errors.New("loadMore trigger is required")
	ErrNoContent   = errors.New("content builder is required")
	ErrUnsupported = errors.New("unsupported value")
)

// ListError represents a structured error raised around a list.
type ListError struct {
	// Op is the operation that failed (e.g., "infinite.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Source names the data source, if applicable.
	Source string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ListError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s [%s] source=%s: %v", e.Op, e.Kind, e.Source, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "feed.fetch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// RenderError represents a failure while building one item's content.
type RenderError struct {
	// Item is the formatted identity of the item whose content failed.
	Item string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RenderError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in content(%s): %v", e.Item, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in content(%s): %v", e.Item, e.Err)
	}
	return fmt.Sprintf("unknown error in content(%s)", e.Item)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by infinitelist packages.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ListError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleRenderError is called when an item content builder fails.
	HandleRenderError(err *RenderError)
}
