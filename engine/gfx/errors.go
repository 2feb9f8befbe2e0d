package gfx

import (
	"errors"
	"fmt"
)

var (
	// ErrContextNotReady is returned when a frame is requested before the context finished setup.
	ErrContextNotReady = errors.New("graphics context is not ready")

	// ErrStaleHandle marks use of a device handle issued by a previous context generation.
	ErrStaleHandle = errors.New("device handle belongs to a previous graphics context")

	// ErrInvalidTransition is returned for context lifecycle calls made out of order.
	ErrInvalidTransition = errors.New("invalid graphics context transition")
)

// ErrorCode is a graphics API error code as returned by glGetError.
type ErrorCode uint32

const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
)

var errorStrings = map[ErrorCode]string{
	NoError:                     "no error",
	InvalidEnum:                 "invalid enumerant",
	InvalidValue:                "invalid value",
	InvalidOperation:            "invalid operation",
	StackOverflow:               "stack overflow",
	StackUnderflow:              "stack underflow",
	OutOfMemory:                 "out of memory",
	InvalidFramebufferOperation: "invalid framebuffer operation",
}

// String returns the human-readable description of the code.
func (c ErrorCode) String() string {
	if s, ok := errorStrings[c]; ok {
		return s
	}
	return fmt.Sprintf("unknown error 0x%04X", uint32(c))
}
