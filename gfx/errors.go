package gfx

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrorCode classifies window errors.
type ErrorCode int

const (
	ErrorNone ErrorCode = iota
	ErrorAlloc
	ErrorPlatform
	ErrorInvalidParam
)

// Sentinel errors for the three failure classes. Errors returned by this
// package wrap one of these; callers match with errors.Is.
var (
	ErrAlloc        = errors.New("allocation failed")
	ErrPlatform     = errors.New("platform operation failed")
	ErrInvalidParam = errors.New("invalid parameter")
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorNone:
		return "none"
	case ErrorAlloc:
		return "alloc"
	case ErrorPlatform:
		return "platform"
	case ErrorInvalidParam:
		return "invalid parameter"
	}
	return "unknown"
}

// LogCallback receives every error message as it is recorded.
type LogCallback func(code ErrorCode, msg string)

var (
	logCallbackMu sync.Mutex
	logCallback   LogCallback
)

// SetLogCallback installs a callback invoked for every recorded error.
// Passing nil removes it.
func SetLogCallback(cb LogCallback) {
	logCallbackMu.Lock()
	logCallback = cb
	logCallbackMu.Unlock()
}

// lastError is the per-window last-error pair. Recording an error also
// writes the message to stderr, logs it, and invokes the log callback.
type lastError struct {
	mu   sync.Mutex
	code ErrorCode
	msg  string
}

func (e *lastError) set(code ErrorCode, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.mu.Lock()
	e.code = code
	e.msg = msg
	e.mu.Unlock()

	fmt.Fprintf(os.Stderr, "gfx: %s\n", msg)
	Logger().Error(msg, "code", code.String())

	logCallbackMu.Lock()
	cb := logCallback
	logCallbackMu.Unlock()
	if cb != nil {
		cb(code, msg)
	}
}

func (e *lastError) get() (ErrorCode, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.code, e.msg
}

func (e *lastError) clear() {
	e.mu.Lock()
	e.code = ErrorNone
	e.msg = ""
	e.mu.Unlock()
}

func codeErr(code ErrorCode) error {
	switch code {
	case ErrorAlloc:
		return ErrAlloc
	case ErrorPlatform:
		return ErrPlatform
	case ErrorInvalidParam:
		return ErrInvalidParam
	}
	return nil
}
