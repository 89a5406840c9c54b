package dlfcn

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"syscall"
)

// Errno is a native loader error code. All backends use the Windows numbering.
type Errno uint32

const (
	ErrnoInvalidHandle        Errno = 6
	ErrnoOutOfMemory          Errno = 14
	ErrnoNotSupported         Errno = 50
	ErrnoInvalidParameter     Errno = 87
	ErrnoModNotFound          Errno = 126
	ErrnoProcNotFound         Errno = 127
	ErrnoNoUnicodeTranslation Errno = 1113
)

func (e Errno) Error() string {
	return "platform error " + strconv.FormatUint(uint64(e), 10)
}

var (
	// ErrEncoding occurs when a library path can not be converted for the native loader.
	ErrEncoding = errors.New("invalid library path encoding")
	// ErrLoad occurs when the native loader can not load a library.
	ErrLoad = errors.New("load library failed")
	// ErrUnload occurs when the native loader rejects an unload.
	ErrUnload = errors.New("unload library failed")
	// ErrLookup occurs when a symbol is not exported by a library.
	ErrLookup = errors.New("missing symbol")
	// ErrSymbolType occurs when a Sym can not be converted to the requested type.
	ErrSymbolType = errors.New("unsupported symbol type")
)

const (
	opOpen   = "open"
	opClose  = "close"
	opLookup = "lookup"
)

// Error is the failure of one loader operation.
type Error struct {
	Op   string // open, close or lookup
	Name string // library path or symbol
	Kind error  // one of ErrEncoding, ErrLoad, ErrUnload, ErrLookup
	Code Errno  // native code, never zero
	Err  error  // native error if any
}

func (e *Error) Error() string {
	s := fmt.Sprintf("dlfcn: %s %q: %s", e.Op, e.Name, e.Code)
	if e.Err != nil && !errors.Is(e.Err, e.Code) {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() []error {
	v := []error{e.Kind, e.Code}
	if e.Err != nil {
		v = append(v, e.Err)
	}
	return v
}

// errnoOf extract the native code from err, a missing or zero code yields fallback.
func errnoOf(err error, fallback Errno) Errno {
	var en Errno
	if errors.As(err, &en) && en != 0 {
		return en
	}
	var se syscall.Errno
	if errors.As(err, &se) && se != 0 {
		return Errno(se)
	}
	return fallback
}

// lastError is the single slot of the latest failure, errorMessage holds the text returned by the latest read.
// Both are process wide and not synchronized.
var (
	lastError    *Error
	errorMessage string
)

func record(e *Error) *Error {
	lastError = e
	if debug {
		log.Printf("record %v", e)
	}
	return e
}

// LastError returns the text of the latest unread failure and clears it.
// ok is false when no failure is pending.
//
// The slot is shared by the whole process without locking, so concurrent callers must synchronize by themselves.
func LastError() (msg string, ok bool) {
	if lastError == nil {
		return "", false
	}
	errorMessage = lastError.Code.Error()
	lastError = nil
	return errorMessage, true
}
