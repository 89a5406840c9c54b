package dlfcn

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/ZenLiuCN/fn"
)

type (
	// Handle identifies a loaded library. Zero is never a valid Handle.
	Handle uintptr
	// Sym is the untyped address of an export, valid only while its Handle stays open.
	Sym uintptr
	// Mode is the dlopen mode, accepted for compatibility and ignored.
	Mode int
)

// Self returns the handle of the main image of the process.
// It is the same value on every call and Close never releases it.
func Self() Handle {
	return Handle(backend.self())
}

// Open loads the library at path, an empty path returns Self.
//
// The failure is an *Error of kind ErrEncoding or ErrLoad, and it is also recorded for LastError.
func Open(path string, mode Mode) (Handle, error) {
	if path == "" {
		return Self(), nil
	}
	w, err := EncodeWide(path)
	if err != nil {
		return 0, record(&Error{Op: opOpen, Name: path, Kind: ErrEncoding, Code: errnoOf(err, ErrnoInvalidParameter), Err: err})
	}
	h, err := loadLibrary(backend, w)
	if h == 0 {
		return 0, record(&Error{Op: opOpen, Name: path, Kind: ErrLoad, Code: errnoOf(err, ErrnoModNotFound), Err: err})
	}
	if debug {
		log.Printf("open %s: %x", path, h)
	}
	return Handle(h), nil
}

// MustOpen is Open that panics on failure.
func MustOpen(path string) Handle {
	return fn.Panic1(Open(path, RTLD_NOW))
}

// Close releases a library returned by Open. Closing Self does nothing.
func Close(h Handle) error {
	if h == Self() {
		return nil
	}
	if h == 0 {
		return record(&Error{Op: opClose, Name: h.String(), Kind: ErrUnload, Code: ErrnoInvalidHandle})
	}
	if err := backend.free(uintptr(h)); err != nil {
		return record(&Error{Op: opClose, Name: h.String(), Kind: ErrUnload, Code: errnoOf(err, ErrnoInvalidHandle), Err: err})
	}
	if debug {
		log.Printf("close %s", h)
	}
	return nil
}

// Lookup resolves an export of h, a name accepted by ParseOrdinal is looked up as an ordinal.
func Lookup(h Handle, name string) (Sym, error) {
	return LookupSymbol(h, ParseSymbol(name))
}

// MustLookup is Lookup that panics on failure.
func MustLookup(h Handle, name string) Sym {
	return fn.Panic1(Lookup(h, name))
}

// LookupSymbol resolves an export of h by the exact Symbol variant.
func LookupSymbol(h Handle, s Symbol) (Sym, error) {
	if h == 0 {
		return 0, record(&Error{Op: opLookup, Name: s.String(), Kind: ErrLookup, Code: ErrnoInvalidHandle})
	}
	var p uintptr
	var err error
	if s.IsOrdinal() {
		p, err = backend.procByOrdinal(uintptr(h), s.Ordinal())
	} else {
		p, err = backend.procByName(uintptr(h), s.Name())
	}
	if p == 0 {
		return 0, record(&Error{Op: opLookup, Name: s.String(), Kind: ErrLookup, Code: errnoOf(err, ErrnoProcNotFound), Err: err})
	}
	if debug {
		log.Printf("found symbol %s: %x", s, p)
	}
	return Sym(p), nil
}

func (h Handle) String() string {
	return fmt.Sprintf("0x%x", uintptr(h))
}

// As reinterprets a Sym as a pointer sized T, such as *int32 for an exported variable.
// Use Bind or Func to call exported functions.
func As[T any](s Sym) (x T) {
	if unsafe.Sizeof(x) != unsafe.Sizeof(s) {
		panic(ErrSymbolType)
	}
	return *(*T)(unsafe.Pointer(&s))
}

// Func resolves name in h and binds it as a Go function of type T.
func Func[T any](h Handle, name string) (f T, err error) {
	var s Sym
	if s, err = Lookup(h, name); err != nil {
		return
	}
	err = Bind(&f, s)
	return
}

// Use create a function to fetch and use symbol on the fly
func Use[T any](h Handle, name string) func(func(t T, err error)) {
	return func(f func(t T, err error)) {
		x, err := Func[T](h, name)
		if err != nil && debug {
			log.Printf("use %s: %v", name, err)
		}
		f(x, err)
	}
}
