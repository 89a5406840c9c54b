//go:build darwin || freebsd || linux || netbsd

package dlfcn

import (
	"github.com/ebitengine/purego"
)

// RTLD flags for dlopen - exported from purego
const (
	RTLD_LAZY   = purego.RTLD_LAZY
	RTLD_NOW    = purego.RTLD_NOW
	RTLD_LOCAL  = purego.RTLD_LOCAL
	RTLD_GLOBAL = purego.RTLD_GLOBAL
)

// selfHandle stands for the main image, which dlsym reaches through RTLD_DEFAULT.
const selfHandle = ^uintptr(0)

type posixNative struct{}

func newNative() native {
	return posixNative{}
}

func (posixNative) load(path []uint16) (uintptr, error) {
	return purego.Dlopen(DecodeWide(path), purego.RTLD_LAZY|purego.RTLD_GLOBAL)
}

func (posixNative) free(h uintptr) error {
	return purego.Dlclose(h)
}

func (posixNative) procByName(h uintptr, name string) (uintptr, error) {
	if h == selfHandle {
		h = purego.RTLD_DEFAULT
	}
	return purego.Dlsym(h, name)
}

func (posixNative) procByOrdinal(uintptr, uint16) (uintptr, error) {
	return 0, ErrnoNotSupported
}

func (posixNative) self() uintptr {
	return selfHandle
}

func (posixNative) errorMode() uint32 {
	return 0
}

func (posixNative) setErrorMode(uint32) uint32 {
	return 0
}
