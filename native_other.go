//go:build !windows && !darwin && !freebsd && !linux && !netbsd

package dlfcn

const (
	RTLD_LAZY   = 0x00001
	RTLD_NOW    = 0x00002
	RTLD_LOCAL  = 0x00000
	RTLD_GLOBAL = 0x00100
)

const selfHandle = ^uintptr(0)

type unsupportedNative struct{}

func newNative() native {
	return unsupportedNative{}
}

func (unsupportedNative) load([]uint16) (uintptr, error) {
	return 0, ErrnoNotSupported
}

func (unsupportedNative) free(uintptr) error {
	return ErrnoNotSupported
}

func (unsupportedNative) procByName(uintptr, string) (uintptr, error) {
	return 0, ErrnoNotSupported
}

func (unsupportedNative) procByOrdinal(uintptr, uint16) (uintptr, error) {
	return 0, ErrnoNotSupported
}

func (unsupportedNative) self() uintptr {
	return selfHandle
}

func (unsupportedNative) errorMode() uint32 {
	return 0
}

func (unsupportedNative) setErrorMode(uint32) uint32 {
	return 0
}
