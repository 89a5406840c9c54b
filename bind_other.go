//go:build !darwin && !freebsd && !linux && !netbsd && !windows

package dlfcn

// Bind is not available on this platform.
func Bind[T any](fptr *T, s Sym) error {
	return ErrSymbolType
}
