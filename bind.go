//go:build darwin || freebsd || linux || netbsd || windows

package dlfcn

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Bind sets *fptr to a Go function calling the native function at s.
// fptr must point to a func variable whose signature purego can pass, any other type yields ErrSymbolType.
func Bind[T any](fptr *T, s Sym) (err error) {
	if s == 0 {
		return ErrSymbolType
	}
	defer func() {
		switch x := recover().(type) {
		case nil:
		case error:
			err = fmt.Errorf("%w: %w", ErrSymbolType, x)
		default:
			err = fmt.Errorf("%w: %v", ErrSymbolType, x)
		}
	}()
	purego.RegisterFunc(fptr, uintptr(s))
	return
}
