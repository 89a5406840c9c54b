//go:build windows

package dlfcn

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// RTLD flags - not used on Windows but defined for compatibility
const (
	RTLD_LAZY   = 0x00001
	RTLD_NOW    = 0x00002
	RTLD_LOCAL  = 0x00000
	RTLD_GLOBAL = 0x00100
)

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procLoadLibraryW = kernel32.NewProc("LoadLibraryW")
	procGetErrorMode = kernel32.NewProc("GetErrorMode")
)

type windowsNative struct{}

func newNative() native {
	return windowsNative{}
}

func (windowsNative) load(path []uint16) (uintptr, error) {
	h, _, err := procLoadLibraryW.Call(uintptr(unsafe.Pointer(&path[0])))
	if h == 0 {
		return 0, err
	}
	return h, nil
}

func (windowsNative) free(h uintptr) error {
	return windows.FreeLibrary(windows.Handle(h))
}

func (windowsNative) procByName(h uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), name)
}

func (windowsNative) procByOrdinal(h uintptr, ordinal uint16) (uintptr, error) {
	return windows.GetProcAddressByOrdinal(windows.Handle(h), uintptr(ordinal))
}

func (windowsNative) self() uintptr {
	var h windows.Handle
	if err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, nil, &h); err != nil {
		return 0
	}
	return uintptr(h)
}

func (windowsNative) errorMode() uint32 {
	mode, _, _ := procGetErrorMode.Call()
	return uint32(mode)
}

func (windowsNative) setErrorMode(mode uint32) uint32 {
	return windows.SetErrorMode(mode)
}
