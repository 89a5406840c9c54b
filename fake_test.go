package dlfcn

import (
	"syscall"
	"testing"
)

const fakeSelf = uintptr(0x1000)

// fakeNative is an in memory loader with a fixed export table.
type fakeNative struct {
	libraries map[string]uintptr
	names     map[uintptr]map[string]uintptr
	ordinals  map[uintptr]map[uint16]uintptr
	freeErr   error

	mode      uint32
	loadModes []uint32
	loaded    []string
	freed     []uintptr
	byName    []string
	byOrdinal []uint16
}

func newFake() *fakeNative {
	return &fakeNative{
		libraries: map[string]uintptr{"sample.dll": 0x2000},
		names: map[uintptr]map[string]uintptr{
			fakeSelf: {"func_name": 0x1100, "65": 0x1165},
			0x2000:   {"Run": 0x2100},
		},
		ordinals: map[uintptr]map[uint16]uintptr{
			fakeSelf: {65: 0x1041},
			0x2000:   {1: 0x2001},
		},
		mode: 0x8000,
	}
}

// useFake installs a fake backend and an empty error slot for the duration of the test.
func useFake(t *testing.T) *fakeNative {
	t.Helper()
	f := newFake()
	prev := backend
	backend = f
	lastError = nil
	t.Cleanup(func() {
		backend = prev
		lastError = nil
	})
	return f
}

func (f *fakeNative) load(path []uint16) (uintptr, error) {
	p := DecodeWide(path)
	f.loaded = append(f.loaded, p)
	f.loadModes = append(f.loadModes, f.mode)
	if h, ok := f.libraries[p]; ok {
		return h, nil
	}
	return 0, syscall.Errno(ErrnoModNotFound)
}

func (f *fakeNative) free(h uintptr) error {
	f.freed = append(f.freed, h)
	if f.freeErr != nil {
		return f.freeErr
	}
	return nil
}

func (f *fakeNative) procByName(h uintptr, name string) (uintptr, error) {
	f.byName = append(f.byName, name)
	if p, ok := f.names[h][name]; ok {
		return p, nil
	}
	return 0, syscall.Errno(ErrnoProcNotFound)
}

func (f *fakeNative) procByOrdinal(h uintptr, ordinal uint16) (uintptr, error) {
	f.byOrdinal = append(f.byOrdinal, ordinal)
	if p, ok := f.ordinals[h][ordinal]; ok {
		return p, nil
	}
	// a zero code must still be reported as a failure
	return 0, syscall.Errno(0)
}

func (f *fakeNative) self() uintptr {
	return fakeSelf
}

func (f *fakeNative) errorMode() uint32 {
	return f.mode
}

func (f *fakeNative) setErrorMode(mode uint32) uint32 {
	prev := f.mode
	f.mode = mode
	return prev
}
