package dlfcn

// native is the loader facility of the host platform.
type native interface {
	load(path []uint16) (uintptr, error)                      // load a library by its NUL terminated wide path
	free(h uintptr) error                                     // release a library
	procByName(h uintptr, name string) (uintptr, error)       // lookup an export by name
	procByOrdinal(h uintptr, ordinal uint16) (uintptr, error) // lookup an export by ordinal
	self() uintptr                                            // handle of the main image
	errorMode() uint32                                        // current process error mode
	setErrorMode(mode uint32) uint32                          // set process error mode, returns the previous one
}

// semFailCriticalErrors asks the system not to show the critical error message box.
const semFailCriticalErrors = 0x0001

// suppressErrorMode turns off the load failure pop-up until the returned restore is called.
func suppressErrorMode(n native) (restore func()) {
	prev := n.errorMode()
	n.setErrorMode(prev | semFailCriticalErrors)
	return func() {
		n.setErrorMode(prev)
	}
}

func loadLibrary(n native, path []uint16) (uintptr, error) {
	defer suppressErrorMode(n)()
	return n.load(path)
}
