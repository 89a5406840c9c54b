package dlfcn

// Dlopen is Open with the dlopen(3) contract: an empty file stands for the null path
// and a failure returns 0.
func Dlopen(file string, mode int) Handle {
	h, _ := Open(file, Mode(mode))
	return h
}

// Dlclose is Close with the dlclose(3) contract: 0 on success, non-zero on failure.
func Dlclose(h Handle) int {
	if Close(h) != nil {
		return 1
	}
	return 0
}

// Dlsym is Lookup with the dlsym(3) contract: a failure returns 0.
func Dlsym(h Handle, name string) uintptr {
	s, _ := Lookup(h, name)
	return uintptr(s)
}

// Dlerror is LastError. The text stays valid until the next call.
func Dlerror() (string, bool) {
	return LastError()
}
