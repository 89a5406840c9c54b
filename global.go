package dlfcn

var (
	backend native
	debug   bool
)

func init() {
	backend = newNative()
}

// SetDebug enable or disable debug logging of loader operations.
func SetDebug(on bool) {
	debug = on
}
