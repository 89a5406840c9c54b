/*
Package dlfcn is a POSIX style dynamic loading layer (dlopen, dlsym, dlclose, dlerror) over the native loader of the host platform.

# License

Source codes are under Apache License Version 2.0.

# Underwater

 1. On Windows, [Open] converts the UTF-8 path to UTF-16 and calls LoadLibraryW with the critical error pop-up suppressed for the duration of the call.
 2. [Lookup] treats a name made only of decimal digits that fits in 16 bits (such as "65") as an export ordinal, any other text as an export name.
 3. An empty path opens the main image of the process. That handle is never released by [Close].
 4. Every failure is returned to the caller and also remembered in a single process wide slot, read and cleared by [LastError] or [Dlerror].
 5. Other platforms go through dlopen(3) via [purego]. Ordinals are not supported there.

# Notes

 1. The last error slot is not synchronized. Reading it is only correct under single goroutine use or when the caller synchronizes access.
 2. A successful operation does not clear an unread error from an earlier failure.
 3. No symbol visibility rules (RTLD_GLOBAL, RTLD_NEXT) are emulated, the mode flags are accepted and ignored.
 4. A [Sym] is only valid while the owning [Handle] is open. Use [Bind] or [Func] to call native functions, [As] for data.

# Probe tool

A small cli to try loading libraries and resolving symbols:

	go install github.com/ZenLiuCN/dlfcn/probe@latest

For more details see the cli help:

	probe -h

[purego]: https://github.com/ebitengine/purego
*/
package dlfcn
