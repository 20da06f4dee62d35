// Package kwutil collects small generic helpers (Must, WithDefault,
// CloseFile, MustFprintf), in the same spirit as the reference codebase's
// own grab-bag of IfThen/Must/CloseFile utilities. No other package in
// this module imports it.
package kwutil

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Must unwraps val if err is nil, and panics otherwise. Reserved for
// startup-time failures (e.g. malformed embedded defaults) that have no
// sensible recovery.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Must0 panics if err is non-nil.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// WithDefault returns m[key] if present, else defVal.
func WithDefault[K comparable, V any](m map[K]V, key K, defVal V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return defVal
}

// CloseFile closes f and logs any error, for use in defer statements
// where the close error is not worth propagating.
func CloseFile(f *os.File) {
	if err := f.Close(); err != nil {
		log.Printf("closing %s: %v", f.Name(), err)
	}
}

// MustFprintf writes a formatted string to w, exiting fatally on a write
// error — used for CLI output where a broken stdout pipe leaves nothing
// sensible left to do.
func MustFprintf(w io.Writer, format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		log.Fatalf("write failed: %v", err)
	}
}
