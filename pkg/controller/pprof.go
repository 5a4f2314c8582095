package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux exposes the net/http/pprof handlers on a dedicated mux, so the
// serve command can mount profiling under /debug/pprof/ without pulling in
// the default mux. Named profiles (heap, goroutine, ...) are served through
// the index handler.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return mux
}
