package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/anselboero/cloud-functions/internal/metrics"
)

type invocationKey struct{}

// Invocation identifies a single function call in the logs.
type Invocation struct {
	ID       string
	Function string
	Debug    bool
}

// Instrument wraps h with an invocation id (returned in the X-Invocation-Id header), a log
// line per request and the invocation metrics.
func Instrument(function string, debug bool, h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		inv := &Invocation{
			ID:       uuid.NewString(),
			Function: function,
			Debug:    debug,
		}

		w.Header().Set("X-Invocation-Id", inv.ID)

		rec := &recorder{ResponseWriter: w, status: http.StatusOK}
		ctx := context.WithValue(r.Context(), invocationKey{}, inv)

		inv.debugf("%v %v", r.Method, r.URL.Path)

		h.ServeHTTP(rec, r.WithContext(ctx))

		elapsed := time.Since(start)
		metrics.ObserveInvocation(function, rec.status, elapsed)

		inv.infof("%v %v %d (%d bytes, %v)", r.Method, r.URL.Path, rec.status, rec.bytes, elapsed.Round(time.Millisecond))
	}
}

func invocation(ctx context.Context) *Invocation {
	if inv, ok := ctx.Value(invocationKey{}).(*Invocation); ok {
		return inv
	}

	return &Invocation{ID: "-", Function: "-"}
}

func (i *Invocation) debugf(format string, args ...any) {
	if i.Debug {
		i.print("DEBUG", format, args...)
	}
}

func (i *Invocation) infof(format string, args ...any) {
	i.print("INFO", format, args...)
}

func (i *Invocation) warnf(format string, args ...any) {
	i.print("ERROR", format, args...)
}

func (i *Invocation) print(level string, format string, args ...any) {
	log.Printf("%-5s [%s] %s %s", level, i.ID, i.Function, fmt.Sprintf(format, args...))
}

type recorder struct {
	http.ResponseWriter
	status  int
	bytes   int
	written bool
}

func (r *recorder) WriteHeader(status int) {
	if !r.written {
		r.status = status
		r.written = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.written = true
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n

	return n, err
}
