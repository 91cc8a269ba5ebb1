// Package bucket stores and retrieves whole objects in Cloud Storage buckets.
package bucket

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the bucket or object does not exist.
var ErrNotFound = errors.New("object not found")

// Store writes and reads objects. Put always overwrites the existing object.
type Store interface {
	Put(ctx context.Context, bucket, object, contentType string, data []byte) error
	Get(ctx context.Context, bucket, object string) ([]byte, error)
}

// PublicURL returns the https URL under which a public object is served. Every byte of the
// object name other than unreserved characters and '/' is percent-encoded.
func PublicURL(bucket, object string) string {
	var b strings.Builder

	for i := 0; i < len(object); i++ {
		c := object[i]
		if unreserved(c) || c == '/' {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}

	return "https://storage.googleapis.com/" + bucket + "/" + b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	default:
		return false
	}
}
