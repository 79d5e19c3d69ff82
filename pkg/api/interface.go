package api

import (
	"context"
	"errors"
)

// ErrNotFound is returned by FetchOne and Delete when the named
// resource does not exist on the server.
var ErrNotFound = errors.New("no matching entry found")

// Transport defines the wire operations the projection engine needs
// from the manager API. Implementations must be safe for concurrent
// use; page fetches themselves are issued sequentially by the caller.
type Transport interface {
	// FetchPage retrieves one bounded batch of records for a list
	// query. fields names the wire paths the caller will project so
	// servers that support partial responses can trim the payload.
	FetchPage(ctx context.Context, kind string, filters map[string]string, fields []string, offset, limit int) (*Page, error)

	// FetchOne retrieves a single record by identifier.
	// Returns ErrNotFound if the resource does not exist.
	FetchOne(ctx context.Context, kind, id string, fields []string) (Record, error)

	// Delete removes a single resource by identifier.
	// Returns ErrNotFound if the resource does not exist.
	Delete(ctx context.Context, kind, id string) error

	// ServerVersion returns the manager version advertised during
	// session establishment. Zero if the server did not report one.
	ServerVersion() Version

	// Close releases resources. Must be called when done.
	Close() error
}
