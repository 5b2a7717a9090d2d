package storage

import "context"

// Storage persists exported files. Names are slash separated and relative to
// the storage root.
type Storage interface {
	// Save writes data under name and returns where it ended up.
	Save(ctx context.Context, name string, data []byte) (string, error)
	// List returns the top level export directories, oldest first.
	List(ctx context.Context) ([]string, error)
}
