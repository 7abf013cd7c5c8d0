package contracts

import "context"

// DocumentStorage reads and replaces one whole serialized document.
type DocumentStorage interface {
	// Read returns found=false with a nil error when no document exists yet.
	Read(ctx context.Context) (data []byte, found bool, err error)
	Write(ctx context.Context, data []byte) error
	Driver() string
	Location() string
}
