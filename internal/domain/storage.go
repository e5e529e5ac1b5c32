package domain

import (
	"context"
	"time"
)

// FileUpload is an in-memory uploaded file handed from the delivery layer to a
// usecase. Validation and persistence happen in the usecase.
type FileUpload struct {
	Filename string
	Data     []byte
}

// AssetStorage is the external binary asset collaborator (S3 in production).
// Keys are opaque references recorded on the owning row; a Put for a record
// happens-before the row insert, and a Delete happens-before the row delete.
type AssetStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignedDownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
