package storage

import (
	"context"
	"io"
)

// ImageStorage is the contract for publication image storage backends.
type ImageStorage interface {
	// UploadImage stores the image and returns the reference to persist
	// (a generated file name for local storage, a URL for cloudinary).
	UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error)
	// DeleteImage removes a previously stored image.
	DeleteImage(ctx context.Context, folder, ref string) error
}
