package uploader

import (
	"context"
	"fmt"
)

// Kind selects the remote resource type for an upload.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Folders on the media host, matching the catalog's asset layout.
const (
	ImageFolder = "betahome"
	VideoFolder = "betavideos"
)

// Uploader pushes a local file to the media host and returns a durable URL.
// Implementations must be safe for concurrent use; callers own the local
// file's lifetime.
type Uploader interface {
	Upload(ctx context.Context, localPath string, kind Kind, folder string) (string, error)
}

// UploadError reports a failed remote media call.
type UploadError struct {
	Path string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Path, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
