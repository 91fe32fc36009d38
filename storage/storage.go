package storage

import "context"

// Uploader is the object-storage collaborator that receives archival
// documents. Implementations return the public URL of the stored document.
type Uploader interface {
	UploadDocument(ctx context.Context, name, content string) (string, error)
}
