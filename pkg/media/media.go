// Package media uploads image bytes to the hosted storage bucket and hands
// back public URLs. Nothing else in the backend touches image bytes; user
// documents only carry the resulting URL string.
package media

import (
	"context"
	"fmt"
	"net/http"
	"path"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Uploader writes blobs to a storage bucket
type Uploader struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewUploader creates an Uploader for the given bucket
func NewUploader(bucket *storage.BucketHandle, bucketName string) *Uploader {
	return &Uploader{bucket: bucket, bucketName: bucketName}
}

// Upload stores data under a generated name inside folder and returns the
// public URL. The content type is sniffed from the bytes.
func (u *Uploader) Upload(ctx context.Context, data []byte, folder string) (string, error) {
	object := path.Join(folder, uuid.NewString())

	w := u.bucket.Object(object).NewWriter(ctx)
	w.ContentType = http.DetectContentType(data)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("writing object %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("closing object %s: %w", object, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, object), nil
}
