package application

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// FileStorage is implemented by helpers.GCSStorage.
type FileStorage interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

var ErrStorageNotConfigured = errors.New("file storage not configured")

// Upload is a file received from a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// objectKey builds "<prefix>/<owner>/<uuid><ext>".
func objectKey(prefix, owner, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join(prefix, owner, uuid.NewString()+ext)
}

// replaceProfilePicture deletes the owner's stored picture, if any, and uploads the new one.
// storedKey must come from the persisted record, never from the request.
func replaceProfilePicture(ctx context.Context, st FileStorage, owner, storedKey string, up *Upload) (key, url string, err error) {
	if st == nil {
		return "", "", ErrStorageNotConfigured
	}
	if storedKey != "" {
		if err := st.Delete(ctx, storedKey); err != nil {
			return "", "", err
		}
	}
	key = objectKey("profiles", owner, up.Filename)
	url, err = st.Upload(ctx, key, up.ContentType, up.Body)
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}
