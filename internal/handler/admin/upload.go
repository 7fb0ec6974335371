package admin

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/samsaracrafts/storefront/internal/storage"
)

// allowedImageExts limits uploads to common web image formats.
var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// saveImageUpload stores the uploaded file from the named form field and
// returns its public URL. Returns empty string when the field is absent, so
// forms can keep the existing image by leaving the field empty.
func saveImageUpload(ctx context.Context, store storage.Storage, r *http.Request, field, prefix string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	defer file.Close()

	contentType, err := imageContentType(header)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := prefix + "/" + uuid.New().String() + ext

	url, err := store.Put(ctx, key, file, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return url, nil
}

func imageContentType(header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedImageExts[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}
	return contentType, nil
}
