// Package images turns the image field of a listing form into the string
// stored on the listing: a remote URL, an uploaded object URL or an inline
// data URL.
package images

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gatormarket/internal/client/models"
)

// MaxFileSize caps local image files.
const MaxFileSize = 5 << 20

var (
	ErrTooLarge = errors.New("image file exceeds 5MB")
	ErrNotImage = errors.New("file is not an image")
)

// Uploader stores image bytes somewhere reachable and returns their URL.
type Uploader interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

type Resolver struct {
	uploader Uploader
}

// NewResolver builds a Resolver. A nil uploader makes local files inline.
func NewResolver(u Uploader) *Resolver {
	return &Resolver{uploader: u}
}

// Resolve maps the raw form input to a listing image:
//   - "" becomes models.DefaultImage,
//   - http(s) and data URLs are kept as they are,
//   - anything else is read as a local file path.
func (r *Resolver) Resolve(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	switch {
	case input == "":
		return models.DefaultImage, nil
	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"), strings.HasPrefix(input, "data:"):
		return input, nil
	}

	data, err := readLimited(input)
	if err != nil {
		return "", err
	}

	ct := http.DetectContentType(data)
	if !strings.HasPrefix(ct, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, ct)
	}

	if r.uploader != nil {
		url, err := r.uploader.Upload(ctx, filepath.Base(input), data, ct)
		if err != nil {
			return "", fmt.Errorf("upload image: %w", err)
		}
		return url, nil
	}
	return DataURL(ct, data), nil
}

func DataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// readLimited reads path without ever buffering more than MaxFileSize+1
// bytes. The size is checked before and after the read since the file may
// grow in between.
func readLimited(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if fi.Size() > MaxFileSize {
		return nil, ErrTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, ErrTooLarge
	}
	return data, nil
}
