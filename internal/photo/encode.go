// Package photo turns user-chosen image files into the embeddable data-URI
// form the backend stores, enforcing the type and size rules before any
// bytes are encoded.
package photo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// MaxBytes is the source-size cap for a single photo (5 MB).
const MaxBytes = 5 * 1024 * 1024

var (
	// ErrInvalidType means the file content is not an image.
	ErrInvalidType = errors.New("file is not an image")
	// ErrTooLarge means the file exceeds MaxBytes.
	ErrTooLarge = errors.New("image exceeds the 5 MB limit")
	// ErrBusy means an encode or submit is already in flight.
	ErrBusy = errors.New("another operation is in progress")
	// ErrGalleryFull means the gallery already holds MaxPhotos entries.
	ErrGalleryFull = errors.New("photo limit reached")
)

// Encode reads the file at path and returns it as a
// data:<mime>;base64,<payload> string. Validation is sequential and the
// first failure wins: content must sniff as image/*, then size must not
// exceed MaxBytes. A read failure is an encoding error, distinct from the
// validation ones.
func Encode(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading photo %s: %w", path, err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrInvalidType
	}
	if len(data) > MaxBytes {
		return "", ErrTooLarge
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
