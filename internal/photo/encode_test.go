package photo

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to see image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestEncodePNG(t *testing.T) {
	data := append(append([]byte{}, pngHeader...), 1, 2, 3)
	path := writeFile(t, "site.png", data)

	uri, err := Encode(path)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestEncodeRejectsNonImage(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("meeting notes, not a photo"))

	_, err := Encode(path)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestEncodeRejectsOversize(t *testing.T) {
	data := make([]byte, MaxBytes+1)
	copy(data, pngHeader)
	path := writeFile(t, "huge.png", data)

	_, err := Encode(path)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestEncodeTypeCheckedBeforeSize(t *testing.T) {
	// Oversize and not an image: the type failure wins.
	data := make([]byte, MaxBytes+1)
	path := writeFile(t, "huge.bin", data)

	_, err := Encode(path)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestEncodeMissingFile(t *testing.T) {
	_, err := Encode(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidType)
	assert.NotErrorIs(t, err, ErrTooLarge)
}

func TestPickerAttachAndClear(t *testing.T) {
	var current string
	p := NewPicker(func(dataURI *string) {
		if dataURI == nil {
			current = ""
			return
		}
		current = *dataURI
	})

	path := writeFile(t, "a.png", append(append([]byte{}, pngHeader...), 9))
	require.NoError(t, p.Attach(path))
	assert.True(t, strings.HasPrefix(current, "data:image/png;base64,"))

	p.Clear()
	assert.Empty(t, current)
}

func TestPickerFailureKeepsState(t *testing.T) {
	current := "data:image/png;base64,previous"
	p := NewPicker(func(dataURI *string) {
		if dataURI == nil {
			current = ""
			return
		}
		current = *dataURI
	})

	bad := writeFile(t, "bad.txt", []byte("plain text"))
	require.ErrorIs(t, p.Attach(bad), ErrInvalidType)
	assert.Equal(t, "data:image/png;base64,previous", current)
}
