package photo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obralog/obralog/internal/model"
)

func galleryImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, append(append([]byte{}, pngHeader...), 0), 0o644))
	return path
}

func TestGalleryCap(t *testing.T) {
	var g Gallery

	for i := 0; i < MaxPhotos; i++ {
		assert.True(t, g.CanAdd())
		require.NoError(t, g.Add(galleryImage(t, "p.png"), "", "ocorrencia"))
	}

	assert.False(t, g.CanAdd())
	assert.ErrorIs(t, g.Add(galleryImage(t, "p.png"), "", "ocorrencia"), ErrGalleryFull)
	assert.Equal(t, MaxPhotos, g.Len())
}

func TestGalleryFullRejectedBeforeRead(t *testing.T) {
	var g Gallery
	for i := 0; i < MaxPhotos; i++ {
		g.Restore(model.PhotoDraft{Data: "data:image/png;base64,YQ=="})
	}

	// The path does not exist; a full gallery must fail before opening it.
	err := g.Add(filepath.Join(t.TempDir(), "never-read.png"), "", "")
	assert.ErrorIs(t, err, ErrGalleryFull)
}

func TestGalleryRemoveCompacts(t *testing.T) {
	var g Gallery
	g.Restore(model.PhotoDraft{Data: "A"})
	g.Restore(model.PhotoDraft{Data: "B"})
	g.Restore(model.PhotoDraft{Data: "C"})

	require.True(t, g.Remove(1))

	photos := g.Photos()
	require.Len(t, photos, 2)
	assert.Equal(t, "A", photos[0].Data)
	assert.Equal(t, "C", photos[1].Data)

	assert.False(t, g.Remove(5))
	assert.False(t, g.Remove(-1))
}

func TestGalleryRestoreHonorsCap(t *testing.T) {
	var g Gallery
	for i := 0; i < MaxPhotos; i++ {
		assert.True(t, g.Restore(model.PhotoDraft{Data: "x"}))
	}
	assert.False(t, g.Restore(model.PhotoDraft{Data: "overflow"}))
	assert.Equal(t, MaxPhotos, g.Len())
}

func TestGalleryPhotosReturnsCopy(t *testing.T) {
	var g Gallery
	g.Restore(model.PhotoDraft{Data: "A"})

	photos := g.Photos()
	photos[0].Data = "mutated"

	assert.Equal(t, "A", g.Photos()[0].Data)
}

func TestGalleryReset(t *testing.T) {
	var g Gallery
	g.Restore(model.PhotoDraft{Data: "A"})
	g.Reset()
	assert.Zero(t, g.Len())
	assert.True(t, g.CanAdd())
}
