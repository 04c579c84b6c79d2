package photo

import (
	"sync"

	"github.com/obralog/obralog/internal/model"
)

// MaxPhotos is the gallery cap used by the occurrence and task forms.
const MaxPhotos = 3

// Gallery is an ordered, capped list of pending photos. Display order is
// always the current array index; removing an entry compacts the slice
// and the old order values are not preserved.
type Gallery struct {
	mu     sync.Mutex
	busy   bool
	photos []model.PhotoDraft
}

// CanAdd reports whether the gallery has a free slot. The add control is
// inert when it returns false.
func (g *Gallery) CanAdd() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.photos) < MaxPhotos
}

// Add validates, encodes and appends the file at path. A full gallery is
// rejected before the file is even opened; a concurrent add fails with
// ErrBusy. On any failure the stored list is unchanged.
func (g *Gallery) Add(path, description, category string) error {
	g.mu.Lock()
	if len(g.photos) >= MaxPhotos {
		g.mu.Unlock()
		return ErrGalleryFull
	}
	if g.busy {
		g.mu.Unlock()
		return ErrBusy
	}
	g.busy = true
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.busy = false
		g.mu.Unlock()
	}()

	uri, err := Encode(path)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.photos) >= MaxPhotos {
		return ErrGalleryFull
	}
	g.photos = append(g.photos, model.PhotoDraft{
		Data:        uri,
		Description: description,
		Category:    category,
	})
	return nil
}

// Restore appends an already-encoded photo, e.g. when re-seeding the
// gallery from a stored record. The cap still applies.
func (g *Gallery) Restore(d model.PhotoDraft) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.photos) >= MaxPhotos {
		return false
	}
	g.photos = append(g.photos, d)
	return true
}

// Remove drops the entry at index i, compacting the list.
func (g *Gallery) Remove(i int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i < 0 || i >= len(g.photos) {
		return false
	}
	g.photos = append(g.photos[:i], g.photos[i+1:]...)
	return true
}

// Photos returns a copy of the current list in display order.
func (g *Gallery) Photos() []model.PhotoDraft {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]model.PhotoDraft, len(g.photos))
	copy(out, g.photos)
	return out
}

// Len returns the number of stored photos.
func (g *Gallery) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.photos)
}

// Reset clears the gallery, e.g. when a form draft is discarded.
func (g *Gallery) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.photos = nil
}
