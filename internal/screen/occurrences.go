package screen

import (
	"context"
	"strings"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
	"github.com/obralog/obralog/internal/photo"
)

// Occurrences is the occurrence screen. Up to three photos accumulate in
// Gallery and are rebuilt into the payload on every submit.
type Occurrences struct {
	backend Backend
	guard   inflight

	Projects    []model.Project
	Occurrences []model.Occurrence
	Draft       model.OccurrenceDraft
	Gallery     photo.Gallery
}

// NewOccurrences builds the occurrence screen over a backend.
func NewOccurrences(backend Backend) *Occurrences {
	return &Occurrences{backend: backend}
}

// Load fetches reference data and the occurrence list.
func (s *Occurrences) Load(ctx context.Context, f api.ListFilter) error {
	projects, err := s.backend.ListProjects(ctx)
	if err != nil {
		return err
	}
	occurrences, err := s.backend.ListOccurrences(ctx, f)
	if err != nil {
		return err
	}
	s.Projects = projects
	s.Occurrences = occurrences
	return nil
}

// OccurrenceFilter is the client-side filter over the loaded list.
type OccurrenceFilter struct {
	ProjectID int64
	Type      string
	Severity  string
	Status    string
	Text      string
}

// Filtered returns the loaded occurrences matching f.
func (s *Occurrences) Filtered(f OccurrenceFilter) []model.Occurrence {
	var out []model.Occurrence
	for _, o := range s.Occurrences {
		if f.ProjectID > 0 && o.ProjectID != f.ProjectID {
			continue
		}
		if f.Type != "" && o.Type != f.Type {
			continue
		}
		if f.Severity != "" && o.Severity != f.Severity {
			continue
		}
		if f.Status != "" && o.ResolutionStatus != f.Status {
			continue
		}
		if f.Text != "" && !strings.Contains(strings.ToLower(o.Description), strings.ToLower(f.Text)) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// BeginCreate resets the draft and gallery for a new occurrence.
func (s *Occurrences) BeginCreate(projectID int64) {
	s.Draft = model.OccurrenceDraft{
		ProjectID:        projectID,
		ResolutionStatus: model.ResolutionOpen,
	}
	s.Gallery.Reset()
}

// BeginEdit loads an existing occurrence into the draft. Server-side
// photos are re-seeded into the gallery so the outgoing list is always
// rebuilt from it, never merged with stored photo ids.
func (s *Occurrences) BeginEdit(o model.Occurrence) {
	draft := model.OccurrenceDraft{
		ID:               o.ID,
		ProjectID:        o.ProjectID,
		Date:             normalize.DateOnly(o.Date),
		Period:           o.Period,
		Type:             o.Type,
		Severity:         o.Severity,
		Description:      o.Description,
		ResolutionStatus: o.ResolutionStatus,
	}
	if o.ActionTaken != nil {
		draft.ActionTaken = *o.ActionTaken
	}
	s.Draft = draft

	s.Gallery.Reset()
	for _, ph := range o.Photos {
		s.Gallery.Restore(model.PhotoDraft{
			Data:        ph.Data,
			Description: ph.Description,
			Category:    ph.Category,
		})
	}
}

// Submit validates and normalizes the draft (with the current gallery),
// sends it, and merges the response into the list.
func (s *Occurrences) Submit(ctx context.Context) (model.Occurrence, error) {
	if err := s.guard.begin(); err != nil {
		return model.Occurrence{}, err
	}
	defer s.guard.end()

	s.Draft.Photos = s.Gallery.Photos()
	payload, err := normalize.Occurrence(s.Draft)
	if err != nil {
		return model.Occurrence{}, err
	}

	var saved model.Occurrence
	if payload.ID > 0 {
		saved, err = s.backend.UpdateOccurrence(ctx, payload)
	} else {
		saved, err = s.backend.CreateOccurrence(ctx, payload)
	}
	if err != nil {
		return model.Occurrence{}, err
	}

	s.merge(saved)
	return saved, nil
}

// SetResolution updates the resolution status (and optional action taken)
// of an occurrence and submits the full record.
func (s *Occurrences) SetResolution(ctx context.Context, id int64, status, actionTaken string) (model.Occurrence, error) {
	o, ok := s.find(id)
	if !ok {
		return model.Occurrence{}, &normalize.ValidationError{Field: "id", Message: "occurrence not found"}
	}
	s.BeginEdit(o)
	s.Draft.ResolutionStatus = status
	if actionTaken != "" {
		s.Draft.ActionTaken = actionTaken
	}
	return s.Submit(ctx)
}

// Delete removes the occurrence and compacts the list on success.
func (s *Occurrences) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteOccurrence(ctx, id); err != nil {
		return err
	}
	for i, o := range s.Occurrences {
		if o.ID == id {
			s.Occurrences = append(s.Occurrences[:i], s.Occurrences[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Occurrences) find(id int64) (model.Occurrence, bool) {
	for _, o := range s.Occurrences {
		if o.ID == id {
			return o, true
		}
	}
	return model.Occurrence{}, false
}

func (s *Occurrences) merge(saved model.Occurrence) {
	for i, o := range s.Occurrences {
		if o.ID == saved.ID {
			s.Occurrences[i] = saved
			return
		}
	}
	s.Occurrences = append(s.Occurrences, saved)
}
