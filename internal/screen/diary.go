package screen

import (
	"context"

	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
	"github.com/obralog/obralog/internal/photo"
)

// Diary is the diary-metadata screen: the aggregation anchor for one
// project/date/period, with its approval state and optional cover photo.
type Diary struct {
	backend Backend
	guard   inflight

	People []model.Person
	Meta   *model.DiaryMetadata
	Draft  model.DiaryMetadataDraft
}

// NewDiary builds the diary screen over a backend.
func NewDiary(backend Backend) *Diary {
	return &Diary{backend: backend}
}

// Load fetches the anchor record for the given project/date/period,
// seeding the draft. A missing anchor starts a fresh pending draft.
func (s *Diary) Load(ctx context.Context, projectID int64, date, period string) error {
	people, err := s.backend.ListPeople(ctx)
	if err != nil {
		return err
	}
	meta, err := s.backend.GetDiaryMetadata(ctx, projectID, date, period)
	if err != nil {
		return err
	}
	s.People = people
	s.Meta = meta

	if meta == nil {
		s.Draft = model.DiaryMetadataDraft{
			ProjectID:      projectID,
			Date:           date,
			Period:         period,
			ApprovalStatus: model.ApprovalPending,
		}
		return nil
	}

	draft := model.DiaryMetadataDraft{
		ID:             meta.ID,
		ProjectID:      meta.ProjectID,
		Date:           normalize.DateOnly(meta.Date),
		Period:         meta.Period,
		ApprovalStatus: meta.ApprovalStatus,
		ResponsibleID:  meta.ResponsibleID,
	}
	if meta.ApproverID != nil {
		draft.ApproverID = *meta.ApproverID
	}
	if cover := meta.CoverPhoto(); cover != nil {
		draft.CoverPhoto = cover.Data
	}
	s.Draft = draft
	return nil
}

// CoverPicker returns the photo control bound to the cover slot.
func (s *Diary) CoverPicker() *photo.Picker {
	return photo.NewPicker(func(dataURI *string) {
		if dataURI == nil {
			s.Draft.CoverPhoto = ""
			return
		}
		s.Draft.CoverPhoto = *dataURI
	})
}

// Submit validates and normalizes the draft and saves the anchor.
func (s *Diary) Submit(ctx context.Context) (model.DiaryMetadata, error) {
	if err := s.guard.begin(); err != nil {
		return model.DiaryMetadata{}, err
	}
	defer s.guard.end()

	payload, err := normalize.DiaryMetadata(s.Draft)
	if err != nil {
		return model.DiaryMetadata{}, err
	}

	saved, err := s.backend.SaveDiaryMetadata(ctx, payload)
	if err != nil {
		return model.DiaryMetadata{}, err
	}
	s.Meta = &saved
	return saved, nil
}
