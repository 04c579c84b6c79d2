package screen

import (
	"context"
	"strings"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
	"github.com/obralog/obralog/internal/photo"
)

// DailyLogs is the daily-log screen. The draft's single photo is attached
// through Picker, which clears or replaces it atomically.
type DailyLogs struct {
	backend Backend
	guard   inflight

	Projects []model.Project
	People   []model.Person
	Logs     []model.DailyLog
	Draft    model.DailyLogDraft
}

// NewDailyLogs builds the daily-log screen over a backend.
func NewDailyLogs(backend Backend) *DailyLogs {
	return &DailyLogs{backend: backend}
}

// Load fetches reference data and the log list.
func (s *DailyLogs) Load(ctx context.Context, f api.ListFilter) error {
	projects, err := s.backend.ListProjects(ctx)
	if err != nil {
		return err
	}
	people, err := s.backend.ListPeople(ctx)
	if err != nil {
		return err
	}
	logs, err := s.backend.ListDailyLogs(ctx, f)
	if err != nil {
		return err
	}
	s.Projects = projects
	s.People = people
	s.Logs = logs
	return nil
}

// LogFilter is the client-side filter over the loaded logs.
type LogFilter struct {
	ProjectID int64
	Status    string
	Period    string
	Text      string
}

// Filtered returns the loaded logs matching f.
func (s *DailyLogs) Filtered(f LogFilter) []model.DailyLog {
	var out []model.DailyLog
	for _, l := range s.Logs {
		if f.ProjectID > 0 && l.ProjectID != f.ProjectID {
			continue
		}
		if f.Status != "" && l.ApprovalStatus != f.Status {
			continue
		}
		if f.Period != "" && l.Period != f.Period {
			continue
		}
		if f.Text != "" && !strings.Contains(strings.ToLower(l.Activities), strings.ToLower(f.Text)) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Picker returns the photo control bound to the draft's photo slot.
func (s *DailyLogs) Picker() *photo.Picker {
	return photo.NewPicker(func(dataURI *string) {
		if dataURI == nil {
			s.Draft.Photo = ""
			return
		}
		s.Draft.Photo = *dataURI
	})
}

// BeginCreate resets the draft for a new log.
func (s *DailyLogs) BeginCreate(projectID int64) {
	s.Draft = model.DailyLogDraft{
		ProjectID:      projectID,
		ApprovalStatus: model.ApprovalPending,
	}
}

// BeginEdit loads an existing log into the draft.
func (s *DailyLogs) BeginEdit(l model.DailyLog) {
	draft := model.DailyLogDraft{
		ID:             l.ID,
		ProjectID:      l.ProjectID,
		Date:           normalize.DateOnly(l.Date),
		Period:         l.Period,
		Activities:     l.Activities,
		Occurrences:    l.Occurrences,
		Notes:          l.Notes,
		ResponsibleID:  l.ResponsibleID,
		ApprovalStatus: l.ApprovalStatus,
	}
	if l.ApproverID != nil {
		draft.ApproverID = *l.ApproverID
	}
	if l.Photo != nil {
		draft.Photo = l.Photo.Data
	}
	s.Draft = draft
}

// Submit validates and normalizes the draft, sends it, and merges the
// response into the list.
func (s *DailyLogs) Submit(ctx context.Context) (model.DailyLog, error) {
	if err := s.guard.begin(); err != nil {
		return model.DailyLog{}, err
	}
	defer s.guard.end()

	payload, err := normalize.DailyLog(s.Draft)
	if err != nil {
		return model.DailyLog{}, err
	}

	var saved model.DailyLog
	if payload.ID > 0 {
		saved, err = s.backend.UpdateDailyLog(ctx, payload)
	} else {
		saved, err = s.backend.CreateDailyLog(ctx, payload)
	}
	if err != nil {
		return model.DailyLog{}, err
	}

	s.merge(saved)
	return saved, nil
}

// SetApproval moves a log to approved or rejected with the given
// approver and submits the full record. The approver rule is enforced by
// the normalizer before the call.
func (s *DailyLogs) SetApproval(ctx context.Context, id int64, status string, approverID int64) (model.DailyLog, error) {
	l, ok := s.find(id)
	if !ok {
		return model.DailyLog{}, &normalize.ValidationError{Field: "id", Message: "daily log not found"}
	}
	s.BeginEdit(l)
	s.Draft.ApprovalStatus = status
	s.Draft.ApproverID = approverID
	return s.Submit(ctx)
}

// Delete removes the log and compacts the list on success.
func (s *DailyLogs) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteDailyLog(ctx, id); err != nil {
		return err
	}
	for i, l := range s.Logs {
		if l.ID == id {
			s.Logs = append(s.Logs[:i], s.Logs[i+1:]...)
			break
		}
	}
	return nil
}

func (s *DailyLogs) find(id int64) (model.DailyLog, bool) {
	for _, l := range s.Logs {
		if l.ID == id {
			return l, true
		}
	}
	return model.DailyLog{}, false
}

func (s *DailyLogs) merge(saved model.DailyLog) {
	for i, l := range s.Logs {
		if l.ID == saved.ID {
			s.Logs[i] = saved
			return
		}
	}
	s.Logs = append(s.Logs, saved)
}
