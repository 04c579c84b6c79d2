package screen

import (
	"context"
	"strings"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
	"github.com/obralog/obralog/internal/photo"
)

// Tasks is the task screen.
type Tasks struct {
	backend Backend
	guard   inflight

	Projects []model.Project
	Tasks    []model.Task
	Draft    model.TaskDraft
	Gallery  photo.Gallery
}

// NewTasks builds the task screen over a backend.
func NewTasks(backend Backend) *Tasks {
	return &Tasks{backend: backend}
}

// Load fetches reference data and the task list.
func (s *Tasks) Load(ctx context.Context, f api.ListFilter) error {
	projects, err := s.backend.ListProjects(ctx)
	if err != nil {
		return err
	}
	tasks, err := s.backend.ListTasks(ctx, f)
	if err != nil {
		return err
	}
	s.Projects = projects
	s.Tasks = tasks
	return nil
}

// TaskFilter is the client-side filter over the loaded list.
type TaskFilter struct {
	ProjectID int64
	Status    string
	Text      string
}

// Filtered returns the loaded tasks matching f.
func (s *Tasks) Filtered(f TaskFilter) []model.Task {
	var out []model.Task
	for _, t := range s.Tasks {
		if f.ProjectID > 0 && t.ProjectID != f.ProjectID {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Text != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Text)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// BeginCreate resets the draft and gallery for a new task.
func (s *Tasks) BeginCreate(projectID int64) {
	s.Draft = model.TaskDraft{
		ProjectID: projectID,
		Status:    model.TaskPlanned,
	}
	s.Gallery.Reset()
}

// BeginEdit loads an existing task into the draft and re-seeds the
// gallery from its stored photos.
func (s *Tasks) BeginEdit(t model.Task) {
	draft := model.TaskDraft{
		ID:            t.ID,
		ProjectID:     t.ProjectID,
		Date:          normalize.DateOnly(t.Date),
		Period:        t.Period,
		Description:   t.Description,
		Status:        t.Status,
		CompletionPct: t.CompletionPct,
	}
	if t.Notes != nil {
		draft.Notes = *t.Notes
	}
	s.Draft = draft

	s.Gallery.Reset()
	for _, ph := range t.Photos {
		s.Gallery.Restore(model.PhotoDraft{
			Data:        ph.Data,
			Description: ph.Description,
			Category:    ph.Category,
		})
	}
}

// Submit validates and normalizes the draft (with the current gallery),
// sends it, and merges the response into the list.
func (s *Tasks) Submit(ctx context.Context) (model.Task, error) {
	if err := s.guard.begin(); err != nil {
		return model.Task{}, err
	}
	defer s.guard.end()

	s.Draft.Photos = s.Gallery.Photos()
	payload, err := normalize.Task(s.Draft)
	if err != nil {
		return model.Task{}, err
	}

	var saved model.Task
	if payload.ID > 0 {
		saved, err = s.backend.UpdateTask(ctx, payload)
	} else {
		saved, err = s.backend.CreateTask(ctx, payload)
	}
	if err != nil {
		return model.Task{}, err
	}

	s.merge(saved)
	return saved, nil
}

// SetProgress updates a task's completion percentage (clamped by the
// normalizer), moving it to done at 100 and to in-progress when it first
// leaves zero.
func (s *Tasks) SetProgress(ctx context.Context, id int64, pct int) (model.Task, error) {
	t, ok := s.find(id)
	if !ok {
		return model.Task{}, &normalize.ValidationError{Field: "id", Message: "task not found"}
	}
	s.BeginEdit(t)
	s.Draft.CompletionPct = pct
	switch {
	case pct >= 100:
		s.Draft.Status = model.TaskDone
	case pct > 0 && s.Draft.Status == model.TaskPlanned:
		s.Draft.Status = model.TaskInProgress
	}
	return s.Submit(ctx)
}

// Delete removes the task and compacts the list on success.
func (s *Tasks) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteTask(ctx, id); err != nil {
		return err
	}
	for i, t := range s.Tasks {
		if t.ID == id {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Tasks) find(id int64) (model.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (s *Tasks) merge(saved model.Task) {
	for i, t := range s.Tasks {
		if t.ID == saved.ID {
			s.Tasks[i] = saved
			return
		}
	}
	s.Tasks = append(s.Tasks, saved)
}
