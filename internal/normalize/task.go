package normalize

import "github.com/obralog/obralog/internal/model"

// ClampPct confines a completion percentage to [0,100].
func ClampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Task maps a task draft to its request body.
func Task(d model.TaskDraft) (model.TaskPayload, error) {
	if d.ProjectID <= 0 {
		return model.TaskPayload{}, failf("project_id", "select a project")
	}
	if trim(d.Date) == "" {
		return model.TaskPayload{}, failf("date", "inform the task date")
	}
	if trim(d.Description) == "" {
		return model.TaskPayload{}, failf("description", "describe the task")
	}

	status := d.Status
	if status == "" {
		status = model.TaskPlanned
	}

	return model.TaskPayload{
		ID:            d.ID,
		ProjectID:     d.ProjectID,
		Date:          CoerceTimestamp(trim(d.Date)),
		Period:        d.Period,
		Description:   trim(d.Description),
		Status:        status,
		CompletionPct: ClampPct(d.CompletionPct),
		Notes:         optional(d.Notes),
		Photos:        photoPayloads(d.ID, model.PhotoCategoryTask, d.Photos),
	}, nil
}
