package normalize

import "github.com/obralog/obralog/internal/model"

// DailyLog maps a daily-log draft to its request body.
//
// The approver reference is a conditional field: it is omitted entirely
// while the log is pending, and required (positive) as soon as the status
// moves to approved or rejected. The backend rejects a present zero
// reference, so omission and validation both happen here, before any call.
func DailyLog(d model.DailyLogDraft) (model.DailyLogPayload, error) {
	if d.ProjectID <= 0 {
		return model.DailyLogPayload{}, failf("project_id", "select a project")
	}
	if trim(d.Date) == "" {
		return model.DailyLogPayload{}, failf("date", "inform the log date")
	}
	if trim(d.Period) == "" {
		return model.DailyLogPayload{}, failf("period", "select the period")
	}
	if trim(d.Activities) == "" {
		return model.DailyLogPayload{}, failf("activities", "describe the day's activities")
	}
	if d.ResponsibleID <= 0 {
		return model.DailyLogPayload{}, failf("responsible_id", "select the responsible person")
	}

	status := d.ApprovalStatus
	if status == "" {
		status = model.ApprovalPending
	}

	p := model.DailyLogPayload{
		ID:             d.ID,
		ProjectID:      d.ProjectID,
		Date:           CoerceTimestamp(trim(d.Date)),
		Period:         d.Period,
		Activities:     trim(d.Activities),
		Occurrences:    optional(d.Occurrences),
		Notes:          optional(d.Notes),
		ResponsibleID:  d.ResponsibleID,
		ApprovalStatus: status,
	}

	if status != model.ApprovalPending {
		if d.ApproverID <= 0 {
			verb := "approved"
			if status == model.ApprovalRejected {
				verb = "rejected"
			}
			return model.DailyLogPayload{}, failf("approver_id", "select who "+verb+" the log")
		}
		p.ApproverID = &d.ApproverID
	}

	if d.Photo != "" {
		p.Photo = &model.PhotoPayload{
			EntityID:     d.ID,
			Data:         d.Photo,
			DisplayOrder: 0,
			Category:     model.PhotoCategoryLog,
		}
	}

	return p, nil
}
