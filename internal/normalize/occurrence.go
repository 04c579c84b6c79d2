package normalize

import "github.com/obralog/obralog/internal/model"

// photoPayloads rebuilds the outgoing photo list from the in-memory
// gallery. The list is never merged with server-side photo ids; every
// entry carries the parent placeholder id and its current array position.
func photoPayloads(parentID int64, category string, photos []model.PhotoDraft) []model.PhotoPayload {
	out := make([]model.PhotoPayload, 0, len(photos))
	for i, ph := range photos {
		cat := ph.Category
		if cat == "" {
			cat = category
		}
		out = append(out, model.PhotoPayload{
			EntityID:     parentID,
			Data:         ph.Data,
			Description:  ph.Description,
			DisplayOrder: i,
			Category:     cat,
		})
	}
	return out
}

// Occurrence maps an occurrence draft to its request body.
func Occurrence(d model.OccurrenceDraft) (model.OccurrencePayload, error) {
	if d.ProjectID <= 0 {
		return model.OccurrencePayload{}, failf("project_id", "select a project")
	}
	if trim(d.Date) == "" {
		return model.OccurrencePayload{}, failf("date", "inform the occurrence date")
	}
	if trim(d.Type) == "" {
		return model.OccurrencePayload{}, failf("type", "select the occurrence type")
	}
	if trim(d.Severity) == "" {
		return model.OccurrencePayload{}, failf("severity", "select the severity")
	}
	if trim(d.Description) == "" {
		return model.OccurrencePayload{}, failf("description", "describe the occurrence")
	}

	resolution := d.ResolutionStatus
	if resolution == "" {
		resolution = model.ResolutionOpen
	}

	return model.OccurrencePayload{
		ID:               d.ID,
		ProjectID:        d.ProjectID,
		Date:             CoerceTimestamp(trim(d.Date)),
		Period:           d.Period,
		Type:             d.Type,
		Severity:         d.Severity,
		Description:      trim(d.Description),
		ResolutionStatus: resolution,
		ActionTaken:      optional(d.ActionTaken),
		Photos:           photoPayloads(d.ID, model.PhotoCategoryOccurrence, d.Photos),
	}, nil
}
