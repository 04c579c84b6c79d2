package normalize

import "github.com/obralog/obralog/internal/model"

// DiaryMetadata maps a diary metadata draft to its request body. The
// cover photo, when set, becomes the single element of the photo list;
// the approver rule mirrors the daily-log one.
func DiaryMetadata(d model.DiaryMetadataDraft) (model.DiaryMetadataPayload, error) {
	if d.ProjectID <= 0 {
		return model.DiaryMetadataPayload{}, failf("project_id", "select a project")
	}
	if trim(d.Date) == "" {
		return model.DiaryMetadataPayload{}, failf("date", "inform the diary date")
	}
	if trim(d.Period) == "" {
		return model.DiaryMetadataPayload{}, failf("period", "select the period")
	}
	if d.ResponsibleID <= 0 {
		return model.DiaryMetadataPayload{}, failf("responsible_id", "select the responsible person")
	}

	status := d.ApprovalStatus
	if status == "" {
		status = model.ApprovalPending
	}

	p := model.DiaryMetadataPayload{
		ID:             d.ID,
		ProjectID:      d.ProjectID,
		Date:           CoerceTimestamp(trim(d.Date)),
		Period:         d.Period,
		ApprovalStatus: status,
		ResponsibleID:  d.ResponsibleID,
		Photos:         []model.PhotoPayload{},
	}

	if status != model.ApprovalPending {
		if d.ApproverID <= 0 {
			verb := "approved"
			if status == model.ApprovalRejected {
				verb = "rejected"
			}
			return model.DiaryMetadataPayload{}, failf("approver_id", "select who "+verb+" the diary")
		}
		p.ApproverID = &d.ApproverID
	}

	if d.CoverPhoto != "" {
		p.Photos = []model.PhotoPayload{{
			EntityID:     d.ID,
			Data:         d.CoverPhoto,
			DisplayOrder: 0,
			Category:     model.PhotoCategoryCover,
		}}
	}

	return p, nil
}
