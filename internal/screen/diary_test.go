package screen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
)

func TestDiaryLoadMissingAnchor(t *testing.T) {
	s := NewDiary(&fakeBackend{})

	require.NoError(t, s.Load(context.Background(), 1, "2024-03-05", model.PeriodFullDay))

	assert.Nil(t, s.Meta)
	assert.Equal(t, int64(1), s.Draft.ProjectID)
	assert.Equal(t, "2024-03-05", s.Draft.Date)
	assert.Equal(t, model.ApprovalPending, s.Draft.ApprovalStatus)
	assert.Zero(t, s.Draft.ID)
}

func TestDiaryLoadExistingAnchor(t *testing.T) {
	approver := int64(2)
	backend := &fakeBackend{meta: &model.DiaryMetadata{
		ID:             9,
		ProjectID:      1,
		Date:           "2024-03-05T00:00:00Z",
		Period:         model.PeriodFullDay,
		ApprovalStatus: model.ApprovalApproved,
		ResponsibleID:  7,
		ApproverID:     &approver,
		Photos: []model.Photo{
			{ID: 30, EntityID: 9, Data: "data:image/jpeg;base64,YQ==", Category: model.PhotoCategoryCover},
		},
	}}
	s := NewDiary(backend)

	require.NoError(t, s.Load(context.Background(), 1, "2024-03-05", model.PeriodFullDay))

	assert.Equal(t, int64(9), s.Draft.ID)
	assert.Equal(t, "2024-03-05", s.Draft.Date)
	assert.Equal(t, int64(2), s.Draft.ApproverID)
	assert.Equal(t, "data:image/jpeg;base64,YQ==", s.Draft.CoverPhoto)
}

func TestDiarySubmitSendsCover(t *testing.T) {
	backend := &fakeBackend{}
	s := NewDiary(backend)
	require.NoError(t, s.Load(context.Background(), 1, "2024-03-05", model.PeriodFullDay))
	s.Draft.ResponsibleID = 7
	s.Draft.CoverPhoto = "data:image/jpeg;base64,YQ=="

	saved, err := s.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, backend.lastMeta.Photos, 1)
	assert.Equal(t, model.PhotoCategoryCover, backend.lastMeta.Photos[0].Category)
	require.NotNil(t, s.Meta)
	assert.Equal(t, saved.ID, s.Meta.ID)
}

func TestDiaryApprovalRule(t *testing.T) {
	backend := &fakeBackend{}
	s := NewDiary(backend)
	require.NoError(t, s.Load(context.Background(), 1, "2024-03-05", model.PeriodFullDay))
	s.Draft.ResponsibleID = 7
	s.Draft.ApprovalStatus = model.ApprovalApproved

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, normalize.IsValidation(err))
	assert.Zero(t, backend.createCalls)

	s.Draft.ApproverID = 2
	saved, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalApproved, saved.ApprovalStatus)
}

func TestSuppliersSubmitAndFilter(t *testing.T) {
	backend := &fakeBackend{}
	s := NewSuppliers(backend)

	s.BeginCreate()
	assert.True(t, s.Draft.Active, "new suppliers start active")
	s.Draft.Name = "Concreteira Boa Vista"
	s.Draft.DocumentType = model.DocumentCompany
	s.Draft.DocumentNumber = "12.345.678/0001-90"

	saved, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, backend.createCalls)
	require.Len(t, s.Suppliers, 1)
	assert.Equal(t, saved.ID, s.Suppliers[0].ID)
}

func TestSuppliersFiltered(t *testing.T) {
	s := NewSuppliers(&fakeBackend{})
	s.Suppliers = []model.Supplier{
		{ID: 1, Name: "Concreteira Boa Vista", DocumentNumber: "12.345.678/0001-90", ContactName: "Marcos", Active: true},
		{ID: 2, Name: "Areial do Sul", DocumentNumber: "98.765.432/0001-10", ContactName: "Paula", Active: false},
	}

	assert.Len(t, s.Filtered(SupplierFilter{}), 2)
	assert.Len(t, s.Filtered(SupplierFilter{OnlyActive: true}), 1)
	assert.Len(t, s.Filtered(SupplierFilter{Text: "boa vista"}), 1)
	assert.Len(t, s.Filtered(SupplierFilter{Text: "98.765"}), 1)
	assert.Len(t, s.Filtered(SupplierFilter{Text: "paula"}), 1)
	assert.Empty(t, s.Filtered(SupplierFilter{Text: "paula", OnlyActive: true}))
}
