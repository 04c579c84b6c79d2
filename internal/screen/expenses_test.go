package screen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
}

func expensesScreen(backend *fakeBackend) *Expenses {
	s := NewExpenses(backend)
	s.now = fixedNow
	return s
}

func TestExpensesSubmitCreates(t *testing.T) {
	backend := &fakeBackend{}
	s := expensesScreen(backend)

	s.BeginCreate(1)
	s.Draft.SupplierID = 2
	s.Draft.Description = "areia lavada"
	s.Draft.Category = model.CategoryMaterial
	s.Draft.Amount = 420
	s.Draft.DueDate = "05/03/2024"

	saved, err := s.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, backend.createCalls)
	assert.Zero(t, backend.updateCalls)
	assert.Equal(t, "2024-03-05T00:00:00Z", backend.lastExpense.DueDate)
	assert.Nil(t, backend.lastExpense.PaymentDate)

	require.Len(t, s.Expenses, 1)
	assert.Equal(t, saved.ID, s.Expenses[0].ID)
}

func TestExpensesValidationBlocksCall(t *testing.T) {
	backend := &fakeBackend{}
	s := expensesScreen(backend)

	s.BeginCreate(1)
	// no supplier, no description

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, normalize.IsValidation(err))
	assert.Zero(t, backend.createCalls, "invalid draft must never reach the backend")
	assert.Empty(t, s.Expenses)
}

func TestExpensesSubmitUpdatesInPlace(t *testing.T) {
	backend := &fakeBackend{expenses: []model.Expense{
		{ID: 5, ProjectID: 1, SupplierID: 2, Description: "cimento", Category: "material", Amount: 100, DueDate: "2024-03-05T00:00:00Z", PaymentStatus: model.PaymentPending},
		{ID: 6, ProjectID: 1, SupplierID: 2, Description: "brita", Category: "material", Amount: 50, DueDate: "2024-03-06T00:00:00Z", PaymentStatus: model.PaymentPending},
	}}
	s := expensesScreen(backend)
	require.NoError(t, s.Load(context.Background(), api.ListFilter{}))

	s.BeginEdit(s.Expenses[0])
	assert.Equal(t, "2024-03-05", s.Draft.DueDate, "stored timestamp rounds back to a picker date")
	s.Draft.Amount = 120

	saved, err := s.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, backend.updateCalls)
	assert.Zero(t, backend.createCalls)
	require.Len(t, s.Expenses, 2)
	assert.Equal(t, saved.Amount, s.Expenses[0].Amount)
	assert.Equal(t, int64(6), s.Expenses[1].ID, "other rows untouched")
}

func TestExpensesMarkPaidDefaultsDate(t *testing.T) {
	backend := &fakeBackend{expenses: []model.Expense{
		{ID: 5, ProjectID: 1, SupplierID: 2, Description: "cimento", Category: "material", Amount: 100, DueDate: "2024-03-05T00:00:00Z", PaymentStatus: model.PaymentPending},
	}}
	s := expensesScreen(backend)
	require.NoError(t, s.Load(context.Background(), api.ListFilter{}))

	saved, err := s.MarkPaid(context.Background(), 5, "")
	require.NoError(t, err)

	assert.Equal(t, model.PaymentPaid, saved.PaymentStatus)
	require.NotNil(t, backend.lastExpense.PaymentDate)
	assert.Equal(t, "2024-03-07T00:00:00Z", *backend.lastExpense.PaymentDate)
}

func TestExpensesMarkPaidUnknownID(t *testing.T) {
	backend := &fakeBackend{}
	s := expensesScreen(backend)

	_, err := s.MarkPaid(context.Background(), 99, "")
	require.Error(t, err)
	assert.True(t, normalize.IsValidation(err))
	assert.Zero(t, backend.updateCalls)
}

func TestExpensesDeleteCompacts(t *testing.T) {
	backend := &fakeBackend{expenses: []model.Expense{{ID: 5}, {ID: 6}}}
	s := expensesScreen(backend)
	require.NoError(t, s.Load(context.Background(), api.ListFilter{}))

	require.NoError(t, s.Delete(context.Background(), 5))
	require.Len(t, s.Expenses, 1)
	assert.Equal(t, int64(6), s.Expenses[0].ID)
}

func TestExpensesDeleteKeepsListOnError(t *testing.T) {
	backend := &fakeBackend{expenses: []model.Expense{{ID: 5}}}
	s := expensesScreen(backend)
	require.NoError(t, s.Load(context.Background(), api.ListFilter{}))

	backend.err = errors.New("backend down")
	require.Error(t, s.Delete(context.Background(), 5))
	assert.Len(t, s.Expenses, 1)
}

func TestExpensesFiltered(t *testing.T) {
	s := expensesScreen(&fakeBackend{})
	s.Expenses = []model.Expense{
		{ID: 1, ProjectID: 1, SupplierID: 2, Category: "material", PaymentStatus: "PENDENTE", Description: "Areia lavada"},
		{ID: 2, ProjectID: 1, SupplierID: 3, Category: "transporte", PaymentStatus: "PAGO", Description: "Frete da areia"},
		{ID: 3, ProjectID: 2, SupplierID: 2, Category: "material", PaymentStatus: "PAGO", Description: "Cimento"},
	}

	assert.Len(t, s.Filtered(ExpenseFilter{}), 3)
	assert.Len(t, s.Filtered(ExpenseFilter{ProjectID: 1}), 2)
	assert.Len(t, s.Filtered(ExpenseFilter{Status: "PAGO"}), 2)
	assert.Len(t, s.Filtered(ExpenseFilter{SupplierID: 2, Category: "material"}), 2)

	got := s.Filtered(ExpenseFilter{Text: "areia"})
	require.Len(t, got, 2, "text match is case-insensitive")
	assert.Equal(t, int64(1), got[0].ID)
}
