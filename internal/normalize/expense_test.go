package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obralog/obralog/internal/model"
)

func expenseDraft() model.ExpenseDraft {
	return model.ExpenseDraft{
		ProjectID:     1,
		SupplierID:    2,
		Description:   "cimento CP-II",
		Category:      model.CategoryMaterial,
		Amount:        350.5,
		DueDate:       "10/03/2024",
		PaymentMethod: model.MethodPix,
	}
}

func TestPaymentDateDefaultsToToday(t *testing.T) {
	now := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "2024-03-07", PaymentDate("", now))
	assert.Equal(t, "2024-03-05", PaymentDate("2024-03-05", now))
	assert.Equal(t, "2024-03-07", PaymentDate("   ", now))
}

func TestExpensePendingOmitsPaymentDate(t *testing.T) {
	d := expenseDraft()
	d.PaymentDate = "2024-03-05" // stale leftover from a prior edit

	p, err := Expense(d, time.Now())
	require.NoError(t, err)

	assert.Equal(t, model.PaymentPending, p.PaymentStatus)
	assert.Nil(t, p.PaymentDate)
	assert.Equal(t, "2024-03-10T00:00:00Z", p.DueDate)
}

func TestExpensePaidFillsPaymentDate(t *testing.T) {
	now := time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)

	d := expenseDraft()
	d.PaymentStatus = model.PaymentPaid

	p, err := Expense(d, now)
	require.NoError(t, err)
	require.NotNil(t, p.PaymentDate)
	assert.Equal(t, "2024-03-07T00:00:00Z", *p.PaymentDate)

	d.PaymentDate = "05/03/2024"
	p, err = Expense(d, now)
	require.NoError(t, err)
	require.NotNil(t, p.PaymentDate)
	assert.Equal(t, "2024-03-05T00:00:00Z", *p.PaymentDate)
}

func TestExpenseValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.ExpenseDraft)
		field  string
	}{
		{"missing project", func(d *model.ExpenseDraft) { d.ProjectID = 0 }, "project_id"},
		{"missing supplier", func(d *model.ExpenseDraft) { d.SupplierID = 0 }, "supplier_id"},
		{"blank description", func(d *model.ExpenseDraft) { d.Description = "   " }, "description"},
		{"missing category", func(d *model.ExpenseDraft) { d.Category = "" }, "category"},
		{"zero amount", func(d *model.ExpenseDraft) { d.Amount = 0 }, "amount"},
		{"negative amount", func(d *model.ExpenseDraft) { d.Amount = -10 }, "amount"},
		{"missing due date", func(d *model.ExpenseDraft) { d.DueDate = "" }, "due_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := expenseDraft()
			tc.mutate(&d)

			_, err := Expense(d, time.Now())
			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}
