package normalize

import (
	"time"

	"github.com/obralog/obralog/internal/model"
)

// PaymentDate resolves the payment date for a paid expense: the draft
// value when present, otherwise today in YYYY-MM-DD form. Pending
// expenses never carry a payment date.
func PaymentDate(draft string, now time.Time) string {
	if t := trim(draft); t != "" {
		return t
	}
	return now.Format("2006-01-02")
}

// Expense maps an expense draft to its request body. The payment date is
// included only when the expense is paid; for a pending expense the field
// is omitted, never sent as an empty string.
func Expense(d model.ExpenseDraft, now time.Time) (model.ExpensePayload, error) {
	if d.ProjectID <= 0 {
		return model.ExpensePayload{}, failf("project_id", "select a project")
	}
	if d.SupplierID <= 0 {
		return model.ExpensePayload{}, failf("supplier_id", "select a supplier")
	}
	if trim(d.Description) == "" {
		return model.ExpensePayload{}, failf("description", "describe the expense")
	}
	if trim(d.Category) == "" {
		return model.ExpensePayload{}, failf("category", "select a category")
	}
	if d.Amount <= 0 {
		return model.ExpensePayload{}, failf("amount", "inform a positive amount")
	}
	if trim(d.DueDate) == "" {
		return model.ExpensePayload{}, failf("due_date", "inform the due date")
	}

	status := d.PaymentStatus
	if status == "" {
		status = model.PaymentPending
	}

	p := model.ExpensePayload{
		ID:            d.ID,
		ProjectID:     d.ProjectID,
		SupplierID:    d.SupplierID,
		Description:   trim(d.Description),
		Category:      d.Category,
		Amount:        d.Amount,
		DueDate:       CoerceTimestamp(trim(d.DueDate)),
		PaymentMethod: d.PaymentMethod,
		PaymentStatus: status,
	}

	if status == model.PaymentPaid {
		pd := CoerceTimestamp(PaymentDate(d.PaymentDate, now))
		p.PaymentDate = &pd
	}

	return p, nil
}
