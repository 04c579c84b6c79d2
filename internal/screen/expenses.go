package screen

import (
	"context"
	"strings"
	"time"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
)

// Expenses is the expense screen: reference data, the loaded list and the
// form draft.
type Expenses struct {
	backend Backend
	now     func() time.Time
	guard   inflight

	Projects  []model.Project
	Suppliers []model.Supplier
	Expenses  []model.Expense
	Draft     model.ExpenseDraft
}

// NewExpenses builds the expense screen over a backend.
func NewExpenses(backend Backend) *Expenses {
	return &Expenses{backend: backend, now: time.Now}
}

// Load fetches reference data and the expense list, replacing in-memory
// state.
func (s *Expenses) Load(ctx context.Context, f api.ListFilter) error {
	projects, err := s.backend.ListProjects(ctx)
	if err != nil {
		return err
	}
	suppliers, err := s.backend.ListSuppliers(ctx)
	if err != nil {
		return err
	}
	expenses, err := s.backend.ListExpenses(ctx, f)
	if err != nil {
		return err
	}
	s.Projects = projects
	s.Suppliers = suppliers
	s.Expenses = expenses
	return nil
}

// ExpenseFilter is the client-side filter applied over the loaded list.
type ExpenseFilter struct {
	ProjectID  int64
	SupplierID int64
	Status     string
	Category   string
	Text       string
}

// Filtered returns the loaded expenses matching f, without refetching.
func (s *Expenses) Filtered(f ExpenseFilter) []model.Expense {
	var out []model.Expense
	for _, e := range s.Expenses {
		if f.ProjectID > 0 && e.ProjectID != f.ProjectID {
			continue
		}
		if f.SupplierID > 0 && e.SupplierID != f.SupplierID {
			continue
		}
		if f.Status != "" && e.PaymentStatus != f.Status {
			continue
		}
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.Text != "" && !strings.Contains(strings.ToLower(e.Description), strings.ToLower(f.Text)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// BeginCreate resets the draft for a new expense.
func (s *Expenses) BeginCreate(projectID int64) {
	s.Draft = model.ExpenseDraft{
		ProjectID:     projectID,
		PaymentStatus: model.PaymentPending,
	}
}

// BeginEdit loads an existing expense into the draft, stripping stored
// timestamps back to picker dates.
func (s *Expenses) BeginEdit(e model.Expense) {
	draft := model.ExpenseDraft{
		ID:            e.ID,
		ProjectID:     e.ProjectID,
		SupplierID:    e.SupplierID,
		Description:   e.Description,
		Category:      e.Category,
		Amount:        e.Amount,
		DueDate:       normalize.DateOnly(e.DueDate),
		PaymentMethod: e.PaymentMethod,
		PaymentStatus: e.PaymentStatus,
	}
	if e.PaymentDate != nil {
		draft.PaymentDate = normalize.DateOnly(*e.PaymentDate)
	}
	s.Draft = draft
}

// Submit validates and normalizes the draft, sends it, and merges the
// response into the list. Validation failures block the call entirely.
func (s *Expenses) Submit(ctx context.Context) (model.Expense, error) {
	if err := s.guard.begin(); err != nil {
		return model.Expense{}, err
	}
	defer s.guard.end()

	payload, err := normalize.Expense(s.Draft, s.now())
	if err != nil {
		return model.Expense{}, err
	}

	var saved model.Expense
	if payload.ID > 0 {
		saved, err = s.backend.UpdateExpense(ctx, payload)
	} else {
		saved, err = s.backend.CreateExpense(ctx, payload)
	}
	if err != nil {
		return model.Expense{}, err
	}

	s.merge(saved)
	return saved, nil
}

// MarkPaid flips an expense to paid with the given payment date (today
// when blank) and submits the full record.
func (s *Expenses) MarkPaid(ctx context.Context, id int64, paymentDate string) (model.Expense, error) {
	e, ok := s.find(id)
	if !ok {
		return model.Expense{}, &normalize.ValidationError{Field: "id", Message: "expense not found"}
	}
	s.BeginEdit(e)
	s.Draft.PaymentStatus = model.PaymentPaid
	s.Draft.PaymentDate = paymentDate
	return s.Submit(ctx)
}

// Delete removes the expense and compacts the list on success.
func (s *Expenses) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteExpense(ctx, id); err != nil {
		return err
	}
	for i, e := range s.Expenses {
		if e.ID == id {
			s.Expenses = append(s.Expenses[:i], s.Expenses[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Expenses) find(id int64) (model.Expense, bool) {
	for _, e := range s.Expenses {
		if e.ID == id {
			return e, true
		}
	}
	return model.Expense{}, false
}

func (s *Expenses) merge(saved model.Expense) {
	for i, e := range s.Expenses {
		if e.ID == saved.ID {
			s.Expenses[i] = saved
			return
		}
	}
	s.Expenses = append(s.Expenses, saved)
}
