// Package screen holds one view-model per screen: the loaded list, the
// reference data, the form draft, and the submit pipeline (validate →
// normalize → call → merge the response back into the list). Screens own
// no state beyond that; every network side effect goes through Backend.
package screen

import (
	"context"
	"errors"
	"sync"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/model"
)

// ErrBusy means a submit is already in flight on this screen. Submits are
// single-flight: the guard is a hard invariant, not a disabled button.
var ErrBusy = errors.New("a submission is already in progress")

// Backend is the slice of the API client the screens consume.
type Backend interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	ListPeople(ctx context.Context) ([]model.Person, error)

	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	CreateSupplier(ctx context.Context, p model.SupplierPayload) (model.Supplier, error)
	UpdateSupplier(ctx context.Context, p model.SupplierPayload) (model.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error

	ListExpenses(ctx context.Context, f api.ListFilter) ([]model.Expense, error)
	CreateExpense(ctx context.Context, p model.ExpensePayload) (model.Expense, error)
	UpdateExpense(ctx context.Context, p model.ExpensePayload) (model.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error

	ListDailyLogs(ctx context.Context, f api.ListFilter) ([]model.DailyLog, error)
	CreateDailyLog(ctx context.Context, p model.DailyLogPayload) (model.DailyLog, error)
	UpdateDailyLog(ctx context.Context, p model.DailyLogPayload) (model.DailyLog, error)
	DeleteDailyLog(ctx context.Context, id int64) error

	ListOccurrences(ctx context.Context, f api.ListFilter) ([]model.Occurrence, error)
	CreateOccurrence(ctx context.Context, p model.OccurrencePayload) (model.Occurrence, error)
	UpdateOccurrence(ctx context.Context, p model.OccurrencePayload) (model.Occurrence, error)
	DeleteOccurrence(ctx context.Context, id int64) error

	ListTasks(ctx context.Context, f api.ListFilter) ([]model.Task, error)
	CreateTask(ctx context.Context, p model.TaskPayload) (model.Task, error)
	UpdateTask(ctx context.Context, p model.TaskPayload) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	GetDiaryMetadata(ctx context.Context, projectID int64, date, period string) (*model.DiaryMetadata, error)
	SaveDiaryMetadata(ctx context.Context, p model.DiaryMetadataPayload) (model.DiaryMetadata, error)
}

// inflight is the single-flight guard shared by the screens.
type inflight struct {
	mu   sync.Mutex
	busy bool
}

func (f *inflight) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return ErrBusy
	}
	f.busy = true
	return nil
}

func (f *inflight) end() {
	f.mu.Lock()
	f.busy = false
	f.mu.Unlock()
}
