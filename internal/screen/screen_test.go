package screen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/model"
)

// fakeBackend records the payloads the screens send and answers from
// in-memory fixtures. Create/update echo the payload back with an id, the
// way the backend-returned entity replaces the optimistic draft.
type fakeBackend struct {
	projects  []model.Project
	people    []model.Person
	suppliers []model.Supplier
	expenses  []model.Expense
	logs      []model.DailyLog
	occs      []model.Occurrence
	tasks     []model.Task
	meta      *model.DiaryMetadata

	err error // returned by every call when set

	createCalls int
	updateCalls int
	deleteCalls int

	lastExpense  model.ExpensePayload
	lastLog      model.DailyLogPayload
	lastOcc      model.OccurrencePayload
	lastTask     model.TaskPayload
	lastSupplier model.SupplierPayload
	lastMeta     model.DiaryMetadataPayload

	nextID int64
}

func (f *fakeBackend) id(existing int64) int64 {
	if existing > 0 {
		return existing
	}
	f.nextID++
	return 1000 + f.nextID
}

func (f *fakeBackend) ListProjects(ctx context.Context) ([]model.Project, error) {
	return f.projects, f.err
}

func (f *fakeBackend) ListPeople(ctx context.Context) ([]model.Person, error) {
	return f.people, f.err
}

func (f *fakeBackend) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return f.suppliers, f.err
}

func (f *fakeBackend) CreateSupplier(ctx context.Context, p model.SupplierPayload) (model.Supplier, error) {
	f.createCalls++
	f.lastSupplier = p
	return model.Supplier{ID: f.id(0), Name: p.Name}, f.err
}

func (f *fakeBackend) UpdateSupplier(ctx context.Context, p model.SupplierPayload) (model.Supplier, error) {
	f.updateCalls++
	f.lastSupplier = p
	return model.Supplier{ID: p.ID, Name: p.Name}, f.err
}

func (f *fakeBackend) DeleteSupplier(ctx context.Context, id int64) error {
	f.deleteCalls++
	return f.err
}

func (f *fakeBackend) ListExpenses(ctx context.Context, _ api.ListFilter) ([]model.Expense, error) {
	return f.expenses, f.err
}

func (f *fakeBackend) expenseFrom(p model.ExpensePayload, id int64) model.Expense {
	return model.Expense{
		ID:            id,
		ProjectID:     p.ProjectID,
		SupplierID:    p.SupplierID,
		Description:   p.Description,
		Category:      p.Category,
		Amount:        p.Amount,
		DueDate:       p.DueDate,
		PaymentMethod: p.PaymentMethod,
		PaymentStatus: p.PaymentStatus,
		PaymentDate:   p.PaymentDate,
	}
}

func (f *fakeBackend) CreateExpense(ctx context.Context, p model.ExpensePayload) (model.Expense, error) {
	f.createCalls++
	f.lastExpense = p
	return f.expenseFrom(p, f.id(0)), f.err
}

func (f *fakeBackend) UpdateExpense(ctx context.Context, p model.ExpensePayload) (model.Expense, error) {
	f.updateCalls++
	f.lastExpense = p
	return f.expenseFrom(p, p.ID), f.err
}

func (f *fakeBackend) DeleteExpense(ctx context.Context, id int64) error {
	f.deleteCalls++
	return f.err
}

func (f *fakeBackend) ListDailyLogs(ctx context.Context, _ api.ListFilter) ([]model.DailyLog, error) {
	return f.logs, f.err
}

func (f *fakeBackend) logFrom(p model.DailyLogPayload, id int64) model.DailyLog {
	l := model.DailyLog{
		ID:             id,
		ProjectID:      p.ProjectID,
		Date:           p.Date,
		Period:         p.Period,
		Activities:     p.Activities,
		ResponsibleID:  p.ResponsibleID,
		ApproverID:     p.ApproverID,
		ApprovalStatus: p.ApprovalStatus,
	}
	if p.Photo != nil {
		l.Photo = &model.Photo{EntityID: id, Data: p.Photo.Data, Category: p.Photo.Category}
	}
	return l
}

func (f *fakeBackend) CreateDailyLog(ctx context.Context, p model.DailyLogPayload) (model.DailyLog, error) {
	f.createCalls++
	f.lastLog = p
	return f.logFrom(p, f.id(0)), f.err
}

func (f *fakeBackend) UpdateDailyLog(ctx context.Context, p model.DailyLogPayload) (model.DailyLog, error) {
	f.updateCalls++
	f.lastLog = p
	return f.logFrom(p, p.ID), f.err
}

func (f *fakeBackend) DeleteDailyLog(ctx context.Context, id int64) error {
	f.deleteCalls++
	return f.err
}

func (f *fakeBackend) ListOccurrences(ctx context.Context, _ api.ListFilter) ([]model.Occurrence, error) {
	return f.occs, f.err
}

func (f *fakeBackend) occFrom(p model.OccurrencePayload, id int64) model.Occurrence {
	o := model.Occurrence{
		ID:               id,
		ProjectID:        p.ProjectID,
		Date:             p.Date,
		Period:           p.Period,
		Type:             p.Type,
		Severity:         p.Severity,
		Description:      p.Description,
		ResolutionStatus: p.ResolutionStatus,
		ActionTaken:      p.ActionTaken,
	}
	for _, ph := range p.Photos {
		o.Photos = append(o.Photos, model.Photo{
			EntityID:     id,
			Data:         ph.Data,
			Description:  ph.Description,
			DisplayOrder: ph.DisplayOrder,
			Category:     ph.Category,
		})
	}
	return o
}

func (f *fakeBackend) CreateOccurrence(ctx context.Context, p model.OccurrencePayload) (model.Occurrence, error) {
	f.createCalls++
	f.lastOcc = p
	return f.occFrom(p, f.id(0)), f.err
}

func (f *fakeBackend) UpdateOccurrence(ctx context.Context, p model.OccurrencePayload) (model.Occurrence, error) {
	f.updateCalls++
	f.lastOcc = p
	return f.occFrom(p, p.ID), f.err
}

func (f *fakeBackend) DeleteOccurrence(ctx context.Context, id int64) error {
	f.deleteCalls++
	return f.err
}

func (f *fakeBackend) ListTasks(ctx context.Context, _ api.ListFilter) ([]model.Task, error) {
	return f.tasks, f.err
}

func (f *fakeBackend) taskFrom(p model.TaskPayload, id int64) model.Task {
	t := model.Task{
		ID:            id,
		ProjectID:     p.ProjectID,
		Date:          p.Date,
		Period:        p.Period,
		Description:   p.Description,
		Status:        p.Status,
		CompletionPct: p.CompletionPct,
		Notes:         p.Notes,
	}
	for _, ph := range p.Photos {
		t.Photos = append(t.Photos, model.Photo{EntityID: id, Data: ph.Data, DisplayOrder: ph.DisplayOrder, Category: ph.Category})
	}
	return t
}

func (f *fakeBackend) CreateTask(ctx context.Context, p model.TaskPayload) (model.Task, error) {
	f.createCalls++
	f.lastTask = p
	return f.taskFrom(p, f.id(0)), f.err
}

func (f *fakeBackend) UpdateTask(ctx context.Context, p model.TaskPayload) (model.Task, error) {
	f.updateCalls++
	f.lastTask = p
	return f.taskFrom(p, p.ID), f.err
}

func (f *fakeBackend) DeleteTask(ctx context.Context, id int64) error {
	f.deleteCalls++
	return f.err
}

func (f *fakeBackend) GetDiaryMetadata(ctx context.Context, projectID int64, date, period string) (*model.DiaryMetadata, error) {
	return f.meta, f.err
}

func (f *fakeBackend) SaveDiaryMetadata(ctx context.Context, p model.DiaryMetadataPayload) (model.DiaryMetadata, error) {
	f.createCalls++
	f.lastMeta = p
	m := model.DiaryMetadata{
		ID:             f.id(p.ID),
		ProjectID:      p.ProjectID,
		Date:           p.Date,
		Period:         p.Period,
		ApprovalStatus: p.ApprovalStatus,
		ResponsibleID:  p.ResponsibleID,
		ApproverID:     p.ApproverID,
	}
	for _, ph := range p.Photos {
		m.Photos = append(m.Photos, model.Photo{EntityID: m.ID, Data: ph.Data, Category: ph.Category})
	}
	return m, f.err
}

var _ Backend = (*fakeBackend)(nil)

func TestInflightGuard(t *testing.T) {
	var g inflight

	require.NoError(t, g.begin())
	assert.ErrorIs(t, g.begin(), ErrBusy)

	g.end()
	assert.NoError(t, g.begin())
}
