package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/obralog/obralog/internal/model"
)

// ListFilter narrows listing endpoints by project and/or date
// (YYYY-MM-DD). Zero values mean "no filter".
type ListFilter struct {
	ProjectID int64
	Date      string
}

func (f ListFilter) query() url.Values {
	q := url.Values{}
	if f.ProjectID > 0 {
		q.Set("project_id", strconv.FormatInt(f.ProjectID, 10))
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	return q
}

// Reference data.

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	err := c.do(ctx, http.MethodGet, "/api/projects", nil, nil, &out)
	return out, err
}

func (c *Client) ListPeople(ctx context.Context) ([]model.Person, error) {
	var out []model.Person
	err := c.do(ctx, http.MethodGet, "/api/people", nil, nil, &out)
	return out, err
}

// Suppliers.

func (c *Client) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	var out []model.Supplier
	err := c.do(ctx, http.MethodGet, "/api/suppliers", nil, nil, &out)
	return out, err
}

func (c *Client) CreateSupplier(ctx context.Context, p model.SupplierPayload) (model.Supplier, error) {
	var out model.Supplier
	err := c.do(ctx, http.MethodPost, "/api/suppliers", nil, p, &out)
	return out, err
}

func (c *Client) UpdateSupplier(ctx context.Context, p model.SupplierPayload) (model.Supplier, error) {
	var out model.Supplier
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/suppliers/%d", p.ID), nil, p, &out)
	return out, err
}

func (c *Client) DeleteSupplier(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/suppliers/%d", id), nil, nil, nil)
}

// Expenses.

func (c *Client) ListExpenses(ctx context.Context, f ListFilter) ([]model.Expense, error) {
	var out []model.Expense
	err := c.do(ctx, http.MethodGet, "/api/expenses", f.query(), nil, &out)
	return out, err
}

func (c *Client) CreateExpense(ctx context.Context, p model.ExpensePayload) (model.Expense, error) {
	var out model.Expense
	err := c.do(ctx, http.MethodPost, "/api/expenses", nil, p, &out)
	return out, err
}

func (c *Client) UpdateExpense(ctx context.Context, p model.ExpensePayload) (model.Expense, error) {
	var out model.Expense
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/expenses/%d", p.ID), nil, p, &out)
	return out, err
}

func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", id), nil, nil, nil)
}

// Daily logs.

func (c *Client) ListDailyLogs(ctx context.Context, f ListFilter) ([]model.DailyLog, error) {
	var out []model.DailyLog
	err := c.do(ctx, http.MethodGet, "/api/daily-logs", f.query(), nil, &out)
	return out, err
}

func (c *Client) CreateDailyLog(ctx context.Context, p model.DailyLogPayload) (model.DailyLog, error) {
	var out model.DailyLog
	err := c.do(ctx, http.MethodPost, "/api/daily-logs", nil, p, &out)
	return out, err
}

func (c *Client) UpdateDailyLog(ctx context.Context, p model.DailyLogPayload) (model.DailyLog, error) {
	var out model.DailyLog
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/daily-logs/%d", p.ID), nil, p, &out)
	return out, err
}

func (c *Client) DeleteDailyLog(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/daily-logs/%d", id), nil, nil, nil)
}

// Occurrences.

func (c *Client) ListOccurrences(ctx context.Context, f ListFilter) ([]model.Occurrence, error) {
	var out []model.Occurrence
	err := c.do(ctx, http.MethodGet, "/api/occurrences", f.query(), nil, &out)
	return out, err
}

func (c *Client) CreateOccurrence(ctx context.Context, p model.OccurrencePayload) (model.Occurrence, error) {
	var out model.Occurrence
	err := c.do(ctx, http.MethodPost, "/api/occurrences", nil, p, &out)
	return out, err
}

func (c *Client) UpdateOccurrence(ctx context.Context, p model.OccurrencePayload) (model.Occurrence, error) {
	var out model.Occurrence
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/occurrences/%d", p.ID), nil, p, &out)
	return out, err
}

func (c *Client) DeleteOccurrence(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/occurrences/%d", id), nil, nil, nil)
}

// Tasks.

func (c *Client) ListTasks(ctx context.Context, f ListFilter) ([]model.Task, error) {
	var out []model.Task
	err := c.do(ctx, http.MethodGet, "/api/tasks", f.query(), nil, &out)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, p model.TaskPayload) (model.Task, error) {
	var out model.Task
	err := c.do(ctx, http.MethodPost, "/api/tasks", nil, p, &out)
	return out, err
}

func (c *Client) UpdateTask(ctx context.Context, p model.TaskPayload) (model.Task, error) {
	var out model.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", p.ID), nil, p, &out)
	return out, err
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil, nil)
}

// Diary metadata.

// ListDiaryMetadata fetches the anchor records matching f, e.g. all
// diary records of a project for the consolidated report.
func (c *Client) ListDiaryMetadata(ctx context.Context, f ListFilter) ([]model.DiaryMetadata, error) {
	var out []model.DiaryMetadata
	err := c.do(ctx, http.MethodGet, "/api/diary-metadata/list", f.query(), nil, &out)
	return out, err
}

// GetDiaryMetadata fetches the anchor record for a project/date/period.
// A missing anchor is not an error; it returns nil.
func (c *Client) GetDiaryMetadata(ctx context.Context, projectID int64, date, period string) (*model.DiaryMetadata, error) {
	q := url.Values{}
	q.Set("project_id", strconv.FormatInt(projectID, 10))
	q.Set("date", date)
	q.Set("period", period)

	var out model.DiaryMetadata
	err := c.do(ctx, http.MethodGet, "/api/diary-metadata", q, nil, &out)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) SaveDiaryMetadata(ctx context.Context, p model.DiaryMetadataPayload) (model.DiaryMetadata, error) {
	var out model.DiaryMetadata
	if p.ID > 0 {
		err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/diary-metadata/%d", p.ID), nil, p, &out)
		return out, err
	}
	err := c.do(ctx, http.MethodPost, "/api/diary-metadata", nil, p, &out)
	return out, err
}
