package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obralog/obralog/internal/model"
)

func reportInput() Input {
	paid := "2024-03-05T00:00:00Z"
	return Input{
		Project: model.Project{ID: 1, Name: "Obra Centro"},
		Logs: []model.DailyLog{
			{ID: 1, ProjectID: 1, Date: "2024-03-05T00:00:00Z", ApprovalStatus: model.ApprovalApproved},
			{ID: 2, ProjectID: 1, Date: "2024-03-06T00:00:00Z", ApprovalStatus: model.ApprovalPending,
				Photo: &model.Photo{Data: "data:image/png;base64,YQ=="}},
			{ID: 3, ProjectID: 2, Date: "2024-03-05T00:00:00Z", ApprovalStatus: model.ApprovalPending}, // other project
		},
		Occurrences: []model.Occurrence{
			{ID: 1, ProjectID: 1, Date: "2024-03-05T00:00:00Z", Severity: model.SeverityHigh,
				ResolutionStatus: model.ResolutionOpen, Photos: []model.Photo{{}, {}}},
			{ID: 2, ProjectID: 1, Date: "2024-03-06T00:00:00Z", Severity: model.SeverityLow,
				ResolutionStatus: model.ResolutionResolved},
		},
		Tasks: []model.Task{
			{ID: 1, ProjectID: 1, Date: "2024-03-05T00:00:00Z", CompletionPct: 100, Status: model.TaskDone},
			{ID: 2, ProjectID: 1, Date: "2024-03-06T00:00:00Z", CompletionPct: 50, Status: model.TaskInProgress},
		},
		Expenses: []model.Expense{
			{ID: 1, ProjectID: 1, DueDate: "2024-03-05T00:00:00Z", Category: "material", Amount: 300, PaymentStatus: model.PaymentPaid, PaymentDate: &paid},
			{ID: 2, ProjectID: 1, DueDate: "2024-03-06T00:00:00Z", Category: "transporte", Amount: 200, PaymentStatus: model.PaymentPending},
		},
		Meta: []model.DiaryMetadata{
			{ID: 9, ProjectID: 1, Date: "2024-03-05T00:00:00Z", Period: model.PeriodFullDay, ApprovalStatus: model.ApprovalApproved},
		},
	}
}

func TestBuildAggregates(t *testing.T) {
	data := Build(reportInput())

	assert.Equal(t, 1, data.LogsByStatus[model.ApprovalApproved])
	assert.Equal(t, 1, data.LogsByStatus[model.ApprovalPending])
	assert.Equal(t, 1, data.PendingApprovalDays)

	assert.Equal(t, 1, data.OccurrencesBySev[model.SeverityHigh])
	assert.Equal(t, 1, data.OpenOccurrences)

	assert.Equal(t, 2, data.TaskCount)
	assert.Equal(t, 75, data.AvgTaskCompletion)

	assert.Equal(t, 500.0, data.TotalExpenses)
	assert.Equal(t, 300.0, data.PaidExpenses)
	assert.Equal(t, 200.0, data.PendingExpenses)
	assert.Equal(t, 300.0, data.ExpensesByCategory["material"])

	// One log photo plus two occurrence photos.
	assert.Equal(t, 3, data.PhotoCount)
}

func TestBuildDaysSortedAndAnchored(t *testing.T) {
	data := Build(reportInput())

	require.Len(t, data.Days, 2)
	assert.Equal(t, "2024-03-05", data.Days[0].Date)
	assert.Equal(t, "2024-03-06", data.Days[1].Date)

	require.NotNil(t, data.Days[0].Meta)
	assert.Equal(t, int64(9), data.Days[0].Meta.ID)
	assert.Nil(t, data.Days[1].Meta)

	assert.Len(t, data.Days[0].Logs, 1, "other projects are excluded")
}

func TestBuildDateRange(t *testing.T) {
	in := reportInput()
	in.From = "2024-03-06"
	in.To = "2024-03-06"

	data := Build(in)
	require.Len(t, data.Days, 1)
	assert.Equal(t, "2024-03-06", data.Days[0].Date)
	assert.Equal(t, 200.0, data.TotalExpenses)
	assert.Equal(t, 1, data.TaskCount)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Build(reportInput())))

	var decoded Data
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Obra Centro", decoded.Project.Name)
	assert.Len(t, decoded.Days, 2)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	WriteCSV(&buf, Build(reportInput()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,logs,occurrences,tasks,expenses_total,approval_status", lines[0])
	assert.Equal(t, "2024-03-05,1,1,1,300.00,aprovado", lines[1])
	assert.Equal(t, "2024-03-06,1,1,1,200.00,pendente", lines[2])
}
