// Package report assembles the consolidated per-project report from the
// loaded diary records. Assembly is pure; rendering goes to a writer.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
)

// Data is the assembled consolidated report.
type Data struct {
	Project model.Project `json:"project"`
	From    string        `json:"from"`
	To      string        `json:"to"`

	Days []Day `json:"days"`

	LogsByStatus        map[string]int     `json:"logs_by_status"`
	OccurrencesBySev    map[string]int     `json:"occurrences_by_severity"`
	OpenOccurrences     int                `json:"open_occurrences"`
	ExpensesByCategory  map[string]float64 `json:"expenses_by_category"`
	TotalExpenses       float64            `json:"total_expenses"`
	PaidExpenses        float64            `json:"paid_expenses"`
	PendingExpenses     float64            `json:"pending_expenses"`
	TaskCount           int                `json:"task_count"`
	AvgTaskCompletion   int                `json:"avg_task_completion"`
	PhotoCount          int                `json:"photo_count"`
	PendingApprovalDays int                `json:"pending_approval_days"`
}

// Day is one date's slice of the report, anchored on the diary metadata
// when one exists for the date.
type Day struct {
	Date        string             `json:"date"`
	Logs        []model.DailyLog   `json:"logs"`
	Occurrences []model.Occurrence `json:"occurrences"`
	Tasks       []model.Task       `json:"tasks"`
	Expenses    []model.Expense    `json:"expenses"`
	Meta        *model.DiaryMetadata `json:"meta,omitempty"`
}

// Input carries the already-loaded records the report is built from.
type Input struct {
	Project     model.Project
	From, To    string // YYYY-MM-DD, inclusive; empty means unbounded
	Logs        []model.DailyLog
	Occurrences []model.Occurrence
	Tasks       []model.Task
	Expenses    []model.Expense
	Meta        []model.DiaryMetadata
}

// inRange checks a record date (timestamp or date-only) against the
// report bounds.
func inRange(date, from, to string) bool {
	d := normalize.DateOnly(date)
	if from != "" && d < from {
		return false
	}
	if to != "" && d > to {
		return false
	}
	return true
}

// Build assembles the consolidated report for one project and date range.
func Build(in Input) Data {
	data := Data{
		Project:            in.Project,
		From:               in.From,
		To:                 in.To,
		LogsByStatus:       map[string]int{},
		OccurrencesBySev:   map[string]int{},
		ExpensesByCategory: map[string]float64{},
	}

	days := map[string]*Day{}
	day := func(date string) *Day {
		d := normalize.DateOnly(date)
		if existing, ok := days[d]; ok {
			return existing
		}
		nd := &Day{Date: d}
		days[d] = nd
		return nd
	}

	for _, l := range in.Logs {
		if l.ProjectID != in.Project.ID || !inRange(l.Date, in.From, in.To) {
			continue
		}
		day(l.Date).Logs = append(day(l.Date).Logs, l)
		data.LogsByStatus[l.ApprovalStatus]++
		if l.ApprovalStatus == model.ApprovalPending {
			data.PendingApprovalDays++
		}
		if l.Photo != nil {
			data.PhotoCount++
		}
	}

	for _, o := range in.Occurrences {
		if o.ProjectID != in.Project.ID || !inRange(o.Date, in.From, in.To) {
			continue
		}
		day(o.Date).Occurrences = append(day(o.Date).Occurrences, o)
		data.OccurrencesBySev[o.Severity]++
		if o.ResolutionStatus != model.ResolutionResolved {
			data.OpenOccurrences++
		}
		data.PhotoCount += len(o.Photos)
	}

	var pctSum int
	for _, t := range in.Tasks {
		if t.ProjectID != in.Project.ID || !inRange(t.Date, in.From, in.To) {
			continue
		}
		day(t.Date).Tasks = append(day(t.Date).Tasks, t)
		data.TaskCount++
		pctSum += t.CompletionPct
		data.PhotoCount += len(t.Photos)
	}
	if data.TaskCount > 0 {
		data.AvgTaskCompletion = pctSum / data.TaskCount
	}

	for _, e := range in.Expenses {
		if e.ProjectID != in.Project.ID || !inRange(e.DueDate, in.From, in.To) {
			continue
		}
		day(e.DueDate).Expenses = append(day(e.DueDate).Expenses, e)
		data.ExpensesByCategory[e.Category] += e.Amount
		data.TotalExpenses += e.Amount
		if e.PaymentStatus == model.PaymentPaid {
			data.PaidExpenses += e.Amount
		} else {
			data.PendingExpenses += e.Amount
		}
	}

	for i := range in.Meta {
		m := in.Meta[i]
		if m.ProjectID != in.Project.ID || !inRange(m.Date, in.From, in.To) {
			continue
		}
		day(m.Date).Meta = &in.Meta[i]
		data.PhotoCount += len(m.Photos)
	}

	var dates []string
	for d := range days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		data.Days = append(data.Days, *days[d])
	}

	return data
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, data Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes the day-by-day summary as CSV.
func WriteCSV(w io.Writer, data Data) {
	fmt.Fprintln(w, "date,logs,occurrences,tasks,expenses_total,approval_status")
	for _, d := range data.Days {
		var total float64
		for _, e := range d.Expenses {
			total += e.Amount
		}
		status := ""
		if d.Meta != nil {
			status = d.Meta.ApprovalStatus
		} else if len(d.Logs) > 0 {
			status = d.Logs[0].ApprovalStatus
		}
		fmt.Fprintf(w, "%s,%d,%d,%d,%.2f,%s\n",
			d.Date, len(d.Logs), len(d.Occurrences), len(d.Tasks), total, status)
	}
}
