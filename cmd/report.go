package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/report"
)

var (
	reportProject int64
	reportFrom    string
	reportTo      string
	reportFormat  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the consolidated project report",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().Int64Var(&reportProject, "project", 0, "Project reference")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "End date (YYYY-MM-DD, inclusive)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

func runReport(cmd *cobra.Command, args []string) error {
	client, cfg := newBackend(cmd)
	ctx := cmd.Context()
	projectID := projectOrDefault(reportProject, cfg)

	projects, err := client.ListProjects(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}
	var project model.Project
	for _, p := range projects {
		if p.ID == projectID {
			project = p
			break
		}
	}
	if project.ID == 0 {
		return fmt.Errorf("project %d not found", projectID)
	}

	f := api.ListFilter{ProjectID: projectID}
	logs, err := client.ListDailyLogs(ctx, f)
	if err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}
	occurrences, err := client.ListOccurrences(ctx, f)
	if err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}
	tasks, err := client.ListTasks(ctx, f)
	if err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}
	expenses, err := client.ListExpenses(ctx, f)
	if err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}
	meta, err := client.ListDiaryMetadata(ctx, f)
	if err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}

	data := report.Build(report.Input{
		Project:     project,
		From:        reportFrom,
		To:          reportTo,
		Logs:        logs,
		Occurrences: occurrences,
		Tasks:       tasks,
		Expenses:    expenses,
		Meta:        meta,
	})

	switch reportFormat {
	case "csv":
		report.WriteCSV(os.Stdout, data)
	case "json":
		if err := report.WriteJSON(os.Stdout, data); err != nil {
			return err
		}
	default: // md
		printReportMarkdown(data)
	}
	return nil
}

func printReportMarkdown(data report.Data) {
	fmt.Printf("# %s\n\n", data.Project.Name)
	if data.From != "" || data.To != "" {
		fmt.Printf("Period: %s .. %s\n\n", data.From, data.To)
	}

	rows := [][]string{}
	for _, d := range data.Days {
		var total float64
		for _, e := range d.Expenses {
			total += e.Amount
		}
		status := ""
		if d.Meta != nil {
			status = d.Meta.ApprovalStatus
		}
		rows = append(rows, []string{
			d.Date,
			strconv.Itoa(len(d.Logs)),
			strconv.Itoa(len(d.Occurrences)),
			strconv.Itoa(len(d.Tasks)),
			money(total),
			status,
		})
	}
	renderMarkdown([]string{"Date", "Logs", "Occurrences", "Tasks", "Expenses", "Status"}, rows)

	fmt.Println()
	summary := [][]string{
		{"Days covered", strconv.Itoa(len(data.Days))},
		{"Pending approvals", strconv.Itoa(data.PendingApprovalDays)},
		{"Open occurrences", strconv.Itoa(data.OpenOccurrences)},
		{"Tasks", strconv.Itoa(data.TaskCount)},
		{"Avg completion", fmt.Sprintf("%d%%", data.AvgTaskCompletion)},
		{"Expenses total", money(data.TotalExpenses)},
		{"Expenses paid", money(data.PaidExpenses)},
		{"Expenses pending", money(data.PendingExpenses)},
		{"Photos", strconv.Itoa(data.PhotoCount)},
	}
	renderMarkdown([]string{"Metric", "Value"}, summary)
}
