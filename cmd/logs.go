package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
	"github.com/obralog/obralog/internal/screen"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Manage daily logs",
}

var (
	logListProject int64
	logListDate    string
	logListStatus  string
	logListPeriod  string
	logListSearch  string
)

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List daily logs",
	Args:  cobra.NoArgs,
	RunE:  runLogsList,
}

var (
	logProject     int64
	logDate        string
	logPeriod      string
	logActivities  string
	logOccurrences string
	logNotes       string
	logResponsible int64
	logPhoto       string
	logClearPhoto  bool
)

var logsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new daily log",
	Args:  cobra.NoArgs,
	RunE:  runLogsAdd,
}

var logsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a daily log",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogsEdit,
}

var logApprover int64

var logsApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a daily log",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogsApprove,
}

var logsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a daily log",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogsReject,
}

var logRmYes bool

var logsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a daily log",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogsRm,
}

func init() {
	logsListCmd.Flags().Int64Var(&logListProject, "project", 0, "Filter by project")
	logsListCmd.Flags().StringVar(&logListDate, "date", "", "Filter by date (YYYY-MM-DD)")
	logsListCmd.Flags().StringVar(&logListStatus, "status", "", "Filter by approval status (pendente, aprovado, rejeitado)")
	logsListCmd.Flags().StringVar(&logListPeriod, "period", "", "Filter by period (manha, tarde, noite, integral)")
	logsListCmd.Flags().StringVar(&logListSearch, "search", "", "Filter by activities text")

	for _, c := range []*cobra.Command{logsAddCmd, logsEditCmd} {
		c.Flags().Int64Var(&logProject, "project", 0, "Project reference")
		c.Flags().StringVar(&logDate, "date", "", "Log date (DD/MM/YYYY or YYYY-MM-DD)")
		c.Flags().StringVar(&logPeriod, "period", "", "Period (manha, tarde, noite, integral)")
		c.Flags().StringVar(&logActivities, "activities", "", "Activities carried out")
		c.Flags().StringVar(&logOccurrences, "occurrences", "", "Occurrences summary")
		c.Flags().StringVar(&logNotes, "notes", "", "Additional notes")
		c.Flags().Int64Var(&logResponsible, "responsible", 0, "Responsible person reference")
		c.Flags().StringVar(&logPhoto, "photo", "", "Image file to attach")
	}
	logsEditCmd.Flags().BoolVar(&logClearPhoto, "clear-photo", false, "Remove the attached photo")

	for _, c := range []*cobra.Command{logsApproveCmd, logsRejectCmd} {
		c.Flags().Int64Var(&logApprover, "by", 0, "Approver person reference")
	}

	logsRmCmd.Flags().BoolVar(&logRmYes, "yes", false, "Skip the confirmation prompt")

	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsAddCmd)
	logsCmd.AddCommand(logsEditCmd)
	logsCmd.AddCommand(logsApproveCmd)
	logsCmd.AddCommand(logsRejectCmd)
	logsCmd.AddCommand(logsRmCmd)
}

func loadLogs(cmd *cobra.Command, f api.ListFilter) (*screen.DailyLogs, int64) {
	client, cfg := newBackend(cmd)
	scr := screen.NewDailyLogs(client)
	if err := scr.Load(cmd.Context(), f); err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}
	return scr, cfg.Defaults.ProjectID
}

func runLogsList(cmd *cobra.Command, args []string) error {
	scr, _ := loadLogs(cmd, api.ListFilter{ProjectID: logListProject, Date: logListDate})

	rows := [][]string{}
	for _, l := range scr.Filtered(screen.LogFilter{
		ProjectID: logListProject,
		Status:    logListStatus,
		Period:    logListPeriod,
		Text:      logListSearch,
	}) {
		photoMark := ""
		if l.Photo != nil {
			photoMark = "yes"
		}
		rows = append(rows, []string{
			strconv.FormatInt(l.ID, 10),
			normalize.DateOnly(l.Date),
			l.Period,
			l.Activities,
			l.ApprovalStatus,
			photoMark,
		})
	}
	renderTable([]string{"ID", "Date", "Period", "Activities", "Status", "Photo"}, rows)
	return nil
}

// attachLogPhoto runs the picker for the --photo / --clear-photo flags.
func attachLogPhoto(scr *screen.DailyLogs) error {
	picker := scr.Picker()
	if logClearPhoto {
		picker.Clear()
		return nil
	}
	if logPhoto == "" {
		return nil
	}
	return picker.Attach(logPhoto)
}

func runLogsAdd(cmd *cobra.Command, args []string) error {
	client, cfg := newBackend(cmd)
	scr := screen.NewDailyLogs(client)
	if err := scr.Load(cmd.Context(), api.ListFilter{}); err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}

	scr.BeginCreate(projectOrDefault(logProject, cfg))
	scr.Draft.Date = logDate
	scr.Draft.Period = logPeriod
	if scr.Draft.Period == "" {
		scr.Draft.Period = cfg.Defaults.Period
	}
	scr.Draft.Activities = logActivities
	scr.Draft.Occurrences = logOccurrences
	scr.Draft.Notes = logNotes
	scr.Draft.ResponsibleID = logResponsible

	if err := attachLogPhoto(scr); err != nil {
		return submitError(err)
	}

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Daily log %d recorded for %s (%s)\n", saved.ID, normalize.DateOnly(saved.Date), saved.Period)
	return nil
}

func runLogsEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid log id %q", args[0])
	}

	scr, _ := loadLogs(cmd, api.ListFilter{})
	var target *model.DailyLog
	for i := range scr.Logs {
		if scr.Logs[i].ID == id {
			target = &scr.Logs[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("daily log %d not found", id)
	}
	scr.BeginEdit(*target)

	flags := cmd.Flags()
	if flags.Changed("project") {
		scr.Draft.ProjectID = logProject
	}
	if flags.Changed("date") {
		scr.Draft.Date = logDate
	}
	if flags.Changed("period") {
		scr.Draft.Period = logPeriod
	}
	if flags.Changed("activities") {
		scr.Draft.Activities = logActivities
	}
	if flags.Changed("occurrences") {
		scr.Draft.Occurrences = logOccurrences
	}
	if flags.Changed("notes") {
		scr.Draft.Notes = logNotes
	}
	if flags.Changed("responsible") {
		scr.Draft.ResponsibleID = logResponsible
	}

	if err := attachLogPhoto(scr); err != nil {
		return submitError(err)
	}

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Daily log %d updated\n", saved.ID)
	return nil
}

func setLogApproval(cmd *cobra.Command, args []string, status string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid log id %q", args[0])
	}

	scr, _ := loadLogs(cmd, api.ListFilter{})
	saved, err := scr.SetApproval(cmd.Context(), id, status, logApprover)
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Daily log %d is now %s\n", saved.ID, saved.ApprovalStatus)
	return nil
}

func runLogsApprove(cmd *cobra.Command, args []string) error {
	return setLogApproval(cmd, args, model.ApprovalApproved)
}

func runLogsReject(cmd *cobra.Command, args []string) error {
	return setLogApproval(cmd, args, model.ApprovalRejected)
}

func runLogsRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid log id %q", args[0])
	}
	if !logRmYes && !confirm(fmt.Sprintf("Delete daily log %d?", id)) {
		fmt.Println("Aborted.")
		return nil
	}

	scr, _ := loadLogs(cmd, api.ListFilter{})
	if err := scr.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	fmt.Printf("Daily log %d deleted\n", id)
	return nil
}
