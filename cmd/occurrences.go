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

var occurrencesCmd = &cobra.Command{
	Use:   "occurrences",
	Short: "Manage occurrences",
}

var (
	occListProject  int64
	occListType     string
	occListSeverity string
	occListStatus   string
	occListSearch   string
)

var occurrencesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List occurrences",
	Args:  cobra.NoArgs,
	RunE:  runOccurrencesList,
}

var (
	occProject     int64
	occDate        string
	occPeriod      string
	occType        string
	occSeverity    string
	occDescription string
	occPhotos      []string
)

var occurrencesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new occurrence",
	Args:  cobra.NoArgs,
	RunE:  runOccurrencesAdd,
}

var occurrencesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an occurrence",
	Args:  cobra.ExactArgs(1),
	RunE:  runOccurrencesEdit,
}

var occAction string

var occurrencesResolveCmd = &cobra.Command{
	Use:   "resolve <id>",
	Short: "Mark an occurrence as resolved",
	Args:  cobra.ExactArgs(1),
	RunE:  runOccurrencesResolve,
}

var occRmYes bool

var occurrencesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an occurrence",
	Args:  cobra.ExactArgs(1),
	RunE:  runOccurrencesRm,
}

func init() {
	occurrencesListCmd.Flags().Int64Var(&occListProject, "project", 0, "Filter by project")
	occurrencesListCmd.Flags().StringVar(&occListType, "type", "", "Filter by occurrence type")
	occurrencesListCmd.Flags().StringVar(&occListSeverity, "severity", "", "Filter by severity (baixa, media, alta, critica)")
	occurrencesListCmd.Flags().StringVar(&occListStatus, "status", "", "Filter by resolution status")
	occurrencesListCmd.Flags().StringVar(&occListSearch, "search", "", "Filter by description text")

	for _, c := range []*cobra.Command{occurrencesAddCmd, occurrencesEditCmd} {
		c.Flags().Int64Var(&occProject, "project", 0, "Project reference")
		c.Flags().StringVar(&occDate, "date", "", "Occurrence date (DD/MM/YYYY or YYYY-MM-DD)")
		c.Flags().StringVar(&occPeriod, "period", "", "Period (manha, tarde, noite, integral)")
		c.Flags().StringVar(&occType, "type", "", "Occurrence type")
		c.Flags().StringVar(&occSeverity, "severity", "", "Severity (baixa, media, alta, critica)")
		c.Flags().StringVar(&occDescription, "description", "", "What happened")
		c.Flags().StringArrayVar(&occPhotos, "photo", nil, "Image file to attach (repeatable, up to three)")
	}

	occurrencesResolveCmd.Flags().StringVar(&occAction, "action", "", "Action taken to resolve")

	occurrencesRmCmd.Flags().BoolVar(&occRmYes, "yes", false, "Skip the confirmation prompt")

	occurrencesCmd.AddCommand(occurrencesListCmd)
	occurrencesCmd.AddCommand(occurrencesAddCmd)
	occurrencesCmd.AddCommand(occurrencesEditCmd)
	occurrencesCmd.AddCommand(occurrencesResolveCmd)
	occurrencesCmd.AddCommand(occurrencesRmCmd)
}

func loadOccurrences(cmd *cobra.Command, f api.ListFilter) (*screen.Occurrences, int64) {
	client, cfg := newBackend(cmd)
	scr := screen.NewOccurrences(client)
	if err := scr.Load(cmd.Context(), f); err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}
	return scr, cfg.Defaults.ProjectID
}

func runOccurrencesList(cmd *cobra.Command, args []string) error {
	scr, _ := loadOccurrences(cmd, api.ListFilter{ProjectID: occListProject})

	rows := [][]string{}
	for _, o := range scr.Filtered(screen.OccurrenceFilter{
		ProjectID: occListProject,
		Type:      occListType,
		Severity:  occListSeverity,
		Status:    occListStatus,
		Text:      occListSearch,
	}) {
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10),
			normalize.DateOnly(o.Date),
			o.Type,
			o.Severity,
			o.Description,
			o.ResolutionStatus,
			strconv.Itoa(len(o.Photos)),
		})
	}
	renderTable([]string{"ID", "Date", "Type", "Severity", "Description", "Status", "Photos"}, rows)
	return nil
}

func runOccurrencesAdd(cmd *cobra.Command, args []string) error {
	client, cfg := newBackend(cmd)
	scr := screen.NewOccurrences(client)
	if err := scr.Load(cmd.Context(), api.ListFilter{}); err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}

	scr.BeginCreate(projectOrDefault(occProject, cfg))
	scr.Draft.Date = occDate
	scr.Draft.Period = occPeriod
	if scr.Draft.Period == "" {
		scr.Draft.Period = cfg.Defaults.Period
	}
	scr.Draft.Type = occType
	scr.Draft.Severity = occSeverity
	scr.Draft.Description = occDescription

	for _, path := range occPhotos {
		if err := scr.Gallery.Add(path, "", model.PhotoCategoryOccurrence); err != nil {
			return submitError(err)
		}
	}

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Occurrence %d recorded (%s, %s)\n", saved.ID, saved.Type, saved.Severity)
	return nil
}

func runOccurrencesEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid occurrence id %q", args[0])
	}

	scr, _ := loadOccurrences(cmd, api.ListFilter{})
	var target *model.Occurrence
	for i := range scr.Occurrences {
		if scr.Occurrences[i].ID == id {
			target = &scr.Occurrences[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("occurrence %d not found", id)
	}
	scr.BeginEdit(*target)

	flags := cmd.Flags()
	if flags.Changed("project") {
		scr.Draft.ProjectID = occProject
	}
	if flags.Changed("date") {
		scr.Draft.Date = occDate
	}
	if flags.Changed("period") {
		scr.Draft.Period = occPeriod
	}
	if flags.Changed("type") {
		scr.Draft.Type = occType
	}
	if flags.Changed("severity") {
		scr.Draft.Severity = occSeverity
	}
	if flags.Changed("description") {
		scr.Draft.Description = occDescription
	}

	for _, path := range occPhotos {
		if err := scr.Gallery.Add(path, "", model.PhotoCategoryOccurrence); err != nil {
			return submitError(err)
		}
	}

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Occurrence %d updated\n", saved.ID)
	return nil
}

func runOccurrencesResolve(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid occurrence id %q", args[0])
	}

	scr, _ := loadOccurrences(cmd, api.ListFilter{})
	saved, err := scr.SetResolution(cmd.Context(), id, model.ResolutionResolved, occAction)
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Occurrence %d is now %s\n", saved.ID, saved.ResolutionStatus)
	return nil
}

func runOccurrencesRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid occurrence id %q", args[0])
	}
	if !occRmYes && !confirm(fmt.Sprintf("Delete occurrence %d?", id)) {
		fmt.Println("Aborted.")
		return nil
	}

	scr, _ := loadOccurrences(cmd, api.ListFilter{})
	if err := scr.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	fmt.Printf("Occurrence %d deleted\n", id)
	return nil
}
