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

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks",
}

var (
	taskListProject int64
	taskListStatus  string
	taskListSearch  string
)

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runTasksList,
}

var (
	taskProject     int64
	taskDate        string
	taskPeriod      string
	taskDescription string
	taskStatus      string
	taskPct         int
	taskNotes       string
	taskPhotos      []string
)

var tasksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Plan a new task",
	Args:  cobra.NoArgs,
	RunE:  runTasksAdd,
}

var tasksEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksEdit,
}

var tasksProgressCmd = &cobra.Command{
	Use:   "progress <id> <pct>",
	Short: "Update a task's completion percentage",
	Args:  cobra.ExactArgs(2),
	RunE:  runTasksProgress,
}

var taskRmYes bool

var tasksRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksRm,
}

func init() {
	tasksListCmd.Flags().Int64Var(&taskListProject, "project", 0, "Filter by project")
	tasksListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status (planejada, em_andamento, concluida, cancelada)")
	tasksListCmd.Flags().StringVar(&taskListSearch, "search", "", "Filter by description text")

	for _, c := range []*cobra.Command{tasksAddCmd, tasksEditCmd} {
		c.Flags().Int64Var(&taskProject, "project", 0, "Project reference")
		c.Flags().StringVar(&taskDate, "date", "", "Task date (DD/MM/YYYY or YYYY-MM-DD)")
		c.Flags().StringVar(&taskPeriod, "period", "", "Period (manha, tarde, noite, integral)")
		c.Flags().StringVar(&taskDescription, "description", "", "What has to be done")
		c.Flags().StringVar(&taskStatus, "status", "", "Status (planejada, em_andamento, concluida, cancelada)")
		c.Flags().IntVar(&taskPct, "pct", 0, "Completion percentage")
		c.Flags().StringVar(&taskNotes, "notes", "", "Additional notes")
		c.Flags().StringArrayVar(&taskPhotos, "photo", nil, "Image file to attach (repeatable, up to three)")
	}

	tasksRmCmd.Flags().BoolVar(&taskRmYes, "yes", false, "Skip the confirmation prompt")

	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksEditCmd)
	tasksCmd.AddCommand(tasksProgressCmd)
	tasksCmd.AddCommand(tasksRmCmd)
}

func loadTasks(cmd *cobra.Command, f api.ListFilter) (*screen.Tasks, int64) {
	client, cfg := newBackend(cmd)
	scr := screen.NewTasks(client)
	if err := scr.Load(cmd.Context(), f); err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}
	return scr, cfg.Defaults.ProjectID
}

func runTasksList(cmd *cobra.Command, args []string) error {
	scr, _ := loadTasks(cmd, api.ListFilter{ProjectID: taskListProject})

	rows := [][]string{}
	for _, t := range scr.Filtered(screen.TaskFilter{
		ProjectID: taskListProject,
		Status:    taskListStatus,
		Text:      taskListSearch,
	}) {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			normalize.DateOnly(t.Date),
			t.Description,
			t.Status,
			fmt.Sprintf("%d%%", t.CompletionPct),
			strconv.Itoa(len(t.Photos)),
		})
	}
	renderTable([]string{"ID", "Date", "Description", "Status", "Done", "Photos"}, rows)
	return nil
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	client, cfg := newBackend(cmd)
	scr := screen.NewTasks(client)
	if err := scr.Load(cmd.Context(), api.ListFilter{}); err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}

	scr.BeginCreate(projectOrDefault(taskProject, cfg))
	scr.Draft.Date = taskDate
	scr.Draft.Period = taskPeriod
	if scr.Draft.Period == "" {
		scr.Draft.Period = cfg.Defaults.Period
	}
	scr.Draft.Description = taskDescription
	if taskStatus != "" {
		scr.Draft.Status = taskStatus
	}
	scr.Draft.CompletionPct = taskPct
	scr.Draft.Notes = taskNotes

	for _, path := range taskPhotos {
		if err := scr.Gallery.Add(path, "", model.PhotoCategoryTask); err != nil {
			return submitError(err)
		}
	}

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Task %d planned for %s\n", saved.ID, normalize.DateOnly(saved.Date))
	return nil
}

func runTasksEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	scr, _ := loadTasks(cmd, api.ListFilter{})
	var target *model.Task
	for i := range scr.Tasks {
		if scr.Tasks[i].ID == id {
			target = &scr.Tasks[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("task %d not found", id)
	}
	scr.BeginEdit(*target)

	flags := cmd.Flags()
	if flags.Changed("project") {
		scr.Draft.ProjectID = taskProject
	}
	if flags.Changed("date") {
		scr.Draft.Date = taskDate
	}
	if flags.Changed("period") {
		scr.Draft.Period = taskPeriod
	}
	if flags.Changed("description") {
		scr.Draft.Description = taskDescription
	}
	if flags.Changed("status") {
		scr.Draft.Status = taskStatus
	}
	if flags.Changed("pct") {
		scr.Draft.CompletionPct = taskPct
	}
	if flags.Changed("notes") {
		scr.Draft.Notes = taskNotes
	}

	for _, path := range taskPhotos {
		if err := scr.Gallery.Add(path, "", model.PhotoCategoryTask); err != nil {
			return submitError(err)
		}
	}

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Task %d updated\n", saved.ID)
	return nil
}

func runTasksProgress(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}
	pct, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid percentage %q", args[1])
	}

	scr, _ := loadTasks(cmd, api.ListFilter{})
	saved, err := scr.SetProgress(cmd.Context(), id, pct)
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Task %d at %d%% (%s)\n", saved.ID, saved.CompletionPct, saved.Status)
	return nil
}

func runTasksRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}
	if !taskRmYes && !confirm(fmt.Sprintf("Delete task %d?", id)) {
		fmt.Println("Aborted.")
		return nil
	}

	scr, _ := loadTasks(cmd, api.ListFilter{})
	if err := scr.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	fmt.Printf("Task %d deleted\n", id)
	return nil
}
