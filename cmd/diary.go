package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
	"github.com/obralog/obralog/internal/screen"
)

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Manage the daily diary record",
}

var (
	diaryProject     int64
	diaryDate        string
	diaryPeriod      string
	diaryResponsible int64
	diaryApprover    int64
	diaryClearCover  bool
)

var diaryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the diary record for a day",
	Args:  cobra.NoArgs,
	RunE:  runDiaryShow,
}

var diaryCoverCmd = &cobra.Command{
	Use:   "cover [file]",
	Short: "Set or clear the diary cover photo",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDiaryCover,
}

var diaryApproveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Approve the diary record for a day",
	Args:  cobra.NoArgs,
	RunE:  runDiaryApprove,
}

var diaryRejectCmd = &cobra.Command{
	Use:   "reject",
	Short: "Reject the diary record for a day",
	Args:  cobra.NoArgs,
	RunE:  runDiaryReject,
}

func init() {
	for _, c := range []*cobra.Command{diaryShowCmd, diaryCoverCmd, diaryApproveCmd, diaryRejectCmd} {
		c.Flags().Int64Var(&diaryProject, "project", 0, "Project reference")
		c.Flags().StringVar(&diaryDate, "date", "", "Diary date (YYYY-MM-DD)")
		c.Flags().StringVar(&diaryPeriod, "period", "", "Period (manha, tarde, noite, integral)")
	}
	diaryCoverCmd.Flags().Int64Var(&diaryResponsible, "responsible", 0, "Responsible person reference")
	diaryCoverCmd.Flags().BoolVar(&diaryClearCover, "clear", false, "Remove the cover photo")
	for _, c := range []*cobra.Command{diaryApproveCmd, diaryRejectCmd} {
		c.Flags().Int64Var(&diaryApprover, "by", 0, "Approver person reference")
	}

	diaryCmd.AddCommand(diaryShowCmd)
	diaryCmd.AddCommand(diaryCoverCmd)
	diaryCmd.AddCommand(diaryApproveCmd)
	diaryCmd.AddCommand(diaryRejectCmd)
}

func loadDiary(cmd *cobra.Command) *screen.Diary {
	client, cfg := newBackend(cmd)
	scr := screen.NewDiary(client)

	period := diaryPeriod
	if period == "" {
		period = cfg.Defaults.Period
	}
	if err := scr.Load(cmd.Context(), projectOrDefault(diaryProject, cfg), diaryDate, period); err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}
	return scr
}

func runDiaryShow(cmd *cobra.Command, args []string) error {
	scr := loadDiary(cmd)

	if scr.Meta == nil {
		fmt.Println("No diary record for this day yet.")
		return nil
	}

	m := scr.Meta
	cover := "none"
	if m.CoverPhoto() != nil {
		cover = "set"
	}
	approver := "-"
	if m.ApproverID != nil {
		approver = fmt.Sprintf("%d", *m.ApproverID)
	}
	rows := [][]string{
		{"Date", normalize.DateOnly(m.Date)},
		{"Period", m.Period},
		{"Status", m.ApprovalStatus},
		{"Responsible", fmt.Sprintf("%d", m.ResponsibleID)},
		{"Approver", approver},
		{"Cover photo", cover},
	}
	renderTable([]string{"Field", "Value"}, rows)
	return nil
}

func runDiaryCover(cmd *cobra.Command, args []string) error {
	scr := loadDiary(cmd)
	if diaryResponsible > 0 {
		scr.Draft.ResponsibleID = diaryResponsible
	}

	picker := scr.CoverPicker()
	if diaryClearCover {
		picker.Clear()
	} else {
		if len(args) == 0 {
			return fmt.Errorf("an image file is required unless --clear is set")
		}
		if err := picker.Attach(args[0]); err != nil {
			return submitError(err)
		}
	}

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	if diaryClearCover {
		fmt.Printf("Cover photo cleared for %s (%s)\n", normalize.DateOnly(saved.Date), saved.Period)
	} else {
		fmt.Printf("Cover photo set for %s (%s)\n", normalize.DateOnly(saved.Date), saved.Period)
	}
	return nil
}

func setDiaryApproval(cmd *cobra.Command, status string) error {
	scr := loadDiary(cmd)
	scr.Draft.ApprovalStatus = status
	scr.Draft.ApproverID = diaryApprover

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Diary for %s (%s) is now %s\n", normalize.DateOnly(saved.Date), saved.Period, saved.ApprovalStatus)
	return nil
}

func runDiaryApprove(cmd *cobra.Command, args []string) error {
	return setDiaryApproval(cmd, model.ApprovalApproved)
}

func runDiaryReject(cmd *cobra.Command, args []string) error {
	return setDiaryApproval(cmd, model.ApprovalRejected)
}
