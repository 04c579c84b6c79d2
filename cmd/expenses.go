package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/config"
	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
	"github.com/obralog/obralog/internal/screen"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Manage project expenses",
}

var (
	expListProject  int64
	expListStatus   string
	expListCategory string
	expListSupplier int64
	expListSearch   string
)

var expensesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	Args:  cobra.NoArgs,
	RunE:  runExpensesList,
}

var (
	expProject  int64
	expSupplier int64
	expDesc     string
	expCategory string
	expAmount   float64
	expDue      string
	expMethod   string
	expStatus   string
	expPaidOn   string
)

var expensesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Args:  cobra.NoArgs,
	RunE:  runExpensesAdd,
}

var expensesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesEdit,
}

var expensesPayCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Mark an expense as paid",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesPay,
}

var expRmYes bool

var expensesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesRm,
}

func init() {
	expensesListCmd.Flags().Int64Var(&expListProject, "project", 0, "Filter by project")
	expensesListCmd.Flags().StringVar(&expListStatus, "status", "", "Filter by payment status (PENDENTE, PAGO)")
	expensesListCmd.Flags().StringVar(&expListCategory, "category", "", "Filter by category")
	expensesListCmd.Flags().Int64Var(&expListSupplier, "supplier", 0, "Filter by supplier")
	expensesListCmd.Flags().StringVar(&expListSearch, "search", "", "Filter by description text")

	for _, c := range []*cobra.Command{expensesAddCmd, expensesEditCmd} {
		c.Flags().Int64Var(&expProject, "project", 0, "Project reference")
		c.Flags().Int64Var(&expSupplier, "supplier", 0, "Supplier reference")
		c.Flags().StringVar(&expDesc, "desc", "", "Expense description")
		c.Flags().StringVar(&expCategory, "category", "", "Category (material, mao_de_obra, …)")
		c.Flags().Float64Var(&expAmount, "amount", 0, "Amount")
		c.Flags().StringVar(&expDue, "due", "", "Due date (DD/MM/YYYY or YYYY-MM-DD)")
		c.Flags().StringVar(&expMethod, "method", "", "Payment method (pix, boleto, …)")
		c.Flags().StringVar(&expStatus, "status", "", "Payment status (PENDENTE, PAGO)")
		c.Flags().StringVar(&expPaidOn, "paid-on", "", "Payment date, defaults to today when paid")
	}

	expensesPayCmd.Flags().StringVar(&expPaidOn, "date", "", "Payment date, defaults to today")
	expensesRmCmd.Flags().BoolVar(&expRmYes, "yes", false, "Skip the confirmation prompt")

	expensesCmd.AddCommand(expensesListCmd)
	expensesCmd.AddCommand(expensesAddCmd)
	expensesCmd.AddCommand(expensesEditCmd)
	expensesCmd.AddCommand(expensesPayCmd)
	expensesCmd.AddCommand(expensesRmCmd)
}

func loadExpenses(cmd *cobra.Command, projectID int64) (*screen.Expenses, config.Config) {
	client, cfg := newBackend(cmd)
	scr := screen.NewExpenses(client)
	if err := scr.Load(cmd.Context(), api.ListFilter{ProjectID: projectID}); err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}
	return scr, cfg
}

func runExpensesList(cmd *cobra.Command, args []string) error {
	scr, _ := loadExpenses(cmd, expListProject)

	rows := [][]string{}
	for _, e := range scr.Filtered(screen.ExpenseFilter{
		ProjectID:  expListProject,
		SupplierID: expListSupplier,
		Status:     expListStatus,
		Category:   expListCategory,
		Text:       expListSearch,
	}) {
		paid := ""
		if e.PaymentDate != nil {
			paid = normalize.DateOnly(*e.PaymentDate)
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Description,
			e.Category,
			money(e.Amount),
			normalize.DateOnly(e.DueDate),
			e.PaymentStatus,
			paid,
		})
	}
	renderTable([]string{"ID", "Description", "Category", "Amount", "Due", "Status", "Paid on"}, rows)
	return nil
}

func runExpensesAdd(cmd *cobra.Command, args []string) error {
	scr, cfg := loadExpenses(cmd, 0)

	scr.BeginCreate(projectOrDefault(expProject, cfg))
	scr.Draft.SupplierID = expSupplier
	scr.Draft.Description = expDesc
	scr.Draft.Category = expCategory
	scr.Draft.Amount = expAmount
	scr.Draft.DueDate = expDue
	scr.Draft.PaymentMethod = expMethod
	if expStatus != "" {
		scr.Draft.PaymentStatus = expStatus
	}
	scr.Draft.PaymentDate = expPaidOn

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Expense %d recorded (%s, %s)\n", saved.ID, saved.Description, money(saved.Amount))
	return nil
}

func runExpensesEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid expense id %q", args[0])
	}

	scr, _ := loadExpenses(cmd, 0)
	var target *model.Expense
	for i := range scr.Expenses {
		if scr.Expenses[i].ID == id {
			target = &scr.Expenses[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("expense %d not found", id)
	}
	scr.BeginEdit(*target)

	flags := cmd.Flags()
	if flags.Changed("project") {
		scr.Draft.ProjectID = expProject
	}
	if flags.Changed("supplier") {
		scr.Draft.SupplierID = expSupplier
	}
	if flags.Changed("desc") {
		scr.Draft.Description = expDesc
	}
	if flags.Changed("category") {
		scr.Draft.Category = expCategory
	}
	if flags.Changed("amount") {
		scr.Draft.Amount = expAmount
	}
	if flags.Changed("due") {
		scr.Draft.DueDate = expDue
	}
	if flags.Changed("method") {
		scr.Draft.PaymentMethod = expMethod
	}
	if flags.Changed("status") {
		scr.Draft.PaymentStatus = expStatus
	}
	if flags.Changed("paid-on") {
		scr.Draft.PaymentDate = expPaidOn
	}

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Expense %d updated\n", saved.ID)
	return nil
}

func runExpensesPay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid expense id %q", args[0])
	}

	scr, _ := loadExpenses(cmd, 0)
	saved, err := scr.MarkPaid(cmd.Context(), id, expPaidOn)
	if err != nil {
		return submitError(err)
	}
	paidOn := ""
	if saved.PaymentDate != nil {
		paidOn = normalize.DateOnly(*saved.PaymentDate)
	}
	fmt.Printf("Expense %d marked as paid on %s\n", saved.ID, paidOn)
	return nil
}

func runExpensesRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid expense id %q", args[0])
	}
	if !expRmYes && !confirm(fmt.Sprintf("Delete expense %d?", id)) {
		fmt.Println("Aborted.")
		return nil
	}

	scr, _ := loadExpenses(cmd, 0)
	if err := scr.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	fmt.Printf("Expense %d deleted\n", id)
	return nil
}
