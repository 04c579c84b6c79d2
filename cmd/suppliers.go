package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/screen"
)

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "Manage suppliers",
}

var (
	supListSearch string
	supListActive bool
)

var suppliersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List suppliers",
	Args:  cobra.NoArgs,
	RunE:  runSuppliersList,
}

var (
	supName     string
	supDocType  string
	supDocNum   string
	supContact  string
	supPhone    string
	supEmail    string
	supInactive bool
)

var suppliersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new supplier",
	Args:  cobra.NoArgs,
	RunE:  runSuppliersAdd,
}

var suppliersEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a supplier",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuppliersEdit,
}

var supRmYes bool

var suppliersRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a supplier",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuppliersRm,
}

func init() {
	suppliersListCmd.Flags().StringVar(&supListSearch, "search", "", "Filter by name, document or contact")
	suppliersListCmd.Flags().BoolVar(&supListActive, "active", false, "Show only active suppliers")

	for _, c := range []*cobra.Command{suppliersAddCmd, suppliersEditCmd} {
		c.Flags().StringVar(&supName, "name", "", "Supplier name")
		c.Flags().StringVar(&supDocType, "doc-type", "", "Document type (fisica, juridica)")
		c.Flags().StringVar(&supDocNum, "doc", "", "Document number (CPF/CNPJ)")
		c.Flags().StringVar(&supContact, "contact", "", "Contact name")
		c.Flags().StringVar(&supPhone, "phone", "", "Phone")
		c.Flags().StringVar(&supEmail, "email", "", "Email")
		c.Flags().BoolVar(&supInactive, "inactive", false, "Mark the supplier inactive")
	}

	suppliersRmCmd.Flags().BoolVar(&supRmYes, "yes", false, "Skip the confirmation prompt")

	suppliersCmd.AddCommand(suppliersListCmd)
	suppliersCmd.AddCommand(suppliersAddCmd)
	suppliersCmd.AddCommand(suppliersEditCmd)
	suppliersCmd.AddCommand(suppliersRmCmd)
}

func loadSuppliers(cmd *cobra.Command) *screen.Suppliers {
	client, _ := newBackend(cmd)
	scr := screen.NewSuppliers(client)
	if err := scr.Load(cmd.Context()); err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(2)
	}
	return scr
}

func runSuppliersList(cmd *cobra.Command, args []string) error {
	scr := loadSuppliers(cmd)

	rows := [][]string{}
	for _, sp := range scr.Filtered(screen.SupplierFilter{Text: supListSearch, OnlyActive: supListActive}) {
		active := "yes"
		if !sp.Active {
			active = "no"
		}
		rows = append(rows, []string{
			strconv.FormatInt(sp.ID, 10),
			sp.Name,
			sp.DocumentType,
			sp.DocumentNumber,
			sp.ContactName,
			sp.Phone,
			active,
		})
	}
	renderTable([]string{"ID", "Name", "Type", "Document", "Contact", "Phone", "Active"}, rows)
	return nil
}

func runSuppliersAdd(cmd *cobra.Command, args []string) error {
	scr := loadSuppliers(cmd)

	scr.BeginCreate()
	scr.Draft.Name = supName
	scr.Draft.DocumentType = supDocType
	scr.Draft.DocumentNumber = supDocNum
	scr.Draft.ContactName = supContact
	scr.Draft.Phone = supPhone
	scr.Draft.Email = supEmail
	scr.Draft.Active = !supInactive

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Supplier %d registered (%s)\n", saved.ID, saved.Name)
	return nil
}

func runSuppliersEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid supplier id %q", args[0])
	}

	scr := loadSuppliers(cmd)
	var target *model.Supplier
	for i := range scr.Suppliers {
		if scr.Suppliers[i].ID == id {
			target = &scr.Suppliers[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("supplier %d not found", id)
	}
	scr.BeginEdit(*target)

	flags := cmd.Flags()
	if flags.Changed("name") {
		scr.Draft.Name = supName
	}
	if flags.Changed("doc-type") {
		scr.Draft.DocumentType = supDocType
	}
	if flags.Changed("doc") {
		scr.Draft.DocumentNumber = supDocNum
	}
	if flags.Changed("contact") {
		scr.Draft.ContactName = supContact
	}
	if flags.Changed("phone") {
		scr.Draft.Phone = supPhone
	}
	if flags.Changed("email") {
		scr.Draft.Email = supEmail
	}
	if flags.Changed("inactive") {
		scr.Draft.Active = !supInactive
	}

	saved, err := scr.Submit(cmd.Context())
	if err != nil {
		return submitError(err)
	}
	fmt.Printf("Supplier %d updated\n", saved.ID)
	return nil
}

func runSuppliersRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid supplier id %q", args[0])
	}
	if !supRmYes && !confirm(fmt.Sprintf("Delete supplier %d?", id)) {
		fmt.Println("Aborted.")
		return nil
	}

	scr := loadSuppliers(cmd)
	if err := scr.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	fmt.Printf("Supplier %d deleted\n", id)
	return nil
}
