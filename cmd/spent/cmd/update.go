package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"spent/ledger"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit an existing expense",
	Long: `Change the description, amount or date of an expense by id.

Only the flags given are changed; the other fields keep their values.

Example:
  spent update -i 3 -v 4.00`,
	RunE: runUpdate,
}

var (
	updateID          uint32
	updateDescription string
	updateAmount      float64
	updateDate        string
)

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().Uint32VarP(&updateID, "id", "i", 0, "id of the expense to edit (required)")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "k", "", "new description")
	updateCmd.Flags().Float64VarP(&updateAmount, "amount", "v", 0, "new amount")
	updateCmd.Flags().StringVarP(&updateDate, "date", "d", "", "new date (YYYY-MM-DD)")
	updateCmd.MarkFlagRequired("id")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	// Flags().Changed keeps "not supplied" distinct from "set to zero".
	var u ledger.Update
	if cmd.Flags().Changed("description") {
		u.Description = &updateDescription
	}
	if cmd.Flags().Changed("amount") {
		u.Amount = &updateAmount
	}
	if cmd.Flags().Changed("date") {
		d, err := ledger.ParseDate(updateDate)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		u.Date = &d
	}

	st, led, err := loadLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := led.Update(updateID, u); err != nil {
		return err
	}
	if err := st.Save(led.Expenses()); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	fmt.Printf("Updated expense with ID %d\n", updateID)
	return nil
}
