package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove an expense",
	Long: `Delete an expense from the ledger by id.

The freed id is never handed out again unless it was the highest one.

Example:
  spent delete -i 2`,
	RunE: runDelete,
}

var deleteID uint32

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().Uint32VarP(&deleteID, "id", "i", 0, "id of the expense to remove (required)")
	deleteCmd.MarkFlagRequired("id")
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, led, err := loadLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := led.Delete(deleteID); err != nil {
		return err
	}
	if err := st.Save(led.Expenses()); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	fmt.Printf("Deleted expense with ID %d\n", deleteID)
	return nil
}
