package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spent/ledger"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Long: `Add an expense to the ledger and report its id.

The date defaults to today when not given.

Example:
  spent add -k "coffee" -v 3.50 -d 2024-01-05`,
	RunE: runAdd,
}

var (
	addDescription string
	addAmount      float64
	addDate        string
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addDescription, "description", "k", "", "what the money went to (required)")
	addCmd.Flags().Float64VarP(&addAmount, "amount", "v", 0, "amount spent")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "date of the expense (YYYY-MM-DD, default today)")
	addCmd.MarkFlagRequired("description")
}

func runAdd(cmd *cobra.Command, args []string) error {
	var date *time.Time
	if addDate != "" {
		d, err := ledger.ParseDate(addDate)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		date = &d
	}

	st, led, err := loadLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	e := led.Add(addDescription, addAmount, date)
	if err := st.Save(led.Expenses()); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	fmt.Printf("Added expense with ID %d\n", e.ID)
	return nil
}
