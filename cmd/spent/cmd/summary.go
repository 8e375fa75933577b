package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spent/ledger"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Total the ledger",
	Long: `Print the total amount spent, over the whole ledger or one month of
the current year.

Examples:
  spent summary
  spent summary -m 1`,
	RunE: runSummary,
}

var summaryMonth int

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().IntVarP(&summaryMonth, "month", "m", 0, "total one month of the current year (1..12)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	st, led, err := loadLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	recs := led.Expenses()
	if cmd.Flags().Changed("month") {
		month := time.Month(summaryMonth)
		recs, err = ledger.FilterByMonth(recs, month)
		if err != nil {
			return err
		}
		fmt.Printf("Total expenses for %s: %.2f\n", month, ledger.Total(recs))
		return nil
	}

	fmt.Printf("Total expenses: %.2f\n", ledger.Total(recs))
	return nil
}
