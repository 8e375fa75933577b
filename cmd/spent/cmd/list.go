package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"spent/ledger"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	Long: `Print the ledger as a table, newest entries last.

With -m, only entries from that month of the current year are shown.

Examples:
  spent list
  spent list -m 1`,
	RunE: runList,
}

var listMonth int

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listMonth, "month", "m", 0, "show one month of the current year (1..12)")
}

func runList(cmd *cobra.Command, args []string) error {
	st, led, err := loadLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	recs := led.Expenses()
	if cmd.Flags().Changed("month") {
		recs, err = ledger.FilterByMonth(recs, time.Month(listMonth))
		if err != nil {
			return err
		}
	}

	fmt.Print(formatTable(recs))
	return nil
}

func formatTable(recs []ledger.Expense) string {
	if len(recs) == 0 {
		return "Nothing to list.\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDate\tAmount\tDescription")
	for _, e := range recs {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\n", e.ID, e.Date.Format(ledger.DateLayout), e.Amount, e.Description)
	}
	w.Flush()
	return b.String()
}
