package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"spent/config"
	"spent/ledger"
)

var rootCmd = &cobra.Command{
	Use:   "spent",
	Short: "A personal expense ledger for the command line",
	Long: `Spent records day-to-day expenses in a plain semicolon-delimited file.

It provides commands for:
  - Adding, updating and deleting expense entries
  - Listing entries, optionally for one month of the current year
  - Summarizing totals over the whole ledger or a single month
  - Keeping the ledger in a flat file or a SQLite database

The ledger is rewritten in full on every change and nothing locks it: two
invocations writing the same ledger at the same time race, and the last
writer wins.`,
}

var (
	ledgerFile  string
	dbPath      string
	storeType   string
	strictParse bool
	configPath  string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&ledgerFile, "file", "f", "expenses.csv", "path to the ledger file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "expenses.sqlite", "path to the SQLite ledger DB")
	rootCmd.PersistentFlags().StringVar(&storeType, "store", "csv", "store backend: csv or sqlite")
	rootCmd.PersistentFlags().BoolVar(&strictParse, "strict", false, "fail on unparsable ledger rows instead of dropping them")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "load store settings from a config file")
}

// openStore builds the store from the persistent flags, or from the config
// file when one is given.
func openStore() (ledger.Store, error) {
	sc := config.StoreConfig{
		Type:   storeType,
		File:   ledgerFile,
		DBPath: dbPath,
		Strict: strictParse,
	}
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		sc = cfg.Store
	}

	switch sc.Type {
	case "csv":
		return ledger.NewCSV(sc.File, sc.Strict), nil
	case "sqlite":
		return ledger.NewSQLite(sc.DBPath)
	default:
		return nil, fmt.Errorf("unknown store type %q", sc.Type)
	}
}

// loadLedger opens the store, ensures the ledger exists and reads it. The
// caller owns closing the store.
func loadLedger() (ledger.Store, *ledger.Ledger, error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	if err := st.Init(); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("init ledger: %w", err)
	}
	recs, err := st.Load()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load ledger: %w", err)
	}
	return st, ledger.New(recs), nil
}
