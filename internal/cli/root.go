package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose bool
	logger  *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "mill_ledger",
		Short: "Paper mill ledger engine",
		Long: `mill_ledger builds running-balance ledgers and reports on read from the paper mill's
gate entries, returns, payments, bank transactions and expenses.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL connection URL (overrides PGSQL_URL)")
	rootCmd.PersistentFlags().String("cash-account", "", "cash account used for payment and expense postings (overrides CASH_ACCOUNT_ID)")
	cobra.CheckErr(viper.BindPFlag("PGSQL_URL", rootCmd.PersistentFlags().Lookup("database-url")))
	cobra.CheckErr(viper.BindPFlag("CASH_ACCOUNT_ID", rootCmd.PersistentFlags().Lookup("cash-account")))

	rootCmd.AddCommand(serveCmd, migrateCmd, ledgerCmd, reconcileCmd)
}

func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
