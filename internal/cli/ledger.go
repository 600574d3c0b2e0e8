package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/SscSPs/papermill_ledger/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
)

var ledgerParams dto.LedgerQueryParams

var ledgerCmd = &cobra.Command{
	Use:   "ledger <accountID>",
	Short: "Print the ledger of an account as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateLedgerParams(ledgerParams); err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.close()

		result, err := a.services.Ledger.GetLedger(cmd.Context(), ledgerParams.ToLedgerQuery(args[0]))
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), dto.ToLedgerResponse(result))
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <bankAccountID>",
	Short: "Check stored bank balances against the replayed transaction log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.close()

		rec, err := a.services.Ledger.ReconcileBankAccount(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), dto.ToBankReconciliationResponse(rec))
	},
}

func init() {
	ledgerCmd.Flags().IntVarP(&ledgerParams.Level, "level", "l", 0, "hierarchy level 1-3 (default: the account's stored level)")
	ledgerCmd.Flags().StringVar(&ledgerParams.StartDate, "from", "", "first day included (YYYY-MM-DD)")
	ledgerCmd.Flags().StringVar(&ledgerParams.EndDate, "to", "", "last day included (YYYY-MM-DD)")
}

// validateLedgerParams runs the binding rules the HTTP handler applies to the same params.
func validateLedgerParams(p dto.LedgerQueryParams) error {
	if err := binding.Validator.ValidateStruct(p); err != nil {
		return fmt.Errorf("invalid ledger parameters: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
