package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SyedqaderEng/financeOS-sub001/internal/repository"
	"github.com/SyedqaderEng/financeOS-sub001/internal/service"
	"github.com/spf13/cobra"
)

func AuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check every goal balance against its contribution ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, database, closeFn, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeFn()

			repos := repository.NewStore(database).Repos()
			auditor := service.NewLedgerAuditor(repos.Goals, repos.Contributions)

			mismatches, err := auditor.Audit(cmd.Context())
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), mismatches)
		},
	}
}

// report prints mismatches and fails when there is at least one.
func report(out io.Writer, mismatches []service.LedgerMismatch) error {
	if len(mismatches) == 0 {
		fmt.Fprintln(out, "ledger OK: every goal matches its contributions")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GOAL\tNAME\tSTATUS\tCURRENT\tLEDGER\tCOUNT\tLEDGER COUNT\tREASON")
	for _, m := range mismatches {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			m.GoalID, m.Name, m.Status, m.CurrentAmount, m.LedgerSum, m.StoredCount, m.LedgerCount, m.Reason)
	}
	err := w.Flush()
	if err != nil {
		return err
	}

	return fmt.Errorf("ledger audit found %d mismatched goal(s)", len(mismatches))
}
