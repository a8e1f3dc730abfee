package main

import (
	"os"

	"github.com/SyedqaderEng/financeOS-sub001/cmd/do/cmd"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "do",
		Short:        "Operations and development tools for financeOS",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.DevCmd())
	rootCmd.AddCommand(cmd.MigrateCmd())
	rootCmd.AddCommand(cmd.AuditCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
