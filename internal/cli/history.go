package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent ledger writes recorded by this toolkit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			entries := a.openJournal()
			if entries == nil {
				return fmt.Errorf("journal at %s is unavailable", a.config.JournalDir)
			}
			records, err := entries.List(limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				a.printf("No history recorded\n")
				return nil
			}

			writer := tabwriter.NewWriter(a.options.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(writer, "TIME\tLEDGER\tOPERATION\tMINT\tWALLET\tAMOUNT\tSIGNATURE")
			for _, record := range records {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					record.CreatedAt.Format(time.RFC3339),
					record.Ledger,
					record.Operation,
					dash(record.Mint),
					dash(record.Wallet),
					dash(record.Amount),
					dash(record.Signature),
				)
			}
			return writer.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of entries to show (0 shows all)")
	return cmd
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
