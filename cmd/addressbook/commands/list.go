package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list <book>",
		Short: "Show a book's contacts in stored order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := appCtx.Books.ViewContacts(args[0])
			if err != nil {
				return report(cmd, err)
			}
			return renderContacts(cmd.OutOrStdout(), contacts, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print contacts as JSON")
	return cmd
}

func countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <book>",
		Short: "Count the contacts in a book (0 if it does not exist)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), appCtx.Books.CountContacts(args[0]))
			return nil
		},
	}
}
