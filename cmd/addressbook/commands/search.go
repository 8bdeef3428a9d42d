package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "search <city-or-state>",
		Short: "Find contacts by city or state across all books",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found := appCtx.Books.SearchByCityOrState(args[0])
			if len(found) == 0 && !asJSON {
				fmt.Fprintf(cmd.OutOrStdout(), "No contacts in %q.\n", args[0])
				return nil
			}
			return renderContacts(cmd.OutOrStdout(), found, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print contacts as JSON")
	return cmd
}
