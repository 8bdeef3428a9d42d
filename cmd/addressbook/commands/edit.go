package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// edit overwrites only the fields passed as flags. Values are stored as
// given, without the checks add applies.
func editCmd() *cobra.Command {
	var f contactFlags
	cmd := &cobra.Command{
		Use:   "edit <book> <first> <last>",
		Short: "Overwrite selected fields of a contact",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, first, last := args[0], args[1], args[2]
			if err := appCtx.Books.EditContact(book, first, last, f.update(cmd)); err != nil {
				return report(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contact %s %s updated.\n", first, last)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
