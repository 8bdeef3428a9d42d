package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var f contactFlags
	cmd := &cobra.Command{
		Use:   "add <book>",
		Short: "Validate and add a contact to a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Books.AddContact(args[0], f.c); err != nil {
				return report(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contact %s added to %q.\n", f.c.FullName(), args[0])
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
