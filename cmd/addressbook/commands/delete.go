package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <book> <first> <last>",
		Short: "Delete a contact by first and last name",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, first, last := args[0], args[1], args[2]
			if err := appCtx.Books.DeleteContact(book, first, last); err != nil {
				return report(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contact %s %s deleted.\n", first, last)
			return nil
		},
	}
}

// delete-at fails the command on an out-of-range index.
func deleteAtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-at <book> <index>",
		Short: "Delete a contact by its zero-based position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("index %q: %w", args[1], err)
			}
			if err := appCtx.Books.DeleteContactAt(args[0], index); err != nil {
				return report(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contact at %d deleted.\n", index)
			return nil
		},
	}
}
