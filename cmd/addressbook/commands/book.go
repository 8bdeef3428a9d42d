package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createBookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-book <name>",
		Short: "Create an empty address book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := appCtx.Books.CreateBook(args[0])
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "Address book %q already exists.\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Address book %q created.\n", args[0])
			return nil
		},
	}
}

func booksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List address books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range appCtx.Books.Books() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", name, appCtx.Books.CountContacts(name))
			}
			return nil
		},
	}
}
