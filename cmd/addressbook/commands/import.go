package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// import-legacy reads a bare contact list (the single-book file format) and
// adds its contacts to a book, creating the book if needed.
func importLegacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-legacy <book> <file>",
		Short: "Import a legacy single-book contact list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, path := args[0], args[1]
			contacts := appCtx.LegacyStore(path).Load()

			if _, err := appCtx.Books.CreateBook(book); err != nil {
				return err
			}
			rep, err := appCtx.Books.ImportContacts(book, contacts)
			if err != nil {
				return report(cmd, err)
			}
			for _, r := range rep.Rejected {
				cmd.PrintErrf("Skipped %s: %v\n", r.Contact.FullName(), r.Reason)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d contacts into %q.\n", rep.Added, len(contacts), book)
			return nil
		},
	}
}
