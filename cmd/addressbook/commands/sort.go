package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"addressbook/internal/domain"
)

func sortCmd() *cobra.Command {
	fields := make([]string, 0, len(domain.SortFields))
	for _, f := range domain.SortFields {
		fields = append(fields, f.String())
	}
	return &cobra.Command{
		Use:       "sort <book> <field>",
		Short:     "Reorder a book by " + strings.Join(fields, ", "),
		Args:      cobra.ExactArgs(2),
		ValidArgs: fields,
		RunE: func(cmd *cobra.Command, args []string) error {
			field := domain.SortField(args[1])
			if err := appCtx.Books.SortContacts(args[0], field); err != nil {
				return report(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Address book %q sorted by %s.\n", args[0], field)
			return nil
		},
	}
}
