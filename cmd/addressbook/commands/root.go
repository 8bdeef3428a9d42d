package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"addressbook/internal/app"
	"addressbook/internal/domain"
)

var (
	configPath string
	storePath  string
	backend    string
	logLevel   string
	appCtx     *app.Wire
)

// Execute runs the addressbook CLI.
func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and releases whatever PersistentPreRunE wired, even
// when the subcommand failed.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if appCtx != nil {
		err = multierr.Append(err, appCtx.Close())
		appCtx = nil
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "addressbook",
		Short:         "Manage local address books",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if storePath != "" {
				cfg.Store.Path = storePath
			}
			if backend != "" {
				cfg.Store.Backend = backend
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", app.DefaultConfigPath(), "config file")
	root.PersistentFlags().StringVar(&storePath, "store", "", "catalog location (default ~/.addressbook/contacts.json)")
	root.PersistentFlags().StringVar(&backend, "backend", "", "store backend: json or sqlite")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		createBookCmd(),
		booksCmd(),
		addCmd(),
		listCmd(),
		countCmd(),
		editCmd(),
		deleteCmd(),
		deleteAtCmd(),
		searchCmd(),
		sortCmd(),
		importLegacyCmd(),
		configCmd(),
	)
	return root
}

// report prints expected outcomes and swallows them; anything else fails
// the command.
func report(cmd *cobra.Command, err error) error {
	if domain.IsReported(err) {
		cmd.PrintErrf("Error: %v\n", err)
		return nil
	}
	return err
}
