// Package cli implements the gotable command line.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Alp4ka/gotable/internal/config"
	"github.com/Alp4ka/gotable/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	cfg    *config.Config
	base   zerolog.Logger
	logger zerolog.Logger

	configPath string
	logLevel   string
	debug      bool

	source sourceFlags
	view   viewFlags
}

// NewRootCmd creates the root command with show, browse and serve
// subcommands.
func NewRootCmd(version string) *cobra.Command {
	a := &app{base: zerolog.Nop(), logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:     "gotable",
		Short:   "Search, sort and page through tabular records",
		Long:    "gotable loads records from a JSON/YAML file or an SQL table and shows one searched, sorted page of them.",
		Version: version,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	a.source.register(cmd)
	a.view.register(cmd)

	cmd.AddCommand(newShowCmd(a), newBrowseCmd(a), newServeCmd(a))

	return cmd
}

// setup loads .env, the config file and the environment, then applies flag
// overrides: flags win over the environment, which wins over the file.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(""); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.debug {
		cfg.Logging.Level = zerolog.DebugLevel.String()
		cfg.Logging.Format = logging.FormatConsole
	}

	a.cfg = cfg
	a.base = logging.NewWithWriter(cfg.Logging, cmd.ErrOrStderr())
	a.logger = logging.Component(a.base, "cli")
	a.logger.Debug().Str("config", a.configPath).Str("level", cfg.Logging.Level).Msg("configuration loaded")

	return nil
}

const rootCmdExample = `  # Show the first page of a JSON file
  gotable show --file users.json

  # Search two fields and sort by name descending, 20 rows per page
  gotable show --file users.yaml --search ali --keys name,email --sort "name desc" --page-size 20

  # Page through a Postgres table as JSON
  gotable show --driver postgres --dsn "$DATABASE_URL" --table users --page 3 --output json

  # Browse interactively
  gotable browse --file users.json

  # Serve snapshots over HTTP
  gotable serve --file users.json --addr :8080`
