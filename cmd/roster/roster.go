package roster

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/ringkit/ringkit/internal/config"
	"github.com/ringkit/ringkit/lib/logctx"
	"github.com/ringkit/ringkit/lib/repl"
	"github.com/ringkit/ringkit/lib/roster"
)

const (
	FlagFile = "file"

	KeyFile = "roster.file"
)

// fileArg returns the single file argument, falling back to the --file
// setting.
func fileArg(command string, args []string) (string, error) {
	switch {
	case len(args) == 1:
		return args[0], nil
	case len(args) == 0 && viper.GetString(KeyFile) != "":
		return viper.GetString(KeyFile), nil
	default:
		return "", xerrors.Errorf("usage: %s <file>", command)
	}
}

func registerCommands(sh *repl.Shell, staff *roster.Staff) {
	sh.Register(
		repl.Command{
			Name: "add",
			Help: "add a worker",
			Run: func(ctx context.Context, args []string) error {
				name, err := sh.Ask("Name? ")
				if err != nil {
					return err
				}
				post, err := sh.Ask("Post? ")
				if err != nil {
					return err
				}
				yearText, err := sh.Ask("Year of hire? ")
				if err != nil {
					return err
				}
				year, err := strconv.Atoi(yearText)
				if err != nil {
					return xerrors.Errorf("invalid year %q", yearText)
				}
				staff.Add(name, post, year)
				logctx.From(ctx).Debug("Added worker", "name", name, "post", post, "year", year)
				return nil
			},
		},
		repl.Command{
			Name: "list",
			Help: "print the roster",
			Run: func(context.Context, []string) error {
				sh.Println(staff)
				return nil
			},
		},
		repl.Command{
			Name:  "select",
			Usage: "select <years>",
			Help:  "list workers with at least the given years of service",
			Run: func(_ context.Context, args []string) error {
				if len(args) != 1 {
					return xerrors.New("usage: select <years>")
				}
				period, err := strconv.Atoi(args[0])
				if err != nil {
					return xerrors.Errorf("invalid number of years %q", args[0])
				}
				selected := staff.Select(period)
				if len(selected) == 0 {
					sh.Println("no workers with the requested service length")
					return nil
				}
				for i, w := range selected {
					sh.Printf("%4d: %s\n", i+1, w.Name)
				}
				return nil
			},
		},
		repl.Command{
			Name:  "load",
			Usage: "load <file>",
			Help:  "replace the roster with the contents of an XML file",
			Run: func(ctx context.Context, args []string) error {
				filename, err := fileArg("load", args)
				if err != nil {
					return err
				}
				if err := staff.Load(filename); err != nil {
					return err
				}
				logctx.From(ctx).Info("Loaded roster", "file", filename, "workers", staff.Len())
				return nil
			},
		},
		repl.Command{
			Name:  "save",
			Usage: "save <file>",
			Help:  "write the roster to an XML file",
			Run: func(ctx context.Context, args []string) error {
				filename, err := fileArg("save", args)
				if err != nil {
					return err
				}
				if err := staff.Save(filename); err != nil {
					return err
				}
				logctx.From(ctx).Info("Saved roster", "file", filename, "workers", staff.Len())
				return nil
			},
		},
	)
}

func CreateRosterCmd() *cobra.Command {
	rosterCmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage a roster of workers",
		Long: fmt.Sprintf(`Start an interactive session over a staff roster kept sorted by name.

If --file (or %s_ROSTER_FILE) names an existing XML file it is loaded on
start, and load/save without an argument use it.`, config.EnvPrefix),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.NewLogger(cmd.ErrOrStderr())
			ctx := logctx.WithLogger(cmd.Context(), logger)

			fs := afero.NewOsFs()
			staff := roster.NewStaff(roster.StaffConfig{Fs: fs})
			if filename := viper.GetString(KeyFile); filename != "" {
				exists, err := afero.Exists(fs, filename)
				if err != nil {
					return xerrors.Errorf("failed to stat %s: %w", filename, err)
				}
				if exists {
					if err := staff.Load(filename); err != nil {
						return err
					}
					logger.Info("Loaded roster", "file", filename, "workers", staff.Len())
				}
			}

			sh := repl.New(repl.Config{
				In:         cmd.InOrStdin(),
				Out:        cmd.OutOrStdout(),
				Err:        cmd.ErrOrStderr(),
				ShowPrompt: repl.IsTerminal(cmd.InOrStdin()),
			})
			registerCommands(sh, staff)
			return sh.Run(ctx)
		},
	}

	rosterCmd.Flags().StringP(FlagFile, "f", "", "XML file to load on start and use as the default for load/save")
	config.BindFlag(rosterCmd, KeyFile, FlagFile)

	return rosterCmd
}
