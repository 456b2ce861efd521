package ring

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/ringkit/ringkit/internal/config"
	"github.com/ringkit/ringkit/lib/logctx"
	"github.com/ringkit/ringkit/lib/repl"
	"github.com/ringkit/ringkit/lib/ringbuffer"
)

const (
	FlagCapacity = "capacity"

	KeyCapacity = "ring.capacity"
)

func exactArgs(n int, usage string, args []string) error {
	if len(args) != n {
		return xerrors.Errorf("usage: %s", usage)
	}
	return nil
}

func registerCommands(sh *repl.Shell, rb *ringbuffer.RingBuffer[string]) {
	sh.Register(
		repl.Command{
			Name:  "push",
			Usage: "push <item>...",
			Help:  "add items, evicting the oldest when full",
			Run: func(_ context.Context, args []string) error {
				if len(args) == 0 {
					return xerrors.New("usage: push <item>...")
				}
				for _, item := range args {
					rb.Push(item)
				}
				return nil
			},
		},
		repl.Command{
			Name: "pop",
			Help: "remove and print the oldest item",
			Run: func(_ context.Context, args []string) error {
				if err := exactArgs(0, "pop", args); err != nil {
					return err
				}
				sh.Println(rb.Pop())
				return nil
			},
		},
		repl.Command{
			Name: "peek",
			Help: "print the oldest item",
			Run: func(_ context.Context, args []string) error {
				if err := exactArgs(0, "peek", args); err != nil {
					return err
				}
				sh.Println(rb.Peek())
				return nil
			},
		},
		repl.Command{
			Name:  "contains",
			Usage: "contains <item>",
			Help:  "report whether item is held",
			Run: func(_ context.Context, args []string) error {
				if err := exactArgs(1, "contains <item>", args); err != nil {
					return err
				}
				sh.Println(rb.Contains(args[0]))
				return nil
			},
		},
		repl.Command{
			Name: "len",
			Help: "print the number of items",
			Run: func(_ context.Context, args []string) error {
				if err := exactArgs(0, "len", args); err != nil {
					return err
				}
				sh.Println(rb.Len())
				return nil
			},
		},
		repl.Command{
			Name: "empty",
			Help: "report whether the buffer is empty",
			Run: func(_ context.Context, args []string) error {
				if err := exactArgs(0, "empty", args); err != nil {
					return err
				}
				sh.Println(rb.IsEmpty())
				return nil
			},
		},
		repl.Command{
			Name: "full",
			Help: "report whether the buffer is full",
			Run: func(_ context.Context, args []string) error {
				if err := exactArgs(0, "full", args); err != nil {
					return err
				}
				sh.Println(rb.IsFull())
				return nil
			},
		},
		repl.Command{
			Name: "clear",
			Help: "drop every item",
			Run: func(_ context.Context, args []string) error {
				if err := exactArgs(0, "clear", args); err != nil {
					return err
				}
				rb.Clear()
				return nil
			},
		},
		repl.Command{
			Name: "list",
			Help: "print the buffer",
			Run: func(_ context.Context, args []string) error {
				if err := exactArgs(0, "list", args); err != nil {
					return err
				}
				sh.Println(rb)
				return nil
			},
		},
		repl.Command{
			Name: "items",
			Help: "print the items one per line, oldest first",
			Run: func(_ context.Context, args []string) error {
				if err := exactArgs(0, "items", args); err != nil {
					return err
				}
				for i, item := range rb.Snapshot() {
					sh.Printf("%4d: %s\n", i+1, item)
				}
				return nil
			},
		},
	)
}

func CreateRingCmd() *cobra.Command {
	ringCmd := &cobra.Command{
		Use:   "ring",
		Short: "Work with a fixed-capacity ring buffer",
		Long: fmt.Sprintf(`Start an interactive session over a ring buffer of strings.

Once the buffer holds --capacity items, each push drops the oldest one.
The capacity can also be set with %s_RING_CAPACITY.`, config.EnvPrefix),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.NewLogger(cmd.ErrOrStderr())
			ctx := logctx.WithLogger(cmd.Context(), logger)

			capacity := viper.GetInt(KeyCapacity)
			rb, err := ringbuffer.New[string](capacity)
			if err != nil {
				return xerrors.Errorf("failed to create ring buffer: %w", err)
			}
			logger.Debug("Created ring buffer", "capacity", capacity)

			sh := repl.New(repl.Config{
				In:         cmd.InOrStdin(),
				Out:        cmd.OutOrStdout(),
				Err:        cmd.ErrOrStderr(),
				ShowPrompt: repl.IsTerminal(cmd.InOrStdin()),
			})
			registerCommands(sh, rb)
			return sh.Run(ctx)
		},
	}

	ringCmd.Flags().IntP(FlagCapacity, "c", ringbuffer.DefaultCapacity, "Maximum number of items the buffer holds")
	config.BindFlag(ringCmd, KeyCapacity, FlagCapacity)

	return ringCmd
}
