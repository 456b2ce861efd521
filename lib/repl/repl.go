// Package repl implements the line-oriented ">>>" command loop used by the
// ringkit commands.
package repl

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/acarl005/stripansi"
	"golang.org/x/term"
	"golang.org/x/xerrors"

	"github.com/ringkit/ringkit/lib/logctx"
)

const (
	DefaultPrompt = ">>> "
	// DefaultMaxLineLength is the default input line limit in bytes.
	DefaultMaxLineLength = 1 << 20
)

// ErrLineTooLong is returned for an input line longer than
// Config.MaxLineLength. The rest of the line is discarded and reading can
// continue with the next one.
var ErrLineTooLong = xerrors.New("input line too long")

// Handler runs a command with the words that followed its name.
type Handler func(ctx context.Context, args []string) error

type Command struct {
	Name string
	// Usage is shown in help, e.g. "push <item>...". Defaults to Name.
	Usage string
	Help  string
	Run   Handler
}

type Config struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Prompt defaults to DefaultPrompt.
	Prompt string
	// ShowPrompt enables the prompt and Ask questions. Usually set only when
	// In is a terminal.
	ShowPrompt bool
	// MaxLineLength limits a single input line, excluding the line ending.
	// Defaults to DefaultMaxLineLength.
	MaxLineLength int
}

type Shell struct {
	cfg      Config
	reader   *bufio.Reader
	commands map[string]Command
	order    []string
}

func New(cfg Config) *Shell {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.MaxLineLength <= 0 {
		cfg.MaxLineLength = DefaultMaxLineLength
	}
	return &Shell{
		cfg:      cfg,
		reader:   bufio.NewReader(cfg.In),
		commands: map[string]Command{},
	}
}

// Register adds commands. A command with an existing name replaces it.
func (s *Shell) Register(cmds ...Command) {
	for _, cmd := range cmds {
		name := strings.ToLower(cmd.Name)
		if _, ok := s.commands[name]; !ok {
			s.order = append(s.order, name)
		}
		s.commands[name] = cmd
	}
}

func (s *Shell) Println(a ...any) {
	fmt.Fprintln(s.cfg.Out, a...)
}

func (s *Shell) Printf(format string, a ...any) {
	fmt.Fprintf(s.cfg.Out, format, a...)
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// readLine returns the next line with ANSI sequences and surrounding space
// removed. ok is false at end of input. A line over the limit is consumed
// entirely and reported as ErrLineTooLong.
func (s *Shell) readLine() (string, bool, error) {
	var line []byte
	read := 0
	tooLong := false
	for {
		chunk, err := s.reader.ReadSlice('\n')
		read += len(chunk)
		if !tooLong {
			line = append(line, chunk...)
			if len(bytes.TrimRight(line, "\r\n")) > s.cfg.MaxLineLength {
				tooLong = true
				line = nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", false, xerrors.Errorf("failed to read input: %w", err)
		}
		if err != nil && read == 0 {
			return "", false, nil
		}
		break
	}
	if tooLong {
		return "", true, xerrors.Errorf("line exceeds %d bytes: %w", s.cfg.MaxLineLength, ErrLineTooLong)
	}
	return strings.TrimSpace(stripansi.Strip(string(line))), true, nil
}

// Ask prints question (when prompting is enabled) and returns the next input
// line.
func (s *Shell) Ask(question string) (string, error) {
	if s.cfg.ShowPrompt {
		fmt.Fprint(s.cfg.Out, question)
	}
	line, ok, err := s.readLine()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", xerrors.Errorf("no answer to %q: %w", strings.TrimSpace(question), io.ErrUnexpectedEOF)
	}
	return line, nil
}

// Run reads and dispatches commands until "exit", end of input or ctx is
// cancelled. Command failures are reported on Err and do not stop the loop.
func (s *Shell) Run(ctx context.Context) error {
	logger := logctx.FromOrDefault(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.cfg.ShowPrompt {
			fmt.Fprint(s.cfg.Out, s.cfg.Prompt)
		}
		line, ok, err := s.readLine()
		if errors.Is(err, ErrLineTooLong) {
			fmt.Fprintf(s.cfg.Err, "error: %v\n", err)
			continue
		}
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name, args := strings.ToLower(fields[0]), fields[1:]

		switch name {
		case "exit":
			return nil
		case "help":
			s.printHelp()
			continue
		}

		cmd, ok := s.commands[name]
		if !ok {
			fmt.Fprintf(s.cfg.Err, "unknown command %s\n", name)
			continue
		}
		logger.Debug("Running command", "command", name, "args", args)
		if err := cmd.Run(ctx, args); err != nil {
			logger.Debug("Command failed", "command", name, "error", err)
			fmt.Fprintf(s.cfg.Err, "error: %v\n", err)
		}
	}
}

func (s *Shell) printHelp() {
	type entry struct{ usage, help string }
	entries := make([]entry, 0, len(s.order)+2)
	for _, name := range s.order {
		cmd := s.commands[name]
		usage := cmd.Usage
		if usage == "" {
			usage = name
		}
		entries = append(entries, entry{usage, cmd.Help})
	}
	entries = append(entries, entry{"help", "show this help"}, entry{"exit", "quit"})

	width := 0
	for _, e := range entries {
		width = max(width, len(e.usage))
	}
	fmt.Fprintln(s.cfg.Out, "Commands:")
	for _, e := range entries {
		fmt.Fprintf(s.cfg.Out, "  %-*s  %s\n", width, e.usage, e.help)
	}
}
