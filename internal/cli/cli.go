// Package cli implements the gridiron command line.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/preston-bernstein/gridiron-gm/internal/config"
	"github.com/preston-bernstein/gridiron-gm/internal/logging"
	"github.com/preston-bernstein/gridiron-gm/internal/server"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

type runtime struct {
	srv    *server.Server
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	summary string
	run     func(ctx context.Context, rt *runtime, args []string) int
}

var usages = map[string]string{
	"status":     "status",
	"add-owner":  "add-owner NAME",
	"add-team":   "add-team NAME",
	"add-player": "add-player [-pos POS] [-team ID] NAME",
	"simulate":   "simulate [-game N]",
	"watch":      "watch",
}

var commands = map[string]command{
	"status":     {summary: "refresh everything and print it", run: runStatus},
	"add-owner":  {summary: "create an owner", run: runAddOwner},
	"add-team":   {summary: "create a team", run: runAddTeam},
	"add-player": {summary: "create a player", run: runAddPlayer},
	"simulate":   {summary: "simulate a game and print the result", run: runSimulate},
	"watch":      {summary: "refresh on an interval and re-print on change", run: runWatch},
}

// Run parses args (without the program name) and executes one command.
func Run(ctx context.Context, args []string, cfg config.Config, logger *slog.Logger, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridiron", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	desktop := fs.Bool("desktop", cfg.Desktop, "talk to the desktop sidecar backend")
	base := fs.String("base", cfg.BaseURLOverride, "use this API base URL instead of resolving one")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if fs.NArg() == 0 {
		printUsage(stderr)
		return ExitUsage
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		printUsage(stderr)
		return ExitUsage
	}

	cfg.Desktop = *desktop
	cfg.BaseURLOverride = strings.TrimSpace(*base)
	rt := &runtime{
		srv:    server.New(cfg, logger),
		logger: logger,
		stdout: stdout,
		stderr: stderr,
	}
	if name != "watch" {
		defer func() {
			if err := rt.srv.Close(context.Background()); err != nil {
				logging.Warn(logger, "metrics shutdown failed", "error", err)
			}
		}()
	}
	return cmd.run(ctx, rt, fs.Args()[1:])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: gridiron [-desktop] [-base URL] <command> [args]")
	fmt.Fprintln(w, "\ncommands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-40s %s\n", usages[name], commands[name].summary)
	}
}

// subFlags builds a flag set for a command that reports errors to stderr.
func subFlags(name string, rt *runtime) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(rt.stderr)
	fs.Usage = func() { fmt.Fprintf(rt.stderr, "usage: gridiron %s\n", usages[name]) }
	return fs
}
