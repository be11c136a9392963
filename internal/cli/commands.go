package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/preston-bernstein/gridiron-gm/internal/app/state"
	"github.com/preston-bernstein/gridiron-gm/internal/view"
)

func runStatus(ctx context.Context, rt *runtime, args []string) int {
	if len(args) != 0 {
		fmt.Fprintf(rt.stderr, "usage: gridiron %s\n", usages["status"])
		return ExitUsage
	}
	report := rt.srv.Controller().RefreshAll(ctx)
	warnIncomplete(rt, report)
	return rt.render()
}

func runAddOwner(ctx context.Context, rt *runtime, args []string) int {
	return runAddNamed(ctx, rt, "add-owner", args, rt.srv.Controller().AddOwner)
}

func runAddTeam(ctx context.Context, rt *runtime, args []string) int {
	return runAddNamed(ctx, rt, "add-team", args, rt.srv.Controller().AddTeam)
}

func runAddNamed(ctx context.Context, rt *runtime, name string, args []string, add func(context.Context, string) error) int {
	fs := subFlags(name, rt)
	if err := fs.Parse(args); err != nil || fs.NArg() == 0 {
		if err == nil {
			fs.Usage()
		}
		return ExitUsage
	}
	value := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(value) == "" {
		fmt.Fprintln(rt.stderr, "nothing to add: name is blank")
		return ExitOK
	}
	if err := add(ctx, value); err != nil {
		fmt.Fprintf(rt.stderr, "error: %v\n", err)
		return ExitFailure
	}
	warnIncomplete(rt, rt.srv.Controller().LastRefresh())
	return rt.render()
}

func runAddPlayer(ctx context.Context, rt *runtime, args []string) int {
	fs := subFlags("add-player", rt)
	position := fs.String("pos", "", "player position (default QB)")
	team := fs.String("team", "", "team id to assign the player to")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return ExitUsage
	}
	teamID, err := view.ParseTeamSelection(*team)
	if err != nil {
		fmt.Fprintf(rt.stderr, "error: %v\n", err)
		return ExitUsage
	}

	name := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(rt.stderr, "nothing to add: name is blank")
		return ExitOK
	}
	ctrl := rt.srv.Controller()
	if err := ctrl.AddPlayer(ctx, name, *position, teamID); err != nil {
		fmt.Fprintf(rt.stderr, "error: %v\n", err)
		return ExitFailure
	}
	warnIncomplete(rt, ctrl.LastRefresh())
	return rt.render()
}

func runSimulate(ctx context.Context, rt *runtime, args []string) int {
	fs := subFlags("simulate", rt)
	gameID := fs.Int("game", 1, "game id to simulate")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return ExitUsage
	}

	ctrl := rt.srv.Controller()
	if _, err := ctrl.SimulateGame(ctx, *gameID); err != nil {
		fmt.Fprintf(rt.stderr, "error: %v\n", err)
		if errors.Is(err, state.ErrInvalidGameID) {
			return ExitUsage
		}
		return ExitFailure
	}
	fmt.Fprintf(rt.stdout, "Result: %s\n", ctrl.SimulationDisplay())
	return ExitOK
}

func runWatch(ctx context.Context, rt *runtime, args []string) int {
	if len(args) != 0 {
		fmt.Fprintf(rt.stderr, "usage: gridiron %s\n", usages["watch"])
		return ExitUsage
	}

	var changed atomic.Bool
	cancel := rt.srv.Controller().Subscribe(func(state.Event) { changed.Store(true) })
	defer cancel()

	rt.srv.OnRefresh(func(report state.Report) {
		warnIncomplete(rt, report)
		if changed.Swap(false) {
			rt.render()
		}
	})
	rt.srv.Watch(ctx)
	return ExitOK
}

func (rt *runtime) render() int {
	if err := view.Render(rt.stdout, rt.srv.Controller().Snapshot(), rt.srv.Target().BaseURL); err != nil {
		fmt.Fprintf(rt.stderr, "error: render: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}

// warnIncomplete names the resources that kept stale data. Details go to the reporter.
func warnIncomplete(rt *runtime, report state.Report) {
	failed := report.Failed()
	if len(failed) == 0 {
		return
	}
	names := make([]string, len(failed))
	for i, res := range failed {
		names[i] = string(res)
	}
	fmt.Fprintf(rt.stderr, "warning: refresh incomplete: %s\n", strings.Join(names, ", "))
}
