package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/preston-bernstein/gridiron-gm/internal/domain/teams"
	"github.com/preston-bernstein/gridiron-gm/internal/store"
)

// pending is shown for a value that has not loaded yet.
const pending = "..."

// Render writes the API base, service status, collections and last simulation result.
func Render(w io.Writer, snap store.Snapshot, baseURL string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "API\t%s\n", baseURL)
	fmt.Fprintf(tw, "Health\t%s\n", loaded(snap, store.ResourceHealth, snap.Health.Status))
	fmt.Fprintf(tw, "Version\t%s\n", loaded(snap, store.ResourceVersion, snap.Version.Version))

	ownerNames := make(map[int]string, len(snap.Owners))
	fmt.Fprint(tw, "\nOWNERS\nID\tNAME\n")
	for _, o := range snap.Owners {
		ownerNames[o.ID] = o.Name
		fmt.Fprintf(tw, "%d\t%s\n", o.ID, o.Name)
	}

	fmt.Fprint(tw, "\nTEAMS\nID\tNAME\tOWNER\n")
	for _, t := range snap.Teams {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, t.Name, OwnerLabel(t.OwnerID, ownerNames))
	}

	byID := teams.IndexByID(snap.Teams)
	fmt.Fprint(tw, "\nPLAYERS\nID\tNAME\tPOSITION\tTEAM\n")
	for _, p := range snap.Players {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Position, TeamLabel(p.TeamID, byID))
	}

	if snap.Simulation != nil {
		fmt.Fprintf(tw, "\nResult:\t%s\n", snap.Simulation.String())
	}
	return tw.Flush()
}

func loaded(snap store.Snapshot, res store.Resource, value string) string {
	if snap.Statuses[res] != store.StatusPopulated {
		return pending
	}
	return value
}
