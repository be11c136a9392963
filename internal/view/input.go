// Package view parses user selections and renders controller snapshots as text.
package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/gridiron-gm/internal/domain/teams"
)

// ErrInvalidTeamSelection is returned when a team selection is not an integer id.
var ErrInvalidTeamSelection = errors.New("view: team selection must be an integer id")

// NoTeam is shown when a player has no team.
const NoTeam = "-"

// ParseTeamSelection turns a raw selection into an optional team id. Blank means no team.
func ParseTeamSelection(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTeamSelection, raw)
	}
	return &id, nil
}

// TeamLabel names the team a player belongs to. Nil and zero ids mean no team;
// an id missing from byID is shown as the raw id.
func TeamLabel(teamID *int, byID map[int]teams.Team) string {
	if teamID == nil || *teamID == 0 {
		return NoTeam
	}
	if t, ok := byID[*teamID]; ok {
		return t.Name
	}
	return strconv.Itoa(*teamID)
}

// OwnerLabel names a team's owner the same way TeamLabel names a player's team.
func OwnerLabel(ownerID *int, names map[int]string) string {
	if ownerID == nil || *ownerID == 0 {
		return NoTeam
	}
	if name, ok := names[*ownerID]; ok {
		return name
	}
	return strconv.Itoa(*ownerID)
}
