package model

import (
	"fmt"
	"strings"
)

// Mode separates official league play from scrimmages.
type Mode string

const (
	ModeRegulation Mode = "regulation"
	ModeScrim      Mode = "scrim"
)

// scrimPrefix marks a scrim tier label; scrim rows are tagged with the team name.
const scrimPrefix = "team_"

func (m Mode) String() string { return string(m) }

// ClassifyMode returns ModeScrim for tiers starting with "team_" in any ASCII
// case and ModeRegulation for everything else, including the empty tier.
func ClassifyMode(tier string) Mode {
	if len(tier) >= len(scrimPrefix) && strings.EqualFold(tier[:len(scrimPrefix)], scrimPrefix) {
		return ModeScrim
	}
	return ModeRegulation
}

// ParseMode accepts "regulation" or "scrim" (case-insensitive); empty means regulation.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "regulation", "reg":
		return ModeRegulation, nil
	case "scrim", "scrims":
		return ModeScrim, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want regulation or scrim)", s)
	}
}
