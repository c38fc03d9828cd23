// Package picker chooses which creature to fetch
package picker

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Picker draws a catalog identifier
type Picker interface {
	// Pick returns an identifier in [1, total). total must be at least 2.
	Pick(total uint16) (uint16, error)
}

// DiceConfig configures a dice backed picker
type DiceConfig struct {
	// Roller defaults to dice.DefaultRoller, which reads crypto/rand
	Roller dice.Roller
}

// Dice picks identifiers by rolling a single die with total-1 faces, which
// gives every identifier in [1, total) the same chance.
type Dice struct {
	roller dice.Roller
}

// NewDice creates a dice backed picker
func NewDice(cfg *DiceConfig) *Dice {
	roller := dice.DefaultRoller
	if cfg != nil && cfg.Roller != nil {
		roller = cfg.Roller
	}
	return &Dice{roller: roller}
}

// Pick rolls 1d(total-1)
func (p *Dice) Pick(total uint16) (uint16, error) {
	if total < 2 {
		return 0, fmt.Errorf("picker: total must be at least 2, got %d", total)
	}

	faces := int(total) - 1
	n, err := p.roller.Roll(faces)
	if err != nil {
		return 0, fmt.Errorf("picker: roll 1d%d: %w", faces, err)
	}
	if n < 1 || n > faces {
		return 0, fmt.Errorf("picker: roller returned %d for 1d%d", n, faces)
	}
	return uint16(n), nil
}

// Fixed always picks the same identifier. Used by tests and by --id.
type Fixed uint16

// Pick returns the fixed identifier
func (f Fixed) Pick(total uint16) (uint16, error) {
	if f == 0 || uint16(f) > total {
		return 0, fmt.Errorf("picker: fixed id %d outside [1, %d]", uint16(f), total)
	}
	return uint16(f), nil
}

// Sequence cycles through ids in order. Not safe for concurrent use.
type Sequence struct {
	ids  []uint16
	next int
}

// NewSequence creates a picker that returns ids in order, wrapping around
func NewSequence(ids ...uint16) *Sequence {
	return &Sequence{ids: ids}
}

// Pick returns the next id of the sequence
func (s *Sequence) Pick(total uint16) (uint16, error) {
	if len(s.ids) == 0 {
		return 0, fmt.Errorf("picker: empty sequence")
	}
	id := s.ids[s.next%len(s.ids)]
	s.next++
	if id == 0 || id > total {
		return 0, fmt.Errorf("picker: sequence id %d outside [1, %d]", id, total)
	}
	return id, nil
}
