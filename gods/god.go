// Package gods implements the god-power registry: one record per playable
// god, holding function pointers for move generation, move application,
// and action-script expansion, plus the small set of capability flags
// other gods' generators consult when deciding what the *opponent* is
// allowed to do (Athena's climb lockout, Limus's build lockout, and so
// on). Dispatch is by value lookup into a table, never by type switch, so
// adding a god never touches the search or board code.
package gods

import (
	"fmt"
	"strings"

	"github.com/JPricey/santorini-ai/common"
)

// GodName identifies a specific god power. Values are stable and used as
// array indices into the registry, so new gods are always appended.
type GodName uint8

const (
	Mortal GodName = iota
	Apollo
	Minotaur
	Artemis
	Pan
	Hermes
	Prometheus
	Hephaestus
	Atlas
	Demeter
	Athena
	Hypnus
	Limus
	Aphrodite
	Persephone
	Selene
	Hippolyta
	Morpheus
	Aeolus
	numGods
)

var godNames = [numGods]string{
	Mortal:     "mortal",
	Apollo:     "apollo",
	Minotaur:   "minotaur",
	Artemis:    "artemis",
	Pan:        "pan",
	Hermes:     "hermes",
	Prometheus: "prometheus",
	Hephaestus: "hephaestus",
	Atlas:      "atlas",
	Demeter:    "demeter",
	Athena:     "athena",
	Hypnus:     "hypnus",
	Limus:      "limus",
	Aphrodite:  "aphrodite",
	Persephone: "persephone",
	Selene:     "selene",
	Hippolyta:  "hippolyta",
	Morpheus:   "morpheus",
	Aeolus:     "aeolus",
}

func (g GodName) String() string {
	if int(g) >= len(godNames) {
		return "unknown"
	}
	return godNames[g]
}

func ParseGodName(s string) (GodName, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range godNames {
		if name == s {
			return GodName(i), nil
		}
	}
	return Mortal, fmt.Errorf("%w: %q", common.ErrUnknownGod, s)
}

// GeneratorFn is the uniform move-generation signature every god power
// implements: given the position, the player to move, a set of "key"
// squares the caller wants moves to interact with (used when checking
// whether a mate threat can be blocked), the generation flags, and
// whether the acting god is currently forced to climb (Persephone),
// return the legal scored moves.
type GeneratorFn func(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove

// MakeMoveFn applies m to board for player, mutating it in place: moving
// workers, building, doming, and setting the winner bit as appropriate.
type MakeMoveFn func(board *common.BoardState, player common.Player, m common.Move)

// ActionsFn expands m into the atomic action script a client renders,
// per the wire protocol's next_moves.actions field.
type ActionsFn func(m common.Move, board *common.BoardState) []common.Action

// HistoryIndexFn maps a move to a bucket for the search's history table.
type HistoryIndexFn func(m common.Move, board *common.BoardState) int

// BuildMaskFn returns the additional squares the opponent's builds are
// forbidden on given this god's own worker positions (used by Limus).
// The zero value permits everything.
type BuildMaskFn func(ownWorkers common.Bitboard) common.Bitboard

// ClimbHeightFn returns, for a worker about to move from a square of the
// given height, the maximum height it may climb onto (used by Athena to
// forbid climbing once she has climbed herself). The zero value returns
// startHeight+1 unmodified via DefaultClimbHeight.
type ClimbHeightFn func(godData common.GodData, startHeight uint8) uint8

// ActingWorkerFilterFn restricts which of a player's own workers may act
// this turn. No registered god overrides the default, which keeps every
// worker.
type ActingWorkerFilterFn func(state *GameState, player common.Player, workers common.Bitboard) common.Bitboard

// OpponentRestrictionFn lets a god forbid the opponent from acting with
// certain workers on the opponent's own turn, given this god's data and
// the opponent's current worker set (used by Hypnus to lock the
// opponent's tallest unique worker).
type OpponentRestrictionFn func(godData common.GodData, board *common.BoardState, opponentWorkers common.Bitboard) common.Bitboard

// GodDataOnTurnStartFn lets a god adjust its own god-data at the start of
// its turn. No registered god overrides the default, and move generation
// does not call it.
type GodDataOnTurnStartFn func(godData common.GodData) common.GodData

// WindDirectionFn returns the compass direction (an index into
// common.Directions) this god's data currently blocks board-wide, or -1
// if none. Unlike BuildMask/ClimbHeight/RestrictOpponent, which only
// apply to the opponent, wind applies to both players' movement,
// including the wind-setting god's own subsequent moves.
type WindDirectionFn func(godData common.GodData) int

// GodPower is a value record of function pointers, not a type -- the same
// design the reference engine uses so that every god, however different
// its rules, is dispatched through one uniform interface with no runtime
// type assertions anywhere in the search hot path.
type GodPower struct {
	Name GodName

	Generate     GeneratorFn
	MakeMove     MakeMoveFn
	Actions      ActionsFn
	HistoryIndex HistoryIndexFn

	BuildMask            BuildMaskFn
	ClimbHeight          ClimbHeightFn
	ActingWorkerFilter   ActingWorkerFilterFn
	RestrictOpponent     OpponentRestrictionFn
	OnTurnStart          GodDataOnTurnStartFn
	WindDirection        WindDirectionFn
	IsAphrodite         bool
	IsPersephone        bool
	IsHypnus            bool
	IsLimus             bool
	IsAthena            bool
	IsPan               bool
	IsAeolus            bool
	IsWIP               bool
}

// DefaultClimbHeight is the unrestricted climb rule: a worker may climb
// at most one level per move.
func DefaultClimbHeight(_ common.GodData, startHeight uint8) uint8 {
	if startHeight >= 4 {
		return 4
	}
	return startHeight + 1
}

func defaultBuildMask(common.Bitboard) common.Bitboard { return common.EmptyBoard }

func defaultActingWorkerFilter(_ *GameState, _ common.Player, workers common.Bitboard) common.Bitboard {
	return workers
}

func defaultRestrictOpponent(_ common.GodData, _ *common.BoardState, workers common.Bitboard) common.Bitboard {
	return workers
}

func defaultOnTurnStart(d common.GodData) common.GodData { return d }

func defaultWindDirection(common.GodData) int { return -1 }

var registry [numGods]*GodPower

// wipGods lists gods whose implementation is present but not yet
// considered tournament-ready; clients may want to hide them from
// selection menus.
var wipGods = map[GodName]bool{}

func register(power GodPower) {
	if power.BuildMask == nil {
		power.BuildMask = defaultBuildMask
	}
	if power.ClimbHeight == nil {
		power.ClimbHeight = DefaultClimbHeight
	}
	if power.ActingWorkerFilter == nil {
		power.ActingWorkerFilter = defaultActingWorkerFilter
	}
	if power.RestrictOpponent == nil {
		power.RestrictOpponent = defaultRestrictOpponent
	}
	if power.OnTurnStart == nil {
		power.OnTurnStart = defaultOnTurnStart
	}
	if power.WindDirection == nil {
		power.WindDirection = defaultWindDirection
	}
	power.IsWIP = wipGods[power.Name]
	p := power
	registry[power.Name] = &p
}

// Get returns the registered power for name. Every GodName up to numGods
// is guaranteed registered by this package's init.
func Get(name GodName) *GodPower {
	return registry[name]
}

// NumGods returns the number of registered god powers, used by the NNUE
// package to size its per-god feature block.
func NumGods() int { return int(numGods) }

// All returns every registered god power, ordered by GodName.
func All() []*GodPower {
	out := make([]*GodPower, 0, numGods)
	for _, p := range registry {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}
