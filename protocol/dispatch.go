package protocol

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JPricey/santorini-ai/common"
	"github.com/JPricey/santorini-ai/engine"
	"github.com/JPricey/santorini-ai/gods"
)

var errQuit = errors.New("quit")

// dispatch maps a command line to a handler, following the teacher's
// command-dispatch-table pattern: split on the first space, look up the
// verb, hand the remainder to the handler.
func (s *Server) dispatch(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	verb, rest := line, ""
	if idx := strings.IndexByte(line, ' '); idx >= 0 {
		verb, rest = line[:idx], strings.TrimSpace(line[idx+1:])
	}

	switch verb {
	case "set_position":
		return s.handleSetPosition(rest)
	case "next_moves":
		return s.handleNextMoves(rest)
	case "ping":
		s.write(Output{Type: "started"})
		return nil
	case "stop":
		s.controller.Stop()
		return nil
	case "quit":
		return errQuit
	default:
		return fmt.Errorf("%w: %q", common.ErrUnknownCommand, verb)
	}
}

func (s *Server) handleSetPosition(fen string) error {
	state, err := gods.ParseFEN(fen)
	if err != nil {
		return err
	}
	s.current = state

	if won, winner := engine.ValidateTerminalPosition(state); won {
		s.write(Output{
			Type:        "best_move",
			StartState:  gods.EmitFEN(state),
			NextState:   gods.EmitFEN(state),
			Trigger:     engine.TriggerEndOfLine,
			Meta: &Meta{
				Actions:   []ActionJSON{{Type: "no_moves"}},
				ActionStr: "no_moves",
			},
		})
		_ = winner
		return nil
	}

	s.controller.Compute(engine.ComputeRequest{State: state, Duration: 0})
	return nil
}

func (s *Server) handleNextMoves(fen string) error {
	state, err := gods.ParseFEN(fen)
	if err != nil {
		return err
	}

	entries := make([]NextStateEntry, 0)
	player := state.Board.Current
	if _, won := state.Board.GetWinner(); !won {
		moves := state.GenerateMoves(player, common.EmptyBoard, 0, false)
		god := state.GodFor(player)
		for _, sm := range moves {
			next := state.Clone()
			acts := god.Actions(sm.Move, &next.Board)
			next.MakeMove(player, sm.Move)
			entries = append(entries, NextStateEntry{
				NextState: gods.EmitFEN(&next),
				Actions:   toActionJSON(acts),
			})
		}
	}

	s.write(Output{
		Type:       "next_moves",
		StartState: gods.EmitFEN(state),
		NextStates: entries,
	})
	return nil
}

// WithDuration lets a caller (tests, cmd/santorini) issue a bounded
// search instead of the unbounded default set_position uses.
func (s *Server) WithDuration(d time.Duration) {
	if s.current == nil {
		return
	}
	s.controller.Compute(engine.ComputeRequest{State: s.current, Duration: d})
}
