// Package protocol implements the text-in/JSON-out wire protocol from
// spec section 6.2, grounded on the reference engine's pkg/uci
// command-dispatch-table pattern generalized from UCI's command set to
// this engine's five commands.
package protocol

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/JPricey/santorini-ai/engine"
	"github.com/JPricey/santorini-ai/gods"
)

// Output is the line-delimited JSON envelope spec section 6.2 defines;
// fields are omitted when not applicable to Type via omitempty.
type Output struct {
	Type string `json:"type"`

	OriginalStr string         `json:"original_str,omitempty"`
	StartState  string         `json:"start_state,omitempty"`
	NextState   string         `json:"next_state,omitempty"`
	Trigger     engine.Trigger `json:"trigger,omitempty"`
	Meta        *Meta          `json:"meta,omitempty"`

	NextStates []NextStateEntry `json:"next_states,omitempty"`
}

type Meta struct {
	Score           int64           `json:"score"`
	CalculatedDepth int             `json:"calculated_depth"`
	NodesVisited    int64           `json:"nodes_visited"`
	ElapsedSeconds  float64         `json:"elapsed_seconds"`
	Actions         []ActionJSON    `json:"actions"`
	ActionStr       string          `json:"action_str"`
}

type NextStateEntry struct {
	NextState string       `json:"next_state"`
	Actions   []ActionJSON `json:"actions"`
}

// ActionJSON mirrors spec section 6.2's atomic-action vocabulary; Value
// holds whatever shape that action kind needs (a square, a [from,to]
// pair, a direction name, or nothing).
type ActionJSON struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value,omitempty"`
}

// Server reads commands from in, one per line, and writes Output
// records to out, one per line, per spec section 6.2. It accepts input
// while a search is computing, handing Compute/Stop off to a
// engine.Controller that runs its own background worker.
type Server struct {
	controller *engine.Controller
	log        zerolog.Logger
	out        *json.Encoder
	current    *gods.GameState
}

func NewServer(controller *engine.Controller, out io.Writer, log zerolog.Logger) *Server {
	return &Server{controller: controller, log: log, out: json.NewEncoder(out)}
}

// Run is the main command loop; it returns when in is exhausted (quit
// or EOF).
func (s *Server) Run(in io.Reader) error {
	s.write(Output{Type: "started"})

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if err := s.dispatch(line); err != nil {
			if err == errQuit {
				return nil
			}
			s.log.Error().Err(err).Str("line", line).Msg("command error")
		}
	}
	return scanner.Err()
}

func (s *Server) write(o Output) {
	if err := s.out.Encode(o); err != nil {
		s.log.Error().Err(err).Msg("failed to encode output")
	}
}

func (s *Server) Go() {
	go func() {
		for pv := range s.controller.Updates {
			s.emitBestMove(pv)
		}
	}()
}

func (s *Server) emitBestMove(pv engine.PVInfo) {
	if s.current == nil {
		return
	}
	next := s.current.Clone()
	var actions []ActionJSON
	var actionStr string
	if pv.Move != 0 {
		player := s.current.Board.Current
		god := s.current.GodFor(player)
		acts := god.Actions(pv.Move, &next.Board)
		actions = toActionJSON(acts)
		actionStr = actionScriptString(acts)
		next.MakeMove(player, pv.Move)
	}

	reqID := uuid.New().String()
	s.log.Info().Str("request_id", reqID).Str("trigger", string(pv.Trigger)).Int("depth", pv.Depth).Msg("best_move")

	s.write(Output{
		Type:        "best_move",
		OriginalStr: pv.Move.String(),
		StartState:  gods.EmitFEN(s.current),
		NextState:   gods.EmitFEN(&next),
		Trigger:     pv.Trigger,
		Meta: &Meta{
			Score:           int64(pv.Score),
			CalculatedDepth: pv.Depth,
			NodesVisited:    pv.Nodes,
			ElapsedSeconds:  pv.Elapsed.Seconds(),
			Actions:         actions,
			ActionStr:       actionStr,
		},
	})
}
