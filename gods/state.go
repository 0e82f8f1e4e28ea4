package gods

import "github.com/JPricey/santorini-ai/common"

// GameState is a board position together with the god each player is
// playing. It is the top-level value threaded through search, move
// generation, and serialization.
type GameState struct {
	Board common.BoardState
	Gods  [2]*GodPower
}

func NewGameState(p1, p2 GodName) GameState {
	return GameState{
		Board: common.NewBoardState(),
		Gods:  [2]*GodPower{Get(p1), Get(p2)},
	}
}

func (s *GameState) GodFor(player common.Player) *GodPower { return s.Gods[player] }
func (s *GameState) ActiveGod() *GodPower                  { return s.Gods[s.Board.Current] }
func (s *GameState) OtherGod(player common.Player) *GodPower {
	return s.Gods[player.Opponent()]
}

func (s *GameState) Clone() GameState {
	return GameState{Board: s.Board.Clone(), Gods: s.Gods}
}

// GenerateMoves produces the legal scored moves for player, delegating to
// that player's registered god power. key Squares and flags are forwarded
// unchanged; see GeneratorFn.
func (s *GameState) GenerateMoves(player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	return s.GodFor(player).Generate(s, player, keySquares, flags, mustClimb)
}

// MakeMove applies m for player and swaps the side to move.
func (s *GameState) MakeMove(player common.Player, m common.Move) {
	s.GodFor(player).MakeMove(&s.Board, player, m)
	s.Board.SwapToMove(common.Keys)
}

// GetNextStates enumerates every resulting GameState reachable by a
// single legal move of the current player.
func (s *GameState) GetNextStates() []GameState {
	if _, won := s.Board.GetWinner(); won {
		return nil
	}
	player := s.Board.Current
	moves := s.GenerateMoves(player, common.EmptyBoard, 0, false)
	out := make([]GameState, 0, len(moves))
	for _, sm := range moves {
		next := s.Clone()
		next.MakeMove(player, sm.Move)
		out = append(out, next)
	}
	return out
}
