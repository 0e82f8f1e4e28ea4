package gods

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JPricey/santorini-ai/common"
)

// windDirNames is the compass-name spelling used by the FEN god-state
// bracket for Aeolus, indexed the same way as common.Directions.
var windDirNames = [8]string{"nw", "n", "ne", "w", "e", "sw", "s", "se"}

func windDirName(dir int) string {
	if dir < 0 || dir >= len(windDirNames) {
		return ""
	}
	return windDirNames[dir]
}

func parseWindDirName(s string) (int, error) {
	for i, name := range windDirNames {
		if name == s {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: unknown wind direction %q", common.ErrInconsistentGod, s)
}

// ParseFEN parses the `<heights>/<side>/<player1>/<player2>` format from
// spec section 6.1 into a full game state.
func ParseFEN(s string) (*GameState, error) {
	fields := strings.SplitN(strings.TrimSpace(s), "/", 4)
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: expected 4 slash-separated fields, got %d", common.ErrMalformedFEN, len(fields))
	}

	heights, err := parseHeights(fields[0])
	if err != nil {
		return nil, err
	}
	current, err := parseSide(fields[1])
	if err != nil {
		return nil, err
	}

	board := common.NewBoardState()
	board.HeightMap = heights
	board.Current = current
	board.RecomputeHeights()

	state := &GameState{Board: board}

	var winner *common.Player
	for i, field := range fields[2:] {
		player := common.Player(i)
		god, godData, workers, won, err := parsePlayerField(field)
		if err != nil {
			return nil, err
		}
		state.Gods[player] = Get(god)
		state.Board.Workers[player] = workers
		state.Board.GodData[player] = godData
		if won {
			p := player
			winner = &p
		}
	}
	if state.Gods[0] == nil || state.Gods[1] == nil {
		return nil, fmt.Errorf("%w: missing god assignment", common.ErrMalformedFEN)
	}
	if occ := state.Board.Workers[0] & state.Board.Workers[1]; occ.NotEmpty() {
		return nil, fmt.Errorf("%w: player worker squares overlap", common.ErrDuplicateWorker)
	}

	state.Board.Key = common.ComputeKey(&state.Board, common.Keys)
	if winner != nil {
		state.Board.SetWinner(*winner, common.Keys)
	}
	return state, nil
}

func parseHeights(field string) ([4]common.Bitboard, error) {
	var out [4]common.Bitboard
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' {
			return -1
		}
		return r
	}, field)
	if len(digits) != common.NumSquares {
		return out, fmt.Errorf("%w: expected %d height digits, got %d", common.ErrMalformedFEN, common.NumSquares, len(digits))
	}
	for i, r := range digits {
		if r < '0' || r > '4' {
			return out, fmt.Errorf("%w: invalid height digit %q", common.ErrMalformedFEN, r)
		}
		h := int(r - '0')
		sq := common.Square(i)
		for l := 0; l < h; l++ {
			out[l] = out[l].Set(sq)
		}
	}
	return out, nil
}

func parseSide(field string) (common.Player, error) {
	switch strings.TrimSpace(field) {
	case "1":
		return common.PlayerOne, nil
	case "2":
		return common.PlayerTwo, nil
	default:
		return 0, fmt.Errorf("%w: side must be 1 or 2, got %q", common.ErrMalformedFEN, field)
	}
}

// parsePlayerField parses `<god>[#][[<state>]]:<squares>`.
func parsePlayerField(field string) (god GodName, data common.GodData, workers common.Bitboard, won bool, err error) {
	colonIdx := strings.IndexByte(field, ':')
	if colonIdx < 0 {
		return 0, 0, 0, false, fmt.Errorf("%w: player field missing ':' separator", common.ErrMalformedFEN)
	}
	head, squaresPart := field[:colonIdx], field[colonIdx+1:]

	var stateStr string
	if bracketIdx := strings.IndexByte(head, '['); bracketIdx >= 0 {
		closeIdx := strings.IndexByte(head, ']')
		if closeIdx < bracketIdx {
			return 0, 0, 0, false, fmt.Errorf("%w: unterminated god-state bracket", common.ErrMalformedFEN)
		}
		stateStr = head[bracketIdx+1 : closeIdx]
		head = head[:bracketIdx] + head[closeIdx+1:]
	}

	won = strings.HasSuffix(head, "#")
	godName := strings.TrimSuffix(head, "#")

	god, err = ParseGodName(godName)
	if err != nil {
		return 0, 0, 0, false, err
	}

	data, err = parseGodState(god, stateStr)
	if err != nil {
		return 0, 0, 0, false, err
	}

	if squaresPart != "" {
		for _, name := range strings.Split(squaresPart, ",") {
			sq, err := common.ParseSquare(strings.TrimSpace(name))
			if err != nil {
				return 0, 0, 0, false, fmt.Errorf("%w: %v", common.ErrSquareRange, err)
			}
			if workers.Has(sq) {
				return 0, 0, 0, false, fmt.Errorf("%w: %s", common.ErrDuplicateWorker, sq)
			}
			workers = workers.Set(sq)
		}
	}
	return god, data, workers, won, nil
}

func parseGodState(god GodName, stateStr string) (common.GodData, error) {
	power := Get(god)
	switch {
	case power.IsAthena:
		if stateStr == "^" {
			return athenaClimbedBit, nil
		}
		return 0, nil
	case god == Morpheus:
		if stateStr == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(stateStr)
		if err != nil || n < 0 || n > 31 {
			return 0, fmt.Errorf("%w: morpheus state %q", common.ErrInconsistentGod, stateStr)
		}
		return common.GodData(n), nil
	case power.IsAeolus:
		if stateStr == "" {
			return 0, nil
		}
		dir, err := parseWindDirName(stateStr)
		if err != nil {
			return 0, err
		}
		return aeolusSetBit | common.GodData(dir), nil
	case god == Selene || god == Hippolyta:
		if stateStr == "" {
			noSquare := common.NoSquare
			return common.GodData(noSquare) & 0x1f, nil
		}
		sq, err := common.ParseSquare(stateStr)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", common.ErrInconsistentGod, err)
		}
		return common.GodData(sq), nil
	default:
		return 0, nil
	}
}

// EmitFEN renders state back to the spec section 6.1 format. Worker
// squares are emitted in ascending order, which is the canonicalization
// FEN round-trip (invariant 10) is defined modulo.
func EmitFEN(state *GameState) string {
	var sb strings.Builder
	for sq := 0; sq < common.NumSquares; sq++ {
		sb.WriteByte(byte('0' + state.Board.GetHeight(common.Square(sq))))
	}
	sb.WriteByte('/')
	sb.WriteString(state.Board.Current.String())

	for player := common.Player(0); player < 2; player++ {
		sb.WriteByte('/')
		god := state.Gods[player]
		sb.WriteString(god.Name.String())
		if w, won := state.Board.GetWinner(); won && w == player {
			sb.WriteByte('#')
		}
		if s := emitGodState(god, state.Board.GodData[player]); s != "" {
			sb.WriteByte('[')
			sb.WriteString(s)
			sb.WriteByte(']')
		}
		sb.WriteByte(':')
		squares := state.Board.Workers[player].Squares()
		for i, sq := range squares {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(sq.String())
		}
	}
	return sb.String()
}

func emitGodState(power *GodPower, data common.GodData) string {
	switch {
	case power.IsAthena:
		if data&athenaClimbedBit != 0 {
			return "^"
		}
		return ""
	case power.Name == Morpheus:
		if data == 0 {
			return ""
		}
		return strconv.Itoa(int(data & 0x1f))
	case power.IsAeolus:
		return windDirName(aeolusWindDirection(data))
	case power.Name == Selene || power.Name == Hippolyta:
		sq := common.Square(data & 0x1f)
		if !sq.Valid() {
			return ""
		}
		return sq.String()
	default:
		return ""
	}
}
