package common

// Move packs one full turn into 32 bits. The top two bits are universal:
// bit 31 marks a move that wins the game outright, bit 30 marks a move
// that leaves the opponent in check (a forced mate-in-one threat). The
// remaining 30 bits are god-defined; by convention most gods lay out
// three 5-bit position fields (from, to, build) in the low 15 bits and use
// bits 15-29 for anything extra (a second build square, a push
// destination, a placement flag...).
type Move uint32

const (
	moveWinningBit = 31
	moveCheckBit   = 30

	MoveWinningMask Move = 1 << moveWinningBit
	MoveCheckMask   Move = 1 << moveCheckBit

	positionWidth       = 5
	positionMask        = (1 << positionWidth) - 1
	fromOffset          = 0
	toOffset            = fromOffset + positionWidth
	buildOffset         = toOffset + positionWidth
	// extraOffset begins the god-specific payload area (bits 15-29):
	// a fourth 5-bit position field used by gods that need to record a
	// second square (Demeter's and Morpheus's second build, Prometheus's
	// pre-move build, Selene's vacated-square build, Artemis's and
	// Hippolyta's intermediate step), plus room above it for small flags.
	extraOffset    = buildOffset + positionWidth
	NullMove  Move = 0

	// noSquareField is the in-band sentinel for "no second square",
	// distinct from common.NoSquare (-1) because Move fields are
	// unsigned; 31 never names a real square since NumSquares is 25.
	noSquareField Move = positionMask
)

func NewMove(from, to, build Square) Move {
	return Move(from)<<fromOffset | Move(to)<<toOffset | Move(build)<<buildOffset | noSquareField<<extraOffset
}

func NewWinningMove(from, to Square) Move {
	return Move(from)<<fromOffset | Move(to)<<toOffset | MoveWinningMask | noSquareField<<extraOffset
}

func (m Move) From() Square  { return Square(m >> fromOffset & positionMask) }
func (m Move) To() Square    { return Square(m >> toOffset & positionMask) }
func (m Move) Build() Square { return Square(m >> buildOffset & positionMask) }

// ExtraSquare reads the fourth packed position field, returning NoSquare
// if this move didn't set one.
func (m Move) ExtraSquare() Square {
	v := m >> extraOffset & positionMask
	if v == noSquareField {
		return NoSquare
	}
	return Square(v)
}

func (m Move) WithExtraSquare(s Square) Move {
	cleared := m &^ (positionMask << extraOffset)
	if s == NoSquare {
		return cleared | noSquareField<<extraOffset
	}
	return cleared | Move(s)<<extraOffset
}

// WithDirection packs a small (0-7) compass direction index into the
// payload area above the extra square field, used by Aeolus moves.
func (m Move) WithDirection(dir int) Move {
	const dirOffset = extraOffset + positionWidth
	const dirMask = 0x7
	return m&^(Move(dirMask)<<dirOffset) | Move(dir&dirMask)<<dirOffset
}

func (m Move) Direction() int {
	const dirOffset = extraOffset + positionWidth
	const dirMask = 0x7
	return int(m >> dirOffset & dirMask)
}

func (m Move) IsWinning() bool { return m&MoveWinningMask != 0 }
func (m Move) IsCheck() bool   { return m&MoveCheckMask != 0 }

func (m Move) WithCheck(check bool) Move {
	if check {
		return m | MoveCheckMask
	}
	return m &^ MoveCheckMask
}

// Payload returns the god-defined 30-bit body of the move, stripped of the
// universal winning/check bits, for gods that pack extra fields beyond
// from/to/build into bits 15-29.
func (m Move) Payload() uint32 { return uint32(m &^ (MoveWinningMask | MoveCheckMask)) }

func (m Move) MoveMask() Bitboard {
	return SquareMask(m.From()) ^ SquareMask(m.To())
}

func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	if m.IsWinning() {
		return m.From().String() + ">" + m.To().String() + "#"
	}
	return m.From().String() + ">" + m.To().String() + "^" + m.Build().String()
}

// ScoredMove pairs a move with a move-ordering score, populated when
// FlagIncludeScore is set on generation and otherwise left at zero.
type ScoredMove struct {
	Move  Move
	Score int32
}

const (
	ScoreWinning     int32 = 1 << 30
	ScoreTTMatch     int32 = 1 << 20
	ScoreKillerMatch int32 = 1 << 19
	ScoreChecking    int32 = 1 << 12
	ScoreImproving   int32 = 1 << 6
)

// ActionKind enumerates the atomic, UI-facing steps a move decomposes
// into, used both for the wire protocol's action-script output and for
// step-by-step move animation.
type ActionKind uint8

const (
	ActionSelectWorker ActionKind = iota
	ActionPlaceWorker
	ActionSetFemaleWorker
	ActionMoveWorker
	ActionForceOpponentWorker
	ActionBuild
	ActionDome
	ActionDestroy
	ActionSetTalusPosition
	ActionSetWindDirection
	ActionNoMoves
	ActionEndTurn
)

// Action is one atomic step of a move's action-script expansion. Square
// fields are set to NoSquare when not applicable to Kind.
type Action struct {
	Kind ActionKind
	Sq   Square
	// From is used by ActionForceOpponentWorker (the square being
	// vacated) and mirrors MoveWorker's semantics for opponent workers.
	From Square
	// Dir is used by ActionSetWindDirection; nil means "no wind".
	Dir *int
}

func (k ActionKind) String() string {
	switch k {
	case ActionSelectWorker:
		return "select_worker"
	case ActionPlaceWorker:
		return "place_worker"
	case ActionSetFemaleWorker:
		return "set_female_worker"
	case ActionMoveWorker:
		return "move_worker"
	case ActionForceOpponentWorker:
		return "force_opponent_worker"
	case ActionBuild:
		return "build"
	case ActionDome:
		return "dome"
	case ActionDestroy:
		return "destroy"
	case ActionSetTalusPosition:
		return "set_talus_position"
	case ActionSetWindDirection:
		return "set_wind_direction"
	case ActionNoMoves:
		return "no_moves"
	case ActionEndTurn:
		return "end_turn"
	default:
		return "unknown"
	}
}
