package gods

import "github.com/JPricey/santorini-ai/common"

// femaleWorkerSquare returns the worker square Selene/Hippolyta have
// tagged as their "female" worker, falling back to the lower-numbered
// worker when the board has not recorded one (or the recorded square no
// longer holds a worker). It only reads the board; nothing is persisted.
func femaleWorkerSquare(board *common.BoardState, player common.Player) common.Square {
	data := board.GodData[player]
	sq := common.Square(data & 0x1f)
	if sq.Valid() && board.Workers[player].Has(sq) {
		return sq
	}
	squares := board.Workers[player].Squares()
	if len(squares) == 0 {
		return common.NoSquare
	}
	return squares[0]
}

func setFemaleWorkerSquare(board *common.BoardState, player common.Player, sq common.Square) {
	board.SetGodData(player, common.GodData(sq), common.Keys)
}
