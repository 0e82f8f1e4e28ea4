package nnue

import (
	"github.com/JPricey/santorini-ai/common"
	"github.com/JPricey/santorini-ai/gods"
)

// ActiveFeatures returns every set input feature for perspective's view
// of state: which squares perspective's own/opponent workers occupy,
// which squares are built up to each level, and one scalar feature per
// god currently in play (present iff that god is perspective's own or
// the opponent's, distinguishing the two by an offset).
func ActiveFeatures(state *gods.GameState, perspective common.Player) []int {
	board := &state.Board
	opponent := perspective.Opponent()

	features := make([]int, 0, 8)

	for _, sq := range board.Workers[perspective].Squares() {
		features = append(features, workerFeatureIndex(sq, true))
	}
	for _, sq := range board.Workers[opponent].Squares() {
		features = append(features, workerFeatureIndex(sq, false))
	}

	for sq := common.Square(0); int(sq) < common.NumSquares; sq++ {
		h := board.GetHeight(sq)
		for level := 1; level <= int(h); level++ {
			features = append(features, heightFeatureIndex(sq, level))
		}
	}

	features = append(features, godFeatureIndex(state.GodFor(perspective).Name, true))
	features = append(features, godFeatureIndex(state.GodFor(opponent).Name, false))

	return features
}

func workerFeatureIndex(sq common.Square, own bool) int {
	slot := 0
	if !own {
		slot = 1
	}
	return int(sq)*2 + slot
}

func heightFeatureIndex(sq common.Square, level int) int {
	return squareWorkerFeatures + int(sq)*4 + (level - 1)
}

func godFeatureIndex(name gods.GodName, own bool) int {
	offset := 0
	if !own {
		offset = gods.NumGods()
	}
	return godFeatureOffset() + offset + int(name)
}
