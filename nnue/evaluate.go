package nnue

import "github.com/JPricey/santorini-ai/common"

func clippedReLU(v int32) int32 {
	if v < 0 {
		return 0
	}
	max := int32(ClipMax)
	if v > max {
		return max
	}
	return v
}

// Evaluate runs the forward pass for the side to move: concatenate
// (STM, Other), clipped-ReLU each element, dot with the output weights,
// add the bias, and scale down to a centi-advantage-like integer score,
// positive meaning good for the side to move, per spec section 4.F.
func Evaluate(w *Weights, acc *Accumulator) common.Heuristic {
	var sum int64
	for i, v := range acc.STM {
		sum += int64(clippedReLU(v)) * int64(w.OutputWeights[i])
	}
	base := len(acc.STM)
	for i, v := range acc.Other {
		sum += int64(clippedReLU(v)) * int64(w.OutputWeights[base+i])
	}
	sum += int64(w.OutputBias)
	return common.Heuristic(sum / int64(OutputScale))
}
