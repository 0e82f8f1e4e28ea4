// Package nnue implements the efficiently-updatable neural network
// evaluator: a two-perspective accumulator maintained incrementally
// across make/unmake, and a small clipped-ReLU forward pass over it.
package nnue

import "github.com/JPricey/santorini-ai/gods"

// Quantization constants shared between the trainer (out of scope) and
// this loader; values are fixed here and are not stored in or checked
// against the blob.
const (
	InputScale  = 64
	OutputScale = 16
	ClipMax     = int16(127 * InputScale / OutputScale)
)

// FeatureCount is the size of the sparse input layer: per-square
// per-worker-owner-relative-to-perspective features, per-square
// per-height-level features, and one scalar slot per registered god
// power and perspective marking which god each side plays; god-data
// (Athena's climb flag, Morpheus's counter, and so on) is not encoded.
//
// The exact per-god feature-index formula is provisional: no trainer
// pipeline exists in this repository to check it against bit-exactly
// (see DESIGN.md open question 4). Any blob loaded here must have been
// produced against this same layout.
const (
	squareWorkerFeatures = 25 * 2 // square * worker-slot(own/opponent), perspective-relative
	squareHeightFeatures = 25 * 4 // square * height level (1..4; level 0 has no feature, absence is baseline)
)

func godFeatureOffset() int { return squareWorkerFeatures + squareHeightFeatures }

// FeatureCount is computed, not a literal, since it depends on the
// number of registered gods: one scalar slot per god per perspective
// (own god power, opponent's god power).
func FeatureCount() int { return godFeatureOffset() + 2*gods.NumGods() }

// Weights holds a loaded model: input layer (FeatureCount rows of
// HiddenDim int16 weights each), input bias, and the two-perspective
// output layer.
type Weights struct {
	HiddenDim int

	InputWeights [][]int16 // [feature][hidden]
	InputBias    []int16   // [hidden]

	// OutputWeights is 2*HiddenDim long: side-to-move's half first, then
	// the other perspective's half, matching the concatenated
	// accumulator layout the forward pass consumes.
	OutputWeights []int16
	OutputBias    int32
}
