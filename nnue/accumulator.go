package nnue

// FeatureDelta lists the features toggled off and on by one move, in
// perspective-relative feature-index terms (see Weights doc comment).
// The caller (engine/search.go) computes this once per move from the
// before/after board and threads it through Accumulator.Apply / Unapply.
// The search's static evaluation does not read that running
// accumulator: it rebuilds a fresh one from the position's features on
// every call.
type FeatureDelta struct {
	Off []int
	On  []int
}

// Accumulator holds the two perspective vectors (side-to-move,
// opponent), each HiddenDim wide, incrementally maintained as int32 to
// avoid overflow across a long game's worth of additions before the
// clipped-ReLU forward pass narrows back to int16 range.
type Accumulator struct {
	weights *Weights
	STM     []int32
	Other   []int32
}

func NewAccumulator(w *Weights) *Accumulator {
	return &Accumulator{
		weights: w,
		STM:     append([]int32(nil), int32Slice(w.InputBias)...),
		Other:   append([]int32(nil), int32Slice(w.InputBias)...),
	}
}

func int32Slice(in []int16) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}

// Rebuild recomputes both perspective vectors from the given active
// feature sets, from scratch — used for accumulator construction, by
// the search's static evaluation on every evaluated node, and by the
// invariant-6 property test that checks incremental and from-scratch
// evaluation agree exactly.
func (a *Accumulator) Rebuild(stmFeatures, otherFeatures []int) {
	a.STM = a.freshFrom(stmFeatures)
	a.Other = a.freshFrom(otherFeatures)
}

func (a *Accumulator) freshFrom(features []int) []int32 {
	out := int32Slice(a.weights.InputBias)
	for _, f := range features {
		row := a.weights.InputWeights[f]
		for i, w := range row {
			out[i] += int32(w)
		}
	}
	return out
}

// Apply adds delta.On rows and subtracts delta.Off rows from the named
// perspective vector, the incremental-update half of make.
func (a *Accumulator) Apply(perspective *[]int32, delta FeatureDelta) {
	vec := *perspective
	for _, f := range delta.Off {
		row := a.weights.InputWeights[f]
		for i, w := range row {
			vec[i] -= int32(w)
		}
	}
	for _, f := range delta.On {
		row := a.weights.InputWeights[f]
		for i, w := range row {
			vec[i] += int32(w)
		}
	}
}

// Unapply reverses Apply, for unmake: swap On/Off and re-run.
func (a *Accumulator) Unapply(perspective *[]int32, delta FeatureDelta) {
	a.Apply(perspective, FeatureDelta{Off: delta.On, On: delta.Off})
}

// Clone deep-copies both perspective vectors, used when the search
// wants to try a move without committing to its accumulator state
// (mirrors the board's own Clone-before-mutate convention).
func (a *Accumulator) Clone() *Accumulator {
	c := &Accumulator{
		weights: a.weights,
		STM:     append([]int32(nil), a.STM...),
		Other:   append([]int32(nil), a.Other...),
	}
	return c
}
