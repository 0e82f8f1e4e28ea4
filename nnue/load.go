package nnue

import (
	"encoding/binary"
	"fmt"
	"io"
)

const blobMagic uint32 = 0x53414e54 // "SANT"

// Load parses the little-endian blob format from spec section 6.4:
// [magic:4][version:4][input_dim:4][hidden_dim:4][output_dim:4]
// [iw][ib][ow][ob], validating dimensions against this package's
// compile-time FeatureCount before trusting the rest of the blob.
func Load(r io.Reader) (*Weights, error) {
	var header [5]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("nnue: reading header: %w", err)
	}
	magic, version, inputDim, hiddenDim, outputDim := header[0], header[1], header[2], header[3], header[4]
	if magic != blobMagic {
		return nil, fmt.Errorf("nnue: bad magic %#x", magic)
	}
	if version != 1 {
		return nil, fmt.Errorf("nnue: unsupported version %d", version)
	}
	if int(inputDim) != FeatureCount() {
		return nil, fmt.Errorf("nnue: blob input_dim %d does not match compiled FeatureCount %d", inputDim, FeatureCount())
	}
	if outputDim != 2*hiddenDim {
		return nil, fmt.Errorf("nnue: blob output_dim %d inconsistent with hidden_dim %d", outputDim, hiddenDim)
	}

	w := &Weights{HiddenDim: int(hiddenDim)}

	w.InputWeights = make([][]int16, inputDim)
	for f := range w.InputWeights {
		row := make([]int16, hiddenDim)
		if err := binary.Read(r, binary.LittleEndian, &row); err != nil {
			return nil, fmt.Errorf("nnue: reading input weights row %d: %w", f, err)
		}
		w.InputWeights[f] = row
	}

	w.InputBias = make([]int16, hiddenDim)
	if err := binary.Read(r, binary.LittleEndian, &w.InputBias); err != nil {
		return nil, fmt.Errorf("nnue: reading input bias: %w", err)
	}

	w.OutputWeights = make([]int16, outputDim)
	if err := binary.Read(r, binary.LittleEndian, &w.OutputWeights); err != nil {
		return nil, fmt.Errorf("nnue: reading output weights: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &w.OutputBias); err != nil {
		return nil, fmt.Errorf("nnue: reading output bias: %w", err)
	}

	return w, nil
}
