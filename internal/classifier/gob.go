package classifier

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// modelWire is the gob form of Model; the weight matrix travels as its
// binary marshaling since mat.Dense exports no fields.
type modelWire struct {
	Classes   []int
	Weights   []byte
	Bias      []float64
	Converged bool
	Features  int
}

func (m *Model) GobEncode() ([]byte, error) {
	weights, err := m.Weights.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal weights: %w", err)
	}

	var buf bytes.Buffer
	err = gob.NewEncoder(&buf).Encode(modelWire{
		Classes:   m.Classes,
		Weights:   weights,
		Bias:      m.Bias,
		Converged: m.Converged,
		Features:  m.Features,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Model) GobDecode(data []byte) error {
	var wire modelWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&wire); err != nil {
		return err
	}

	var weights mat.Dense
	if err := weights.UnmarshalBinary(wire.Weights); err != nil {
		return fmt.Errorf("unmarshal weights: %w", err)
	}

	m.Classes = wire.Classes
	m.Weights = &weights
	m.Bias = wire.Bias
	m.Converged = wire.Converged
	m.Features = wire.Features
	return nil
}
