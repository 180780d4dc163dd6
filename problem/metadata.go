// SPDX-License-Identifier: MIT

package problem

// Metadata records the physical parameters of the run that produced a
// problem file. Field names are fixed by existing datasets.
type Metadata struct {
	Strength      float64 `json:"Strength"`
	LayerStrength float64 `json:"Layer_strength"`
	SideLength    int     `json:"Side_length"`
	Height        int     `json:"Height"`
	Gamma         float64 `json:"Gamma"`
	TimeLimitSec  int     `json:"Time_limit_sec"`
}

// SameLattice reports whether m and o describe the same physical problem:
// Γ, strength, side length and height compared exactly.
func (m Metadata) SameLattice(o Metadata) bool {
	return m.Gamma == o.Gamma &&
		m.Strength == o.Strength &&
		m.SideLength == o.SideLength &&
		m.Height == o.Height
}

// ReadMetadata loads a metadata file.
func ReadMetadata(path string) (Metadata, error) {
	var m Metadata
	if err := readJSON(path, &m); err != nil {
		return Metadata{}, err
	}

	return m, nil
}

// WriteMetadata stores m as indented JSON.
func WriteMetadata(path string, m Metadata) error {
	return writeJSON(path, m)
}
