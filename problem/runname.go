// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// RunInfo is what a run name encodes. GammaText and StrengthText keep the
// spelling found in the path so derived file names reuse it verbatim.
type RunInfo struct {
	Gamma        float64
	Strength     float64
	Side         int
	Height       int
	TimeLimitSec int // 0 when the name carries no _Time suffix

	GammaText    string
	StrengthText string
}

// Metadata returns the parameters as a Metadata value without J_L.
func (r RunInfo) Metadata() Metadata {
	return Metadata{
		Strength:     r.Strength,
		SideLength:   r.Side,
		Height:       r.Height,
		Gamma:        r.Gamma,
		TimeLimitSec: r.TimeLimitSec,
	}
}

var runNameRe = regexp.MustCompile(
	`Gamma([^/\\]+)[/\\]Strength([^_/\\]+)_Lattice(\d+)_(\d+)_(\d+)(?:_Time(\d+))?`)

// ParseRunName extracts the run parameters from a path such as
// ./target/Gamma0.0/Strength1.0_Lattice12_12_1_Time10.json.
//
// Errors: ErrBadRunName.
func ParseRunName(path string) (RunInfo, error) {
	m := runNameRe.FindStringSubmatch(path)
	if m == nil {
		return RunInfo{}, fmt.Errorf("%q: %w", path, ErrBadRunName)
	}
	info := RunInfo{GammaText: m[1], StrengthText: m[2]}

	var err error
	if info.Gamma, err = strconv.ParseFloat(m[1], 64); err != nil {
		return RunInfo{}, fmt.Errorf("%q gamma: %w", path, ErrBadRunName)
	}
	if info.Strength, err = strconv.ParseFloat(m[2], 64); err != nil {
		return RunInfo{}, fmt.Errorf("%q strength: %w", path, ErrBadRunName)
	}
	// The regexp guarantees digits; only overflow can fail here.
	info.Side, err = strconv.Atoi(m[3])
	if err == nil {
		info.Height, err = strconv.Atoi(m[5])
	}
	if err == nil && m[6] != "" {
		info.TimeLimitSec, err = strconv.Atoi(m[6])
	}
	if err != nil {
		return RunInfo{}, fmt.Errorf("%q: %v: %w", path, err, ErrBadRunName)
	}

	return info, nil
}

// RunName builds the relative path of a run's files without extension:
// Gamma{Γ}/Strength{J}_Lattice{L}_{L}_{H}_Time{T}.
func RunName(m Metadata) string {
	return filepath.Join(
		"Gamma"+FormatParam(m.Gamma),
		fmt.Sprintf("Strength%s_Lattice%d_%d_%d_Time%d",
			FormatParam(m.Strength), m.SideLength, m.SideLength, m.Height, m.TimeLimitSec),
	)
}

// AnalysisPath is where the order-parameter records of a run are written:
// {dir}/Gamma{Γ}/{J}_{L}_{L}_{H}.txt.
func AnalysisPath(dir string, info RunInfo) string {
	return filepath.Join(dir, "Gamma"+info.GammaText,
		fmt.Sprintf("%s_%d_%d_%d.txt", info.StrengthText, info.Side, info.Side, info.Height))
}

// FormatParam prints a parameter in its shortest decimal form, always with
// a fractional part: 1 → "1.0", 0.25 → "0.25".
func FormatParam(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
