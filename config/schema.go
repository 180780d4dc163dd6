// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tfim/problem"
)

// Option keys, shared by flags, env and the config file.
const (
	KeyStrength       = "J"
	KeyGamma          = "gamma"
	KeyLength         = "length"
	KeyHeight         = "height"
	KeyTime           = "time"
	KeyUseRandom      = "use-random"
	KeySeed           = "seed"
	KeyDebugOutput    = "debug-output"
	KeyWithoutCycle   = "without-cycle"
	KeyGammaAnalysis  = "gamma-analysis"
	KeyGuidanceConfig = "guidance-config"
	KeyOutDir         = "out-dir"
	KeyDB             = "db"
	KeyMetricsFile    = "metrics-file"
	KeyWorkers        = "workers"
	KeyLogLevel       = "log-level"
	KeyConfig         = "config"
)

type option struct {
	key   string
	short string
	def   any
	usage string
}

// schema is the declarative option table. The default's dynamic type
// selects the flag type.
var schema = []option{
	{KeyStrength, "J", 1.0, "in-plane coupling strength J"},
	{KeyGamma, "G", 0.0, "transverse field Γ (0 selects the classical single-layer problem)"},
	{KeyLength, "L", 3, "side length L of the triangular lattice (multiple of 3)"},
	{KeyHeight, "H", 1, "number of Trotter layers H"},
	{KeyTime, "T", problem.DefaultTimeLimitSec, "annealer time limit in seconds (1-1800)"},
	{KeyUseRandom, "u", false, "draw random in-plane couplings in [0,100)"},
	{KeySeed, "", int64(0), "seed for random couplings and guidance (0 picks one and logs it)"},
	{KeyDebugOutput, "d", false, "dump lattice nodes and polynomial terms"},
	{KeyWithoutCycle, "w", false, "drop periodic-boundary bonds"},
	{KeyGammaAnalysis, "g", "", "solution file to run the order-parameter analysis on"},
	{KeyGuidanceConfig, "c", "", "solution file to draw the next guidance configuration from"},
	{KeyOutDir, "o", "./target", "directory for problem, metadata and analysis files"},
	{KeyDB, "", "", "SQLite database archiving analysis runs (empty disables)"},
	{KeyMetricsFile, "", "", "write Prometheus textfile metrics to this path"},
	{KeyWorkers, "", 1, "goroutines generating Hamiltonian terms"},
	{KeyLogLevel, "", "info", "log level: trace, debug, info, warn, error"},
}

// RegisterFlags adds every schema option to fs, plus --config.
func RegisterFlags(fs *pflag.FlagSet) {
	for _, o := range schema {
		switch def := o.def.(type) {
		case float64:
			fs.Float64P(o.key, o.short, def, o.usage)
		case int:
			fs.IntP(o.key, o.short, def, o.usage)
		case int64:
			fs.Int64P(o.key, o.short, def, o.usage)
		case bool:
			fs.BoolP(o.key, o.short, def, o.usage)
		case string:
			fs.StringP(o.key, o.short, def, o.usage)
		default:
			panic(fmt.Sprintf("config: unsupported default type %T for %s", def, o.key))
		}
	}
	fs.String(KeyConfig, "", "YAML config file")
}

// Bind registers schema defaults on v and binds every flag of fs present
// in the schema.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, o := range schema {
		v.SetDefault(o.key, o.def)
		if f := fs.Lookup(o.key); f != nil {
			if err := v.BindPFlag(o.key, f); err != nil {
				return fmt.Errorf("Bind: %s: %w", o.key, err)
			}
		}
	}
	if f := fs.Lookup(KeyConfig); f != nil {
		return v.BindPFlag(KeyConfig, f)
	}

	return nil
}
