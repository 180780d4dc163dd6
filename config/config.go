// SPDX-License-Identifier: MIT
// Package: tfim/config
//
// config.go: loading, validation and saving of Config.
//
// Contract:
//   • Precedence: flag > env (TFIM_*) > file > default.
//   • Every failure wraps ErrInvalidConfig.
//   • Batch-mode fields are never saved.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tfim/coupling"
	"github.com/katalvlaran/tfim/lattice"
	"github.com/katalvlaran/tfim/problem"
)

// ErrInvalidConfig wraps every validation and loading failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes environment overrides: TFIM_LENGTH, TFIM_USE_RANDOM...
const EnvPrefix = "TFIM"

// Config is the merged, validated option set.
type Config struct {
	Strength     float64 `mapstructure:"J" yaml:"J" validate:"gt=0"`
	Gamma        float64 `mapstructure:"gamma" yaml:"gamma" validate:"gte=0"`
	Length       int     `mapstructure:"length" yaml:"length" validate:"gt=0,multiple3"`
	Height       int     `mapstructure:"height" yaml:"height" validate:"gt=0"`
	TimeLimit    int     `mapstructure:"time" yaml:"time" validate:"min=1,max=1800"`
	UseRandom    bool    `mapstructure:"use-random" yaml:"use-random"`
	Seed         int64   `mapstructure:"seed" yaml:"seed"`
	DebugOutput  bool    `mapstructure:"debug-output" yaml:"debug-output"`
	WithoutCycle bool    `mapstructure:"without-cycle" yaml:"without-cycle"`
	OutDir       string  `mapstructure:"out-dir" yaml:"out-dir" validate:"required"`
	DB           string  `mapstructure:"db" yaml:"db,omitempty"`
	MetricsFile  string  `mapstructure:"metrics-file" yaml:"metrics-file,omitempty"`
	Workers      int     `mapstructure:"workers" yaml:"workers" validate:"gte=1"`
	LogLevel     string  `mapstructure:"log-level" yaml:"log-level" validate:"oneof=trace debug info warn error"`

	// Batch modes are per invocation and never saved.
	GammaAnalysis  string `mapstructure:"gamma-analysis" yaml:"-" validate:"excluded_with=GuidanceConfig"`
	GuidanceConfig string `mapstructure:"guidance-config" yaml:"-"`
}

// Defaults returns the schema defaults.
func Defaults() Config {
	v := viper.New()
	for _, o := range schema {
		v.SetDefault(o.key, o.def)
	}
	var c Config
	// Defaults always decode; a failure here is a schema bug.
	if err := v.Unmarshal(&c); err != nil {
		panic(err)
	}

	return c
}

// Load merges the optional config file (key "config"), TFIM_* environment
// variables and whatever is already bound on v, then validates.
//
// Errors: ErrInvalidConfig.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("Load: read %s: %v: %w", path, err, ErrInvalidConfig)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("Load: %v: %w", err, ErrInvalidConfig)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("multiple3", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%lattice.NumSublattices == 0
	})

	return v
}

// Validate checks c against the schema rules.
//
// Errors: ErrInvalidConfig listing every failed field; a transverse field
// LayerStrength cannot map also matches coupling.ErrInvalidGamma.
func (c Config) Validate() error {
	var msgs []string
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("Validate: %v: %w", err, ErrInvalidConfig)
		}
		for _, fe := range fieldErrs {
			msgs = append(msgs, describe(fe))
		}
	}
	// The coupling rules see the raw parameters: NaN or ±Inf Γ has no J_L.
	p := coupling.Params{Strength: c.Strength, Gamma: c.Gamma, Side: c.Length, Height: c.Height}
	physErr := p.Validate()

	switch {
	case physErr != nil && len(msgs) > 0:
		return fmt.Errorf("Validate: %s: %w: %w", strings.Join(msgs, "; "), physErr, ErrInvalidConfig)
	case physErr != nil:
		return fmt.Errorf("Validate: %w: %w", physErr, ErrInvalidConfig)
	case len(msgs) > 0:
		return fmt.Errorf("Validate: %s: %w", strings.Join(msgs, "; "), ErrInvalidConfig)
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "multiple3":
		return fmt.Sprintf("%s=%v must be a multiple of 3", fe.Field(), fe.Value())
	case "excluded_with":
		return "gamma-analysis and guidance-config are mutually exclusive"
	case "oneof":
		return fmt.Sprintf("%s=%v must be one of [%s]", fe.Field(), fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("%s=%v fails %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param())
	}
}

// Params returns the normalized physical parameters: with Γ = 0 or H = 1
// the run collapses to the classical single-layer problem.
func (c Config) Params() coupling.Params {
	return coupling.Normalize(coupling.Params{
		Strength: c.Strength,
		Gamma:    c.Gamma,
		Side:     c.Length,
		Height:   c.Height,
	})
}

// Metadata describes the run for the metadata file. layerStrength is the
// J_L actually written on the lattice.
func (c Config) Metadata(layerStrength float64) problem.Metadata {
	p := c.Params()

	return problem.Metadata{
		Strength:      p.Strength,
		LayerStrength: layerStrength,
		SideLength:    p.Side,
		Height:        p.Height,
		Gamma:         p.Gamma,
		TimeLimitSec:  c.TimeLimit,
	}
}

// Save writes the persistent part of c as YAML.
func Save(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return problem.WriteFileAtomic(path, data)
}
