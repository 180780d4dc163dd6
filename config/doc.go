// Package config is the single option schema of the tfim command.
//
// Every option is declared once in the schema table with its flag name,
// shorthand, default and usage; flags, viper defaults, environment
// variables (TFIM_<NAME>, dashes as underscores) and the YAML config file
// are all derived from it. Precedence: flag > env > file > default.
//
// Validation runs once on the merged Config (go-playground/validator):
//
//   - length: > 0 and a multiple of 3
//   - height: > 0
//   - gamma:  >= 0
//   - time:   1..1800 seconds
//   - gamma-analysis and guidance-config are mutually exclusive
//
// Any failure wraps ErrInvalidConfig; the command aborts before writing.
package config
