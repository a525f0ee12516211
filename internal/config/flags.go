package config

import "github.com/spf13/pflag"

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "", "Output format (table|smt2|yaml|json)")
	fs.Bool("completion", true, "Let the engine complete unconstrained constants")
	fs.Bool("optimize", false, "Use the optimizer (honors minimize/maximize)")
	fs.Bool("translate", false, "Translate the model into a fresh context before reading it")
	fs.String("log-level", "", "Log level (debug|info|warn|error)")
	fs.StringToString("param", nil, "Context parameter key=value (repeatable)")
	fs.StringToString("option", nil, "Solver option key=value (repeatable)")
}
