package flag

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// EnvName converts a flag name to the corresponding environment variable
// name e.g. bar-width => BAR_WIDTH (or PREFIX_BAR_WIDTH with a prefix).
func EnvName(prefix string, name string) string {
	if prefix != "" {
		name = prefix + "-" + name
	}
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// StringVarEnv registers a string flag whose default can be overridden by
// an environment variable.
func StringVarEnv(fs *pflag.FlagSet, p *string, prefix string, name string, value string, usage string) {
	if v, ok := os.LookupEnv(EnvName(prefix, name)); ok {
		value = v
	}
	fs.StringVar(p, name, value, usage)
}

// Int64VarEnv registers an int64 flag whose default can be overridden by
// an environment variable.
func Int64VarEnv(fs *pflag.FlagSet, p *int64, prefix string, name string, value int64, usage string) {
	if v, ok := os.LookupEnv(EnvName(prefix, name)); ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			value = parsed
		}
	}
	fs.Int64Var(p, name, value, usage)
}

// BoolVarEnv registers a bool flag whose default can be overridden by an
// environment variable.
func BoolVarEnv(fs *pflag.FlagSet, p *bool, prefix string, name string, value bool, usage string) {
	if v, ok := os.LookupEnv(EnvName(prefix, name)); ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			value = parsed
		}
	}
	fs.BoolVar(p, name, value, usage)
}

// Parse parses any flags registered on the default flag set. Flags attached
// to a cobra command are parsed by cobra instead, so unknown flags are not
// an error here.
func Parse() {
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	if !pflag.Parsed() {
		pflag.Parse()
	}
}
