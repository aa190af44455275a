// Package cliutil binds cobra flags, environment variables and config files
// into viper for the anagram binaries.
package cliutil

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the binaries read.
const EnvPrefix = "ANAGRAM"

// InitViper makes viper read, in order of precedence, flags, ANAGRAM_*
// environment variables, and config.yaml from /etc/anagram, $HOME/.anagram
// or the working directory.
func InitViper() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/anagram", "$HOME/.anagram", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}
}

// MustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func MustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

func MustBindEnv(input ...string) {
	if err := viper.BindEnv(input...); err != nil {
		panic("failed to bind env key: " + err.Error())
	}
}

// EnvName returns the environment variable bound to a dotted config key,
// e.g. "lookup.cacheSize" becomes ANAGRAM_LOOKUP_CACHESIZE.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// BindFlag binds flag to key and to key's environment variable.
func BindFlag(flags *pflag.FlagSet, flag, key string) {
	MustBindPFlag(key, flags.Lookup(flag))
	MustBindEnv(key, EnvName(key))
}
