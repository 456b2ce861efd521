// Package config binds cobra flags to viper so every setting can come from a
// flag, a RINGKIT_* environment variable or a config file, in that order of
// precedence.
package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"
)

const EnvPrefix = "RINGKIT"

const (
	FlagConfig  = "config"
	FlagVerbose = "verbose"
)

func setupEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// BindFlag binds the flag named name on cmd to the viper key. The key
// "ring.capacity" is read from RINGKIT_RING_CAPACITY.
func BindFlag(cmd *cobra.Command, key, name string) {
	setupEnv()
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(name)
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(xerrors.Errorf("failed to bind flag %s: %w", name, err))
	}
}

// ReadFile loads a YAML, TOML or JSON config file. An empty path is a no-op.
func ReadFile(path string) error {
	if path == "" {
		return nil
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return xerrors.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// NewLogger returns a text logger writing to w, at debug level when verbose
// is set.
func NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool(FlagVerbose) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
