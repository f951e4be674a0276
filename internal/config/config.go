package config

import (
	"fmt"
	"strings"

	perrors "github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix = "URTCONV"

	Kind     = "kind"
	From     = "from"
	To       = "to"
	In       = "in"
	LogLevel = "log-level"

	defaultLogLevel = "info"
)

var v *viper.Viper

func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv() // read in environment variables that match

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err != nil {
			zap.S().Errorw("failed to read config file", "config file", configFile, "error", err)
			return perrors.WithContext(
				perrors.Wrap(err, perrors.CodeInvalidConfig, "failed to read config file"),
				"file", configFile)
		}
		zap.S().Debugf("using config file: %v", v.ConfigFileUsed())
	}

	// Bind the current command's flags to viper
	bindFlags(cmd, v)

	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		flagName := f.Name
		if strings.Contains(f.Name, "-") {
			// Environment variables can't have dashes in them, so bind them to their equivalent
			// keys with underscores.
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			_ = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", prefix, envVarSuffix))
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		// and the other way around.
		if !f.Changed && v.IsSet(flagName) {
			val := v.Get(flagName)
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		} else if f.Changed && !v.IsSet(flagName) {
			v.Set(flagName, f.Value.String())
		}

		v.SetDefault(flagName, f.DefValue)
	})
}

func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

func GetLogLevel() string {
	if v == nil || !v.IsSet(LogLevel) {
		return defaultLogLevel
	}
	return v.GetString(LogLevel)
}
