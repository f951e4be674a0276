package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/urt/internal/config"
)

var configFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "urtconv",
		Short:         "Convert and inspect serialized Double, DoubleOption and ErrorOption documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
	cmd.PersistentFlags().String(config.LogLevel, "info", "log level")

	cmd.AddCommand(newConvertCmd(), newInspectCmd())
	return cmd
}

func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		zap.S().Errorw("command failed", "error", err)
		_ = zap.L().Sync()
		os.Exit(1)
	}
}

// initCommand loads configuration for cmd and installs the global logger.
func initCommand(cmd *cobra.Command) error {
	if err := config.InitConfiguration(cmd, configFile); err != nil {
		return err
	}
	zap.ReplaceGlobals(setupLogger(config.GetLogLevel()))
	return nil
}

func setupLogger(level string) *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		// stdout carries the converted document
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(level)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	plain, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(err)
	}

	return plain
}

// readInput reads the document from path, or from stdin when path is empty.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
