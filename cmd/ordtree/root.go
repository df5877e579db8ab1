package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "ORDTREE"
	// The configuration key for config file name.
	keyConfig = "config"

	flagNameLogLevel  = "log-level"
	flagNameLogFormat = "log-format"
)

type baseConfiguration struct {
	// Configuration file. Flags not given on the command line are read from it.
	CfgFile   string
	LogLevel  string
	LogFormat string

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	config := &baseConfiguration{log: zerolog.Nop()}
	rootCmd := &cobra.Command{
		Use:           "ordtree",
		Short:         "Exercise AVL-backed ordered containers",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd, config); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, keyConfig, "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, flagNameLogLevel, "info", "logging level, one of: trace, debug, info, warn, error, disabled")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, flagNameLogFormat, "console", "log format, one of: console, json")

	rootCmd.AddCommand(newRunCmd(config))
	rootCmd.AddCommand(newBenchCmd(config))
	return rootCmd
}

func initializeConfig(cmd *cobra.Command, config *baseConfiguration) error {
	var errs []error
	if err := config.initializeConfig(cmd); err != nil {
		errs = append(errs, fmt.Errorf("reading configuration: %w", err))
	}
	if err := config.initLogger(cmd.ErrOrStderr()); err != nil {
		errs = append(errs, fmt.Errorf("initializing logger: %w", err))
	}
	return errors.Join(errs...)
}

// initializeConfig reads in config file and ENV variables if set.
func (config *baseConfiguration) initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	if config.CfgFile != "" {
		if _, err := os.Stat(config.CfgFile); err != nil {
			return err
		}
		v.SetConfigFile(config.CfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	// Flags bind to environment variables with the prefix,
	// e.g. --log-level binds to ORDTREE_LOG_LEVEL.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == keyConfig {
			return
		}

		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores.
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("binding env to flag %q: %w", f.Name, err))
				return
			}
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("setting flag %q value: %w", f.Name, err))
				return
			}
		}
	})
	return errors.Join(bindFlagErr...)
}

func (config *baseConfiguration) initLogger(w io.Writer) error {
	level, err := zerolog.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		return err
	}
	switch config.LogFormat {
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000000"}
	case "json":
	default:
		return fmt.Errorf("unknown log format %q", config.LogFormat)
	}
	config.log = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return nil
}
