package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rates "github.com/malusev998/exchange-rates"
	"github.com/malusev998/exchange-rates/fetchers"
	"github.com/malusev998/exchange-rates/services"
)

const envPrefix = "EXCHANGE_RATES"

type (
	// Config carries the services the commands run against. Nil services are
	// built from flags, environment and the optional config file.
	Config struct {
		Analyzer  rates.Analyzer
		Converter rates.Converter
		Now       func() time.Time

		logger     zerolog.Logger
		debug      bool
		configFile string
	}
)

func (c *Config) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}

	return c.Now()
}

func newLogger(cmd *cobra.Command, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func readConfig(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		return nil
	}

	absolutePath, err := filepath.Abs(configFile)
	if err != nil {
		return err
	}

	if _, err := os.Stat(absolutePath); err != nil {
		return fmt.Errorf("config file %s: %w", configFile, err)
	}

	v.SetConfigFile(absolutePath)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error while reading in the config file: %w", err)
	}

	return nil
}

func (c *Config) initialize(cmd *cobra.Command, v *viper.Viper) error {
	c.logger = newLogger(cmd, c.debug)

	if err := readConfig(v, c.configFile); err != nil {
		return err
	}

	if c.Analyzer != nil && c.Converter != nil {
		return nil
	}

	fetcher := fetchers.NewPrivatBankFetcher(fetchers.Config{
		URL:     v.GetString("api.url"),
		Timeout: v.GetDuration("http.timeout"),
		Logger:  c.logger,
	})

	if c.Analyzer == nil {
		c.Analyzer = services.AnalyzerService{Fetcher: fetcher, Now: c.Now, Logger: c.logger}
	}

	if c.Converter == nil {
		c.Converter = services.ConversionService{Fetcher: fetcher, Logger: c.logger}
	}

	c.logger.Debug().
		Str("url", v.GetString("api.url")).
		Dur("timeout", v.GetDuration("http.timeout")).
		Msg("exchange rate services configured")

	return nil
}

func NewRootCommand(config *Config) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "exchange-rates",
		Short:         "PrivatBank daily exchange rates for the last days",
		Version:       "v1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.initialize(cmd, v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&config.debug, "debug", false, "Debug flag")
	flags.StringVar(&config.configFile, "config", "", "Path to config file")
	flags.String("api-url", fetchers.PrivatBankURL, "Base URL of the bank API")
	flags.Duration("timeout", fetchers.DefaultRequestTimeout, "Timeout of a single HTTP request")

	_ = v.BindPFlag("api.url", flags.Lookup("api-url"))
	_ = v.BindPFlag("http.timeout", flags.Lookup("timeout"))

	rootCmd.AddCommand(ratesCommand(config, v), convertCommand(config))
	config.logger = newLogger(rootCmd, false)

	return rootCmd
}

// Execute runs the root command and logs the error it fails with.
func Execute(ctx context.Context, config *Config) error {
	err := NewRootCommand(config).ExecuteContext(ctx)
	if err != nil {
		config.logger.Error().Err(err).Msg("command failed")
	}

	return err
}
