package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spf13/viper"
)

// LogConf holds the configuration for the application logger
type LogConf struct {
	Level  string `mapstructure:"level"`
	Type   string `mapstructure:"type"`
	Caller bool   `mapstructure:"caller"`
}

// UIConf holds the configuration of the interactive converter
type UIConf struct {
	AltScreen bool `mapstructure:"altscreen"`
}

// Conf holds the various configuration options for our application
type Conf struct {
	Log LogConf `mapstructure:"log"`
	UI  UIConf  `mapstructure:"ui"`
}

// NewLogger will return a new logger writing to stderr
func NewLogger(c *Conf) zerolog.Logger {
	return newLogger(c, os.Stderr)
}

// newLogger builds the logger from scratch on every call and replaces the
// global one, so repeated calls never stack context fields.
func newLogger(c *Conf, w io.Writer) zerolog.Logger {
	// Level parsing
	warns := []string{}
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || c.Log.Level == "" {
		warns = append(warns, fmt.Sprintf("unrecognized log level '%s', fallback to 'info'", c.Log.Level))
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(lvl)
	}

	// Type parsing
	switch c.Log.Type {
	case "console":
		w = zerolog.ConsoleWriter{Out: w}
	case "json":
		break
	default:
		warns = append(warns, fmt.Sprintf("unrecognized log type '%s', fallback to 'json'", c.Log.Type))
	}

	ctx := zerolog.New(w).With().Timestamp()

	// Caller
	if c.Log.Caller {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	// Log messages with the newly created logger
	for _, msg := range warns {
		log.Warn().Msg(msg)
	}

	return log.Logger
}

// NewConf will parse and return the configuration
func NewConf() (*Conf, error) {
	// Environment variables
	viper.AutomaticEnv()
	viper.SetEnvPrefix("hms")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Configuration file
	if viper.GetString("conf") != "" {
		viper.SetConfigFile(viper.GetString("conf"))
	} else {
		viper.SetConfigName("conf")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/config/")
	}

	viper.ReadInConfig() // nolint: errcheck
	conf := &Conf{}
	if err := viper.Unmarshal(conf); err != nil {
		return conf, fmt.Errorf("unable to unmarshal conf: %w", err)
	}

	return conf, nil
}
