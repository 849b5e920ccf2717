package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/depado/hms/cmd"
	"github.com/depado/hms/ui"
	"github.com/depado/hms/utils"
)

// setup parses the configuration and returns the matching logger
func setup() (*cmd.Conf, zerolog.Logger) {
	c, err := cmd.NewConf()
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load conf")
	}
	return c, cmd.NewLogger(c)
}

// Main command that will be run when no other command is provided on the
// command-line
var rootCmd = &cobra.Command{
	Use:           "hms",
	Short:         "Split a number of seconds into hours, minutes and seconds",
	SilenceErrors: true,
	RunE: func(cc *cobra.Command, _ []string) error {
		_, l := setup()
		l.Debug().Str("build", cmd.Build).Str("version", cmd.Version).Msg("starting hms")
		return runSamples(cc.OutOrStdout(), l)
	},
}

// convertClock is bound to the --clock flag of the convert command
var convertClock bool

var convertCmd = &cobra.Command{
	Use:          "convert <seconds>...",
	Short:        "Convert each argument, given in seconds",
	Long:         "Convert each argument, given in seconds. Negative values must follow -- and are rejected.",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cc *cobra.Command, args []string) error {
		_, l := setup()
		return runConvert(cc.OutOrStdout(), l, args, convertClock)
	},
}

// negativeArgError reports "-N" arguments, which the flag parser reads as
// shorthand flags, as invalid input.
func negativeArgError(_ *cobra.Command, err error) error {
	const prefix = "unknown shorthand flag: '"
	msg := err.Error()
	if strings.HasPrefix(msg, prefix) && len(msg) > len(prefix) && msg[len(prefix)] >= '0' && msg[len(prefix)] <= '9' {
		return errors.Wrap(utils.ErrInvalidInput, "negative durations are not supported")
	}
	return err
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Convert durations interactively",
	Run: func(_ *cobra.Command, _ []string) {
		c, l := setup()
		opts := []tea.ProgramOption{}
		if c.UI.AltScreen {
			opts = append(opts, tea.WithAltScreen())
		}
		if _, err := tea.NewProgram(ui.NewBubbleTeaModel(l), opts...).Run(); err != nil {
			l.Fatal().Err(err).Msg("could not run program")
		}
	},
}

// runSamples converts the two sample durations, each with its own output
// format.
func runSamples(w io.Writer, l zerolog.Logger) error {
	first, err := utils.Decompose(3672)
	if err != nil {
		return err
	}
	l.Debug().Int64("seconds", first.Total()).Msg("converted first sample")
	if _, err := fmt.Fprintf(w, "%d hours %d minutes %d seconds\n", first.Hours, first.Minutes, first.Seconds); err != nil {
		return err
	}

	second, err := utils.Decompose(5000)
	if err != nil {
		return err
	}
	l.Debug().Int64("seconds", second.Total()).Msg("converted second sample")
	_, err = fmt.Fprintf(w, "%d hours: %d minutes: %d seconds:\n", second.Hours, second.Minutes, second.Seconds)
	return err
}

// runConvert converts every argument in order and stops at the first one that
// isn't a non-negative integer.
func runConvert(w io.Writer, l zerolog.Logger, args []string, clock bool) error {
	for _, a := range args {
		total, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return errors.Wrapf(utils.ErrInvalidInput, "%q is not a whole number of seconds", a)
		}
		d, err := utils.Decompose(total)
		if err != nil {
			return err
		}
		l.Debug().Int64("seconds", total).Str("clock", d.Clock()).Msg("converted")
		if clock {
			_, err = fmt.Fprintln(w, d.Clock())
		} else {
			_, err = fmt.Fprintf(w, "%d hours %d minutes %d seconds\n", d.Hours, d.Minutes, d.Seconds)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	// Initialize Cobra and Viper
	cmd.AddAllFlags(rootCmd)
	convertCmd.Flags().BoolVar(&convertClock, "clock", false, "print durations as H:MM:SS")
	convertCmd.SetFlagErrorFunc(negativeArgError)
	rootCmd.AddCommand(cmd.VersionCmd, convertCmd, interactiveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("unable to start")
	}
}
