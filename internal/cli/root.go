package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/sonido-ssi/config"
	"github.com/RyanBlaney/sonido-ssi/logging"
	"github.com/RyanBlaney/sonido-ssi/spectrum"
)

const envPrefix = "SONIDO_SSI"

// app carries the state shared by every subcommand of one invocation
type app struct {
	v      *viper.Viper
	file   config.File
	logger logging.Logger

	configFile  string
	domainStart int
	domainEnd   int
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the ssi command tree with its own viper instance
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "ssi",
		Short: "Spectral Similarity Index for light sources",
		Long: `Score how closely a light source's spectrum matches a reference illuminant
using the Spectral Similarity Index procedure (10 nm trapezoidal binning,
unity-sum normalization, relative difference, spectral falloff weighting,
Fourier analysis and frequency weighting).

Spectra are exchanged as JSON records {"start", "end", "data"}. Spectrometer
exports and CSV tables can be converted to records with the convert and
import commands.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "",
		"YAML config file with the reference, weighting tables and index stage")
	root.PersistentFlags().String("log-level", "info",
		"log level (debug, info, warn, error)")
	root.PersistentFlags().StringP("output", "o", config.OutputText,
		"output format (text, json, yaml)")
	root.PersistentFlags().Bool("no-color", false,
		"never color log output")
	root.PersistentFlags().IntVar(&a.domainStart, "start", spectrum.DefaultStart,
		"first wavelength (nm) of imported spectra")
	root.PersistentFlags().IntVar(&a.domainEnd, "end", spectrum.DefaultEnd,
		"last wavelength (nm) of imported spectra")

	root.AddCommand(
		a.newScoreCommand(),
		a.newInfoCommand(),
		a.newConvertCommand(),
		a.newImportCommand(),
		a.newExportCommand(),
		a.newSynthCommand(),
	)
	return root
}

// initialize loads the config file, then layers environment and flags on top
func (a *app) initialize(cmd *cobra.Command) error {
	a.file = config.Default()
	if a.configFile != "" {
		f, err := config.Load(a.configFile)
		if err != nil {
			return err
		}
		a.file = f
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()
	a.v.SetDefault("log-level", a.file.LogLevel)
	a.v.SetDefault("output", a.file.Output)

	if err := bindFlags(cmd, a.v); err != nil {
		return err
	}

	a.file.LogLevel = a.v.GetString("log-level")
	a.file.Output = a.v.GetString("output")
	switch a.file.Output {
	case config.OutputText, config.OutputJSON, config.OutputYAML:
	default:
		return fmt.Errorf("unknown output format %q", a.file.Output)
	}

	level, err := logging.ParseLevel(a.file.LogLevel)
	if err != nil {
		return err
	}
	stderr := cmd.ErrOrStderr()
	logger := logging.NewDefaultLoggerTo(stderr, stderr)
	logger.SetLevel(level)
	logging.SetGlobalLogger(logger)

	// structured output is usually piped; keep escape codes out of it
	if !a.v.GetBool("no-color") && a.file.Output == config.OutputText && logging.IsTerminal(stderr) {
		logging.EnableColors()
	} else {
		logging.DisableColors()
	}

	a.logger = logger.WithFields(logging.Fields{"command": cmd.Name()})
	return nil
}

// bindFlags binds each flag to viper and to its SONIDO_SSI_* variable.
// Flags left unset on the command line take their value from viper.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}
		if err := v.BindEnv(f.Name, envPrefix+"_"+envVarSuffix); err != nil {
			lastErr = err
		}

		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				lastErr = err
			}
		}
	})

	return lastErr
}
