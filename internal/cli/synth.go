package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-ssi/logging"
	"github.com/RyanBlaney/sonido-ssi/spectrum"
)

// lobe is one Gaussian emission peak
type lobe struct {
	center    float64
	amplitude float64
	sigma     float64
}

// parseLobe reads "center:amplitude:sigma"
func parseLobe(arg string) (lobe, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return lobe{}, fmt.Errorf("lobe %q: want center:amplitude:sigma", arg)
	}

	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return lobe{}, fmt.Errorf("lobe %q: %w", arg, err)
		}
		vals[i] = v
	}
	if vals[2] <= 0 {
		return lobe{}, fmt.Errorf("lobe %q: sigma must be positive", arg)
	}
	return lobe{center: vals[0], amplitude: vals[1], sigma: vals[2]}, nil
}

func (a *app) newSynthCommand() *cobra.Command {
	var (
		lobes     []string
		base      float64
		normalize bool
	)

	cmd := &cobra.Command{
		Use:   "synth <out.json>",
		Short: "Synthesize a spectrum record from Gaussian lobes",
		Long: `Build an idealized spectrum, e.g. a phosphor-converted LED, by adding
Gaussian lobes onto a flat base.

Examples:
  ssi synth --lobe 450:1:10 --lobe 570:0.6:50 led.json
  ssi synth --base 0 --lobe 532:1:1 --normalize laser.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := spectrum.NewWithDomain(a.domainStart, a.domainEnd, base)
			if err != nil {
				return err
			}

			for _, arg := range lobes {
				l, err := parseLobe(arg)
				if err != nil {
					return err
				}
				s.AddGaussian(l.center, l.amplitude, l.sigma)
			}
			if normalize {
				s.Normalize()
			}

			a.logger.Info("synthesized spectrum", logging.Fields{"out": args[0], "lobes": len(lobes), "power": s.Power()})
			return writeFile(args[0], s.Encode)
		},
	}

	cmd.Flags().StringArrayVar(&lobes, "lobe", nil, "Gaussian lobe as center:amplitude:sigma (repeatable)")
	cmd.Flags().Float64Var(&base, "base", 0, "flat power every sample starts from")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "scale so the samples sum to one")
	return cmd
}
