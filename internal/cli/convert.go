package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-ssi/algorithms/common"
	"github.com/RyanBlaney/sonido-ssi/interchange"
	"github.com/RyanBlaney/sonido-ssi/logging"
	"github.com/RyanBlaney/sonido-ssi/spectrum"
)

func (a *app) newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <spectrum.json>",
		Short: "Print summary statistics of a spectrum record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSpectrum(args[0])
			if err != nil {
				return err
			}

			st := s.Stats()
			return a.render(cmd.OutOrStdout(), st, func(w io.Writer) error {
				_, err := fmt.Fprintf(w,
					"domain\t%d-%d nm\npower\t%.6f\npeak\t%.6f at %d nm\ncentroid\t%.1f nm\nmean\t%.6f\nstd\t%.6f\n",
					s.Start(), s.End(), st.Power, st.Peak, st.PeakWavelength, st.Centroid, st.Mean, st.StdDev)
				return err
			})
		},
	}
}

func (a *app) newConvertCommand() *cobra.Command {
	var peak bool

	cmd := &cobra.Command{
		Use:   "convert <asensetek.json> <out.csv>",
		Short: "Convert an Asensetek spectrometer export to a CSV table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()

			s, err := interchange.ParseAsensetek(fh, a.domainStart, a.domainEnd)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if peak {
				if s, err = peakNormalized(s); err != nil {
					return err
				}
			}

			a.logger.Info("converted export", logging.Fields{"in": args[0], "out": args[1], "samples": s.Len()})
			return writeFile(args[1], func(w io.Writer) error {
				return interchange.WriteCSV(w, s)
			})
		},
	}

	cmd.Flags().BoolVar(&peak, "peak-normalize", false, "scale so the highest sample is 1")
	return cmd
}

func (a *app) newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <in.csv> <out.json>",
		Short: "Read a CSV table into a spectrum record, interpolating missing wavelengths",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()

			s, err := interchange.ReadCSV(fh, a.domainStart, a.domainEnd)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			a.logger.Info("imported table", logging.Fields{"in": args[0], "out": args[1]})
			return writeFile(args[1], s.Encode)
		},
	}
}

func (a *app) newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <spectrum.json> <out.csv>",
		Short: "Write a spectrum record as a CSV table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSpectrum(args[0])
			if err != nil {
				return err
			}
			return writeFile(args[1], func(w io.Writer) error {
				return interchange.WriteCSV(w, s)
			})
		},
	}
}

func peakNormalized(s *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	data, err := common.NewNormalizer(common.Peak).Normalize(s.Data())
	if err != nil {
		return nil, fmt.Errorf("peak normalize: %w", err)
	}
	return spectrum.FromData(s.Start(), s.End(), data)
}
