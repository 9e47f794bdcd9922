package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-ssi/logging"
	"github.com/RyanBlaney/sonido-ssi/ssi"
)

type scoreReport struct {
	File      string      `json:"file" yaml:"file"`
	Error     float64     `json:"error" yaml:"error"`
	Index     *float64    `json:"index,omitempty" yaml:"index,omitempty"`
	IndexMode string      `json:"index_mode" yaml:"index_mode"`
	Details   *ssi.Result `json:"details,omitempty" yaml:"details,omitempty"`
}

func (a *app) newScoreCommand() *cobra.Command {
	var (
		indexBase  float64
		indexScale float64
		details    bool
	)

	cmd := &cobra.Command{
		Use:   "score <spectrum.json>...",
		Short: "Compute the SSI error of one or more test spectra",
		Long: `Bin each test spectrum, compare it against the configured reference
illuminant and print the summed frequency-weighted error.

When --index-scale is given the error is also mapped to an index
base - scale*error, clamped to [0, base].

Examples:
  ssi score lamp.json
  ssi score --index-scale 2.5 -o json lamp1.json lamp2.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.file.Resolve()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("index-scale") {
				cfg.Index = ssi.IndexConfig{Mode: "affine", Base: indexBase, Scale: indexScale}
			}

			pipeline, err := ssi.New(cfg, ssi.WithLogger(a.logger))
			if err != nil {
				return err
			}

			reports := make([]scoreReport, 0, len(args))
			for _, path := range args {
				test, err := readSpectrum(path)
				if err != nil {
					return err
				}

				res, err := pipeline.Evaluate(test)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				a.logger.Info("scored spectrum", logging.Fields{"file": path, "error": res.Error})

				report := scoreReport{File: path, Error: res.Error, IndexMode: res.IndexMode}
				if res.HasIndex {
					index := res.Index
					report.Index = &index
				}
				if details {
					report.Details = res
				}
				reports = append(reports, report)
			}

			return a.render(cmd.OutOrStdout(), reports, func(w io.Writer) error {
				for _, r := range reports {
					line := fmt.Sprintf("%s\terror=%.6f", r.File, r.Error)
					if r.Index != nil {
						line += fmt.Sprintf("\tindex=%.2f", *r.Index)
					}
					if _, err := fmt.Fprintln(w, line); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&indexBase, "index-base", 100, "base of the affine index")
	cmd.Flags().Float64Var(&indexScale, "index-scale", 0, "scale of the affine index; enables the index stage")
	cmd.Flags().BoolVar(&details, "details", false, "include every intermediate vector (json/yaml output)")
	return cmd
}
