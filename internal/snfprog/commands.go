// Public domain.

package snfprog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soniakeys/snflog/internal/runlog"
	"github.com/soniakeys/snflog/internal/sky"
)

func (p *prog) runsCmd() *cobra.Command {
	var format string
	var allowUnknown bool
	cmd := &cobra.Command{
		Use:   "runs <logfile>",
		Short: "Reconstruct runs and exposures from a run log (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = p.cfg.Output.Format
			}
			rc := &runlog.Reconstructor{
				AllowUnknownScripts: allowUnknown || p.cfg.Reconstruct.AllowUnknownScripts,
				ScalaExposures:      p.cfg.Reconstruct.ScalaExposures,
				Logger:              p.logger,
			}
			return p.runs(cmd.OutOrStdout(), cmd.InOrStdin(), args[0], rc, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format, summary or yaml (default from config)")
	cmd.Flags().BoolVar(&allowUnknown, "allow-unknown", false, "classify unrecognized scripts as unknown")
	return cmd
}

func (p *prog) runs(w io.Writer, stdin io.Reader, fn string, rc *runlog.Reconstructor, format string) error {
	var in io.Reader = stdin
	if fn != "-" {
		f, err := os.Open(fn)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	l, err := rc.Reconstruct(in)
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	p.logger.Info("reconstructed", "file", fn,
		"runs", len(l.Runs), "exposures", len(l.Exposures),
		"incomplete", len(l.Incomplete))
	switch format {
	case "summary":
		return writeSummary(w, l)
	case "yaml":
		return writeYAML(w, l)
	}
	return fmt.Errorf("output format %q, want summary or yaml", format)
}

func radecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "radec <value> <ra|dec>",
		Short: "Convert a sexagesimal or decimal coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := sky.ParseKind(args[1])
			if err != nil {
				return err
			}
			a, err := sky.Parse(args[0], k)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %.6f  %.2s\n", a, a.Deg(), a.Sexa())
			return nil
		},
	}
}

func sepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sep <ra1> <dec1> <ra2> <dec2>",
		Short: "Angular separation of two positions, in degrees",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var deg [4]float64
			for i, s := range args {
				k := sky.RA
				if i%2 == 1 {
					k = sky.Dec
				}
				a, err := sky.Parse(s, k)
				if err != nil {
					return err
				}
				deg[i] = a.Deg()
			}
			d, err := sky.SeparationDeg(deg[0], deg[1], deg[2], deg[3])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", d)
			return nil
		},
	}
}

func jdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jd <utc time>",
		Short: `Julian date of a "date --utc" or YYYY-MM-DDTHH:MM:SS time`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jd, err := sky.UTCToJD(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", jd)
			return nil
		},
	}
}
