// Public domain.

// Package snfprog implements the snflog command.
package snfprog

import (
	"io"
	"log/slog"
	"os"

	"github.com/soniakeys/exit"
	"github.com/spf13/cobra"

	"github.com/soniakeys/snflog/internal/config"
)

const versionString = "snflog version 0.3 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		exit.Log(err)
	}
}

// prog is state shared by the subcommands, set up before any of them run.
type prog struct {
	cfgPath string
	cfg     *config.Config
	logger  *slog.Logger
	stderr  io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	p := &prog{stderr: stderr}
	root := &cobra.Command{
		Use:   "snflog",
		Short: "Reconstruct SNIFS runs and exposures from run logs",
		Long: `snflog reads SNIFS run logs and rebuilds the runs and exposures they
record.  It also converts sexagesimal coordinates and UTC timestamps the
way the run log reader does.`,
		Version:           versionString + "\n" + copyrightString,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: p.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&p.cfgPath, "config",
		config.DefaultConfigPath(), "config file path")

	root.AddCommand(p.runsCmd(), radecCmd(), sepCmd(), jdCmd())
	return root
}

// setup loads the configuration and builds the logger.
func (p *prog) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(p.cfgPath)
	if err != nil {
		return err
	}
	p.cfg = cfg
	p.logger, err = newLogger(p.stderr, cfg.Log)
	return err
}

func newLogger(w io.Writer, c config.LogConfig) (*slog.Logger, error) {
	lv, err := c.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lv}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
