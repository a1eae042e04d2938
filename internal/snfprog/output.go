// Public domain.

package snfprog

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/soniakeys/snflog/internal/runlog"
)

func writeSummary(w io.Writer, l *runlog.Log) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintln(tw, "Run\tScript\tType\tKind\tTarget\tStart\tExp")
	for _, r := range l.Runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d/%d\n",
			r.ID(), r.Script, r.Type, r.Kind, r.Target,
			r.Time().Format("2006-01-02 15:04:05"), len(r.Exp), r.NbExp)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s runs, %s exposures, %s incomplete\n",
		humanize.Comma(int64(len(l.Runs))),
		humanize.Comma(int64(len(l.Exposures))),
		humanize.Comma(int64(len(l.Incomplete))))
	return err
}

type logDoc struct {
	Runs       []runDoc            `yaml:"runs"`
	Incomplete []runlog.Incomplete `yaml:"incomplete,omitempty"`
}

type runDoc struct {
	ID        string   `yaml:"id"`
	Script    string   `yaml:"script"`
	Option    string   `yaml:"option,omitempty"`
	Type      string   `yaml:"type"`
	Kind      string   `yaml:"kind"`
	Target    string   `yaml:"target"`
	JD        float64  `yaml:"jd"`
	Start     string   `yaml:"start"`
	Expected  int      `yaml:"expected"`
	Quality   string   `yaml:"quality"`
	Exposures []expDoc `yaml:"exposures"`
}

type expDoc struct {
	ID      string  `yaml:"id"`
	Event   int     `yaml:"event"`
	Channel string  `yaml:"channel"`
	Fclass  int     `yaml:"fclass,omitempty"`
	JD      float64 `yaml:"jd"`
}

func writeYAML(w io.Writer, l *runlog.Log) error {
	doc := logDoc{Incomplete: l.Incomplete}
	for _, r := range l.Runs {
		rd := runDoc{
			ID:       r.ID(),
			Script:   r.Script,
			Option:   r.Option,
			Type:     r.Type,
			Kind:     r.Kind,
			Target:   r.Target,
			JD:       r.Date,
			Start:    r.Time().Format(time.RFC3339),
			Expected: r.NbExp,
			Quality:  r.Quality.String(),
		}
		for _, e := range r.Exp {
			rd.Exposures = append(rd.Exposures, expDoc{
				ID:      e.ID(),
				Event:   e.Event,
				Channel: e.Channel.String(),
				Fclass:  int(e.Fclass),
				JD:      e.Date,
			})
		}
		doc.Runs = append(doc.Runs, rd)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
