package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/chazu/joinery/pkg/config"
	"github.com/chazu/joinery/pkg/detect"
	"github.com/chazu/joinery/pkg/model"
)

// writeReport renders the detection result in the configured format to the
// given path, "-" meaning stdout.
func writeReport(res *detect.Result, set *model.Set, out config.OutputConfig, path string) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch out.Format {
	case "json":
		return writeJSON(w, res, set, out.Events)
	case "text", "":
		return writeText(w, res, set, out.Events)
	}
	return fmt.Errorf("unsupported format %q (supported: text, json)", out.Format)
}

type componentReport struct {
	ID      model.ID          `json:"id"`
	Name    string            `json:"name,omitempty"`
	Counts  model.JointCounts `json:"counts"`
	Fingers []model.Joint     `json:"fingers,omitempty"`
	Holes   []model.Joint     `json:"holes,omitempty"`
	Slots   []model.Joint     `json:"slots,omitempty"`
}

type jsonReport struct {
	Summary    detect.Summary    `json:"summary"`
	Components []componentReport `json:"components"`
	Warnings   []detect.Warning  `json:"warnings,omitempty"`
	Events     []string          `json:"events,omitempty"`
}

func writeJSON(w io.Writer, res *detect.Result, set *model.Set, events bool) error {
	rep := jsonReport{
		Summary:  res.Summary,
		Warnings: res.Warnings,
	}
	for _, c := range set.Components {
		rep.Components = append(rep.Components, componentReport{
			ID:      c.ID,
			Name:    c.Name,
			Counts:  c.JointCounts(),
			Fingers: c.Fingers,
			Holes:   c.Holes,
			Slots:   c.Slots,
		})
	}
	if events {
		for _, e := range res.Events {
			rep.Events = append(rep.Events, formatEvent(e))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func writeText(w io.Writer, res *detect.Result, set *model.Set, events bool) error {
	s := res.Summary
	fmt.Fprintf(w, "Components: %d   Pairs: %d   Intersections: %d   Coplanar: %d   Skipped: %d\n\n",
		s.Components, s.Pairs, s.Intersections, s.CoplanarPairs, s.SkippedPairs)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFINGERS\tHOLES\tSLOTS")
	for _, c := range set.Components {
		counts := c.JointCounts()
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\n",
			int(c.ID), c.Name, counts.Fingers, counts.Holes, counts.Slots)
	}
	fmt.Fprintf(tw, "\t\t%d\t%d\t%d\n", s.Fingers, s.Holes, s.Slots)
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, c := range set.Components {
		total := c.JointCounts().Total()
		if total == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s (id %d):\n", displayName(c), int(c.ID))
		for _, j := range c.Fingers {
			fmt.Fprintf(w, "  finger  %s\n", j.Segment)
		}
		for _, j := range c.Holes {
			fmt.Fprintf(w, "  hole    %s\n", j.Segment)
		}
		for _, j := range c.Slots {
			fmt.Fprintf(w, "  slot    %s\n", j.Segment)
		}
	}

	if len(res.Warnings) > 0 {
		fmt.Fprintln(w)
		for _, warn := range res.Warnings {
			fmt.Fprintf(w, "warning: %s\n", warn.Message)
		}
	}

	if events {
		fmt.Fprintf(w, "\nEvents:\n")
		detect.Replay(res.Events, func(e detect.Event) bool {
			fmt.Fprintf(w, "  %s\n", formatEvent(e))
			return true
		})
	}
	return nil
}

func displayName(c *model.Component) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("component %d", int(c.ID))
}

// formatEvent renders one recorded event as a single log line.
func formatEvent(e detect.Event) string {
	switch ev := e.(type) {
	case detect.PairStarted:
		return fmt.Sprintf("[%d/%d] pair (%d, %d)", ev.Step, ev.TotalSteps, int(ev.A), int(ev.B))
	case detect.IntersectionFound:
		return fmt.Sprintf("intersection (%d, %d): point %v dir %v",
			int(ev.A), int(ev.B), ev.Line.Point, ev.Line.Dir)
	case detect.JointClassified:
		return fmt.Sprintf("joint (%d, %d): %d=%s %s, %d=%s %s",
			int(ev.A), int(ev.B),
			int(ev.A), ev.TypeA, ev.SegmentA,
			int(ev.B), ev.TypeB, ev.SegmentB)
	case detect.CoplanarOverlap:
		return fmt.Sprintf("coplanar overlap (%d, %d)", int(ev.A), int(ev.B))
	case detect.PairSkipped:
		return fmt.Sprintf("skipped (%d, %d): %s", int(ev.A), int(ev.B), ev.Reason)
	case detect.Complete:
		return fmt.Sprintf("complete: %d intersections, %d fingers, %d holes, %d slots",
			ev.Summary.Intersections, ev.Summary.Fingers, ev.Summary.Holes, ev.Summary.Slots)
	}
	return fmt.Sprintf("%T", e)
}
