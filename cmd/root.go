// Package cmd implements the joinery command line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/chazu/joinery/pkg/config"
	"github.com/chazu/joinery/pkg/detect"
	"github.com/chazu/joinery/pkg/script"
)

const toolVersion = "1.0.0"

var (
	flagScript  string
	flagConfig  string
	flagOutput  string
	flagFormat  string
	flagStrict  bool
	flagWorkers int
	flagEvents  bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "joinery",
	Short: "Planar joint detection engine",
	Long: `joinery evaluates a Lisp component script, finds every pairwise
intersection between the planar components and classifies the joints
(finger, hole, slot) each intersection implies.

Components are flat polygons with a face normal, placed in 3D by a
translation and per-axis rotations. Two components whose planes cross
inside both outlines form a joint; whether each side is a finger, a
hole or a slot depends on whether its clipped intersection segment runs
along the component's boundary or through its interior.`,
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect and classify joints in a component script",
	Long: `Evaluate a component script and report the classified joints.

Examples:
  joinery detect --script box.lisp
  joinery detect --script box.lisp --format json --output joints.json
  joinery detect --script box.lisp --workers 8 --strict --events`,
	RunE: runDetect,
}

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config",
	Short: "Print an annotated example config file",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.ExampleConfigFile)
	},
}

func init() {
	detectCmd.Flags().StringVarP(&flagScript, "script", "s", "", "Path to the component script (use '-' for stdin)")
	detectCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to an ini config file (see 'joinery example-config')")
	detectCmd.Flags().StringVarP(&flagOutput, "output", "o", "-", "Output file path (use '-' for stdout)")
	detectCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "Report format: text or json")
	detectCmd.Flags().BoolVar(&flagStrict, "strict", false, "Fail the run on the first ill-conditioned pair instead of skipping it")
	detectCmd.Flags().IntVar(&flagWorkers, "workers", 1, "Number of parallel classification workers")
	detectCmd.Flags().BoolVar(&flagEvents, "events", false, "Append the recorded per-pair event log to the report")
	detectCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print pair progress to stderr")
	detectCmd.MarkFlagRequired("script")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(exampleConfigCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges the config file (if any) with the command line.
// Flags the user set explicitly win over file values.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	con := config.Default()
	if flagConfig != "" {
		var err error
		con, err = config.Read(flagConfig)
		if err != nil {
			return con, err
		}
	}
	if cmd.Flags().Changed("strict") {
		con.Detect.Strict = flagStrict
	}
	if cmd.Flags().Changed("workers") {
		con.Detect.Workers = flagWorkers
	}
	if cmd.Flags().Changed("format") {
		con.Output.Format = flagFormat
	}
	if cmd.Flags().Changed("events") {
		con.Output.Events = flagEvents
	}
	return con, nil
}

func readScript(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func runDetect(cmd *cobra.Command, args []string) error {
	con, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	source, err := readScript(flagScript)
	if err != nil {
		return fmt.Errorf("cannot read script %q: %w", flagScript, err)
	}

	fmt.Fprintf(os.Stderr, "joinery v%s\n", toolVersion)

	eng := script.NewEngine()
	set, evalErrs, err := eng.Evaluate(string(source))
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", flagScript, e.Error())
		}
		return fmt.Errorf("script has %d error(s)", len(evalErrs))
	}

	fmt.Fprintf(os.Stderr, "Loaded %d component(s)\n", set.Len())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	det := detect.New(detect.Options{
		Strict:  con.Detect.Strict,
		Workers: con.Detect.Workers,
	})
	res, err := det.Detect(ctx, set)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	if flagVerbose {
		detect.Replay(res.Events, func(e detect.Event) bool {
			if p, ok := e.(detect.PairStarted); ok {
				fmt.Fprintf(os.Stderr, "[%d/%d] pair (%d, %d)\n",
					p.Step, p.TotalSteps, int(p.A), int(p.B))
			}
			return true
		})
	}

	fmt.Fprintf(os.Stderr, "Found %d intersection(s): %d finger(s), %d hole(s), %d slot(s)\n",
		res.Summary.Intersections, res.Summary.Fingers, res.Summary.Holes, res.Summary.Slots)
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	}

	if err := writeReport(res, set, con.Output, flagOutput); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if flagOutput != "-" {
		fmt.Fprintf(os.Stderr, "Report written to: %s\n", flagOutput)
	}
	return nil
}
