package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/copviz/copviz/pkg/render"
	"github.com/copviz/copviz/pkg/synth"
	"github.com/copviz/copviz/pkg/thermo"
	"github.com/copviz/copviz/pkg/types"
	"github.com/copviz/copviz/pkg/util"
)

type carnotOpts struct {
	hot    []float64
	min    float64
	max    float64
	points int

	out      string
	csvPath  string
	jsonPath string
	cfgPath  string
}

type scatterOpts struct {
	count int
	seed  int64
	floor float64

	out      string
	csvPath  string
	jsonPath string
	cfgPath  string
}

func main() {
	root := &cobra.Command{
		Use:   "copviz",
		Short: "Heat pump COP visualization tool",
		Long: `copviz computes heat pump coefficient-of-performance datasets and
renders them as PNG charts.

Two subcommands:
  carnot   theoretical maximum (Carnot-cycle) heating COP over an ambient
           temperature sweep, one curve per target heating temperature
  scatter  synthetic hourly COP scatter clustered around a reference trend
           line, with the fitted trend overlaid

Examples:
  copviz carnot --hot 35 --hot 65 --min -35 --max 15 --out carnot_cop_plot.png
  copviz scatter --count 1200 --seed 42 --csv points.csv`,
	}

	root.AddCommand(newCarnotCmd(), newScatterCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newCarnotCmd() *cobra.Command {
	var o carnotOpts

	cmd := &cobra.Command{
		Use:   "carnot",
		Short: "Carnot COP vs ambient temperature curves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.cfgPath != "" {
				fc, err := loadConfig(o.cfgPath)
				if err != nil {
					return err
				}
				if len(fc.HotTargets) > 0 && !cmd.Flags().Changed("hot") {
					o.hot = fc.HotTargets
				}
				// an absent ambient_range leaves min == max == 0
				if fc.AmbientRange.Min != fc.AmbientRange.Max {
					if !cmd.Flags().Changed("min") {
						o.min = fc.AmbientRange.Min
					}
					if !cmd.Flags().Changed("max") {
						o.max = fc.AmbientRange.Max
					}
				}
				if fc.AmbientRange.Points > 0 && !cmd.Flags().Changed("points") {
					o.points = fc.AmbientRange.Points
				}
			}
			return runCarnot(o)
		},
	}

	cmd.Flags().Float64SliceVar(&o.hot, "hot", []float64{35, 65}, "target heating temperatures in °C (repeatable)")
	cmd.Flags().Float64Var(&o.min, "min", -35, "ambient sweep minimum in °C")
	cmd.Flags().Float64Var(&o.max, "max", 15, "ambient sweep maximum in °C")
	cmd.Flags().IntVar(&o.points, "points", 100, "number of sweep points")
	cmd.Flags().StringVar(&o.out, "out", "carnot_cop_plot.png", "output chart path (PNG)")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "write the sweep to a CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json", "", "write the sweep to a JSON file")
	cmd.Flags().StringVar(&o.cfgPath, "config", "", "YAML config file")

	return cmd
}

func newScatterCmd() *cobra.Command {
	var o scatterOpts

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Synthetic COP scatter around the reference trend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.cfgPath != "" {
				fc, err := loadConfig(o.cfgPath)
				if err != nil {
					return err
				}
				if fc.SyntheticCount > 0 && !cmd.Flags().Changed("count") {
					o.count = fc.SyntheticCount
				}
				if fc.Seed != nil && !cmd.Flags().Changed("seed") {
					o.seed = *fc.Seed
				}
			}
			return runScatter(o)
		},
	}

	cmd.Flags().IntVar(&o.count, "count", 1200, "number of synthetic points")
	cmd.Flags().Int64Var(&o.seed, "seed", 42, "pseudorandom seed")
	cmd.Flags().Float64Var(&o.floor, "floor", 0.5, "hard lower bound on generated COP")
	cmd.Flags().StringVar(&o.out, "out", "reproduced_cop_plot.png", "output chart path (PNG)")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "write the points to a CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json", "", "write the points to a JSON file")
	cmd.Flags().StringVar(&o.cfgPath, "config", "", "YAML config file")

	return cmd
}

func runCarnot(o carnotOpts) error {
	if len(o.hot) == 0 {
		return fmt.Errorf("at least one --hot target required")
	}
	params := thermo.Params{
		MinC:   types.Celsius(o.min),
		MaxC:   types.Celsius(o.max),
		Points: o.points,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	axis := params.Axis()
	sweeps := make([]thermo.Sweep, len(o.hot))
	for i, h := range o.hot {
		sweeps[i] = thermo.SweepCOP(types.Celsius(h), axis)
	}

	printCarnotSummary(os.Stdout, sweeps)

	if o.csvPath != "" {
		if err := writeCarnotCSV(o.csvPath, axis, sweeps); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeCarnotJSON(o.jsonPath, axis, sweeps); err != nil {
			return fmt.Errorf("json: %w", err)
		}
	}

	series := make([]render.Series, len(sweeps))
	xs := make([]float64, len(axis))
	for i, c := range axis {
		xs[i] = float64(c)
	}
	for i, sw := range sweeps {
		series[i] = render.Series{
			Label: fmt.Sprintf("Target Heating Temp: %v", sw.Hot),
			X:     xs,
			Y:     sw.COP,
		}
	}
	guide := -20.0 // typical cold-climate operation limit
	err := render.Curves(series, render.CurveOptions{
		Title:  "Theoretical Maximum COP (Carnot Efficiency) vs. Ambient Temperature",
		XLabel: "Ambient Temperature (Source, °C)",
		YLabel: "Coefficient of Performance (COP)",
		YMin:   1, YMax: 9,
		GuideX: &guide,
	}, o.out)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Printf("\nchart written to %s\n", o.out)
	return nil
}

// printCarnotSummary reproduces the per-target console summary at the three
// reference ambient temperatures.
func printCarnotSummary(w io.Writer, sweeps []thermo.Sweep) {
	fmt.Fprintln(w, "--- Carnot COP Summary ---")
	for _, sw := range sweeps {
		fmt.Fprintf(w, "Target T_hot: %v (%v)\n", sw.Hot, sw.Hot.Kelvin())
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "AMBIENT")
	for _, sw := range sweeps {
		fmt.Fprintf(tw, "\tCOP @ %v", sw.Hot)
	}
	fmt.Fprintln(tw)

	for _, ambient := range []types.Celsius{-35, 0, 15} {
		fmt.Fprintf(tw, "%v", ambient)
		for _, sw := range sweeps {
			cop := sw.At(ambient)
			if !thermo.Valid(cop) {
				fmt.Fprint(tw, "\tinvalid (T_hot <= T_cold)")
				continue
			}
			fmt.Fprintf(tw, "\t%.2f", cop)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func writeCarnotCSV(path string, axis []types.Celsius, sweeps []thermo.Sweep) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"ambient_c"}
	for _, sw := range sweeps {
		header = append(header, fmt.Sprintf("cop_%g", float64(sw.Hot)))
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, c := range axis {
		rec := []string{util.FmtFloat(float64(c))}
		for _, sw := range sweeps {
			if !thermo.Valid(sw.COP[i]) {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, util.FmtFloat(sw.COP[i]))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

type carnotRow struct {
	AmbientC float64             `json:"ambient_c"`
	COP      map[string]*float64 `json:"cop_by_target"`
}

func writeCarnotJSON(path string, axis []types.Celsius, sweeps []thermo.Sweep) error {
	rows := make([]carnotRow, len(axis))
	for i, c := range axis {
		row := carnotRow{AmbientC: float64(c), COP: make(map[string]*float64, len(sweeps))}
		for _, sw := range sweeps {
			key := fmt.Sprintf("%g", float64(sw.Hot))
			if thermo.Valid(sw.COP[i]) {
				v := sw.COP[i]
				row.COP[key] = &v
			} else {
				// null rather than NaN, which JSON cannot carry
				row.COP[key] = nil
			}
		}
		rows[i] = row
	}
	return writeJSONFile(path, rows)
}

func runScatter(o scatterOpts) error {
	trendX, trendY := synth.DefaultTrend()
	s, err := synth.Generate(trendX, trendY, &synth.Config{
		Count: o.count,
		Seed:  o.seed,
		Floor: o.floor,
	})
	if err != nil {
		return err
	}

	mean, stddev := s.Stats()
	fmt.Println("--- Synthetic COP Scatter ---")
	fmt.Printf("points: %d  seed: %d  floor: %.2f\n", len(s.COP), o.seed, o.floor)
	fmt.Printf("cop mean: %.3f  stddev: %.3f\n", mean, stddev)

	if o.csvPath != "" {
		if err := writeScatterCSV(o.csvPath, s); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeScatterJSON(o.jsonPath, s); err != nil {
			return fmt.Errorf("json: %w", err)
		}
	}

	lo, hi := util.MinMax(trendX)
	smoothX := util.Linspace(lo, hi, 300)
	smoothY := make([]float64, len(smoothX))
	for i, x := range smoothX {
		smoothY[i] = s.Trend.Eval(x)
	}

	err = render.Scatter(
		render.Series{Label: "Hourly Data Points", X: s.Temp, Y: s.COP},
		render.Series{Label: "Average Trend Line", X: smoothX, Y: smoothY},
		render.ScatterOptions{
			Title:  "Average Coefficient of Performance vs. Outside Temperature (Simulated)",
			XLabel: "Average outside temperature (°C)",
			YLabel: "Average Coefficient of Performance",
		}, o.out)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Printf("\nchart written to %s\n", o.out)
	return nil
}

func writeScatterCSV(path string, s synth.Series) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"temperature_c", "cop", "expected_cop"}); err != nil {
		return err
	}
	for i := range s.Temp {
		err := w.Write([]string{
			util.FmtFloat(s.Temp[i]),
			util.FmtFloat(s.COP[i]),
			util.FmtFloat(s.Expected[i]),
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

type scatterRow struct {
	TemperatureC float64 `json:"temperature_c"`
	COP          float64 `json:"cop"`
	ExpectedCOP  float64 `json:"expected_cop"`
}

func writeScatterJSON(path string, s synth.Series) error {
	rows := make([]scatterRow, len(s.Temp))
	for i := range s.Temp {
		rows[i] = scatterRow{
			TemperatureC: s.Temp[i],
			COP:          s.COP[i],
			ExpectedCOP:  s.Expected[i],
		}
	}
	return writeJSONFile(path, rows)
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

func writeJSONFile(path string, v any) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
