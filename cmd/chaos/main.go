package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kyle-brindley/chaos/internal/config"
	"github.com/kyle-brindley/chaos/internal/dynmap"
	"github.com/kyle-brindley/chaos/internal/plot"
	"github.com/kyle-brindley/chaos/internal/store"
	"github.com/kyle-brindley/chaos/internal/study"
	"github.com/kyle-brindley/chaos/internal/viz"
)

const version = "0.4.0"

var (
	mapName           string
	parameters        []float64
	parameterAranges  []string
	initialStates     []float64
	maxPeriod         int
	maxIteration      int
	relativeTolerance float64
	workers           int
	configFile        string
	preset            string
	inputFile         string
	outputFile        string
	plotCurvesPath    string
	plotBifPath       string
	markerSize        float64
	iterationSamples  int
	// Post-processing flags
	plotOutput string
	// Live view flags
	liveParameter float64
	liveInitial   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "chaos",
		Short:   "calculate and plot trajectories of one-dimensional discrete maps",
		Long:    "Calculate trajectories of the logistic map x_next = r x (1 - x) and its\nsine variant across a parameter grid, classify each parameter by the cycle\nits trajectories settle into, and plot curves and bifurcation diagrams.",
		Version: version,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute a parameter study",
		RunE:  runStudy,
	}
	runCmd.Flags().StringVar(&mapName, "map", "logistic", "map to iterate")
	runCmd.Flags().Float64SliceVar(&parameters, "parameter", nil, "map parameter r (repeatable)")
	runCmd.Flags().StringArrayVar(&parameterAranges, "parameter-arange", nil, "parameter range start,stop,step (repeatable)")
	runCmd.Flags().Float64SliceVar(&initialStates, "initial", []float64{config.DefaultInitialState}, "initial state x_0 (repeatable)")
	runCmd.Flags().IntVarP(&maxPeriod, "max-period", "n", config.DefaultMaxPeriod, "maximum period to search for")
	runCmd.Flags().IntVarP(&maxIteration, "max-iteration", "m", config.DefaultMaxIteration, "maximum number of iterations")
	runCmd.Flags().Float64VarP(&relativeTolerance, "relative-tolerance", "t", config.DefaultRelativeTolerance, "relative tolerance on float equality")
	runCmd.Flags().IntVar(&workers, "workers", 1, "parameters computed in parallel")
	runCmd.Flags().StringVar(&configFile, "config", "", "study config file (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "named preset study")
	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "read a saved study and skip computing")
	runCmd.Flags().StringVarP(&outputFile, "output", "o", "", "save the study to a file")
	runCmd.Flags().StringVar(&plotCurvesPath, "plot-curves", "", "plot curves; use --plot-curves alone for the terminal or =PATH for a PNG")
	runCmd.Flags().StringVar(&plotBifPath, "plot-bifurcation", "", "plot bifurcation; use --plot-bifurcation alone for the terminal or =PATH for a PNG")
	runCmd.Flags().Lookup("plot-curves").NoOptDefVal = "-"
	runCmd.Flags().Lookup("plot-bifurcation").NoOptDefVal = "-"
	runCmd.Flags().Float64Var(&markerSize, "marker-size", 8, "bifurcation marker size")
	runCmd.Flags().IntVar(&iterationSamples, "iteration-samples", 8, "iterations plotted per parameter when no period is found")

	curvesCmd := &cobra.Command{
		Use:   "curves FILE",
		Short: "plot the time-series view of a saved study",
		Args:  cobra.ExactArgs(1),
		RunE:  runCurves,
	}
	curvesCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "write a PNG instead of rendering to the terminal")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation FILE",
		Short: "plot the bifurcation view of a saved study",
		Args:  cobra.ExactArgs(1),
		RunE:  runBifurcation,
	}
	bifurcationCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "write a PNG instead of rendering to the terminal")
	bifurcationCmd.Flags().Float64Var(&markerSize, "marker-size", 8, "bifurcation marker size")
	bifurcationCmd.Flags().IntVar(&iterationSamples, "iteration-samples", 8, "iterations plotted per parameter when no period is found")

	periodsCmd := &cobra.Command{
		Use:   "periods FILE",
		Short: "list the per-parameter periods of a saved study",
		Args:  cobra.ExactArgs(1),
		RunE:  runPeriods,
	}

	exportCmd := &cobra.Command{
		Use:   "export FILE",
		Short: "export a saved study as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "write to a file instead of stdout")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "step one trajectory interactively",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&mapName, "map", "logistic", "map to iterate")
	liveCmd.Flags().Float64Var(&liveParameter, "parameter", 3.5, "map parameter r")
	liveCmd.Flags().Float64Var(&liveInitial, "initial", config.DefaultInitialState, "initial state x_0")
	liveCmd.Flags().IntVarP(&maxPeriod, "max-period", "n", config.DefaultMaxPeriod, "maximum period to search for")
	liveCmd.Flags().Float64VarP(&relativeTolerance, "relative-tolerance", "t", config.DefaultRelativeTolerance, "relative tolerance on float equality")

	mapsCmd := &cobra.Command{
		Use:   "maps",
		Short: "list the available maps and presets",
		RunE:  runMaps,
	}

	rootCmd.AddCommand(runCmd, curvesCmd, bifurcationCmd, periodsCmd, exportCmd, liveCmd, mapsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig resolves the study configuration: preset or config file
// first, then explicit flags override whatever they name.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(mapName, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q for map %q", preset, mapName)
		}
	} else if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("map") {
		cfg.Map = mapName
	}
	if cmd.Flags().Changed("parameter") {
		cfg.Parameters = parameters
	}
	if cmd.Flags().Changed("parameter-arange") {
		cfg.ParameterRanges = cfg.ParameterRanges[:0]
		for _, spec := range parameterAranges {
			r, err := parseRange(spec)
			if err != nil {
				return nil, err
			}
			cfg.ParameterRanges = append(cfg.ParameterRanges, r)
		}
	}
	if cmd.Flags().Changed("initial") {
		cfg.InitialStates = initialStates
	}
	if cmd.Flags().Changed("max-period") {
		cfg.MaxPeriod = maxPeriod
	}
	if cmd.Flags().Changed("max-iteration") {
		cfg.MaxIteration = maxIteration
	}
	if cmd.Flags().Changed("relative-tolerance") {
		cfg.RelativeTolerance = relativeTolerance
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	return cfg, nil
}

func parseRange(spec string) (config.Range, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return config.Range{}, fmt.Errorf("parameter range %q: want start,stop,step", spec)
	}
	var values [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return config.Range{}, fmt.Errorf("parameter range %q: %w", spec, err)
		}
		values[i] = v
	}
	return config.Range{Start: values[0], Stop: values[1], Step: values[2]}, nil
}

func runStudy(cmd *cobra.Command, args []string) error {
	var res *study.Result

	if inputFile != "" {
		loaded, err := store.Load(inputFile)
		if err != nil {
			return err
		}
		res = loaded
	} else {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		grid := cfg.BuildParameters()
		if len(grid) == 0 {
			return fmt.Errorf("no parameters: give --parameter, --parameter-arange, a config file, a preset, or --input")
		}
		res, err = study.Run(cfg.InitialStates, grid, cfg.StudyConfig())
		if err != nil {
			return err
		}
	}

	if outputFile != "" {
		if err := store.Save(outputFile, res); err != nil {
			return err
		}
		fmt.Printf("saved study to %s\n", outputFile)
	}

	opts := plot.Options{MarkerSize: markerSize, IterationSamples: iterationSamples}
	if plotCurvesPath == "-" {
		fmt.Print(plot.CurvesASCII(res, 80, 12))
	} else if plotCurvesPath != "" {
		if err := plot.SaveCurves(plotCurvesPath, res); err != nil {
			return err
		}
		fmt.Printf("saved curves plot to %s\n", plotCurvesPath)
	}
	if plotBifPath == "-" {
		fmt.Print(plot.BifurcationASCII(res, 80, 20, opts))
	} else if plotBifPath != "" {
		if err := plot.SaveBifurcation(plotBifPath, res, opts); err != nil {
			return err
		}
		fmt.Printf("saved bifurcation plot to %s\n", plotBifPath)
	}

	if plotCurvesPath == "" && plotBifPath == "" {
		return plot.WritePeriods(os.Stdout, res)
	}
	return nil
}

func runCurves(cmd *cobra.Command, args []string) error {
	res, err := store.Load(args[0])
	if err != nil {
		return err
	}
	if plotOutput != "" {
		if err := plot.SaveCurves(plotOutput, res); err != nil {
			return err
		}
		fmt.Printf("saved curves plot to %s\n", plotOutput)
		return nil
	}
	fmt.Print(plot.CurvesASCII(res, 80, 12))
	return nil
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	res, err := store.Load(args[0])
	if err != nil {
		return err
	}
	opts := plot.Options{MarkerSize: markerSize, IterationSamples: iterationSamples}
	if plotOutput != "" {
		if err := plot.SaveBifurcation(plotOutput, res, opts); err != nil {
			return err
		}
		fmt.Printf("saved bifurcation plot to %s\n", plotOutput)
		return nil
	}
	fmt.Print(plot.BifurcationASCII(res, 80, 20, opts))
	return nil
}

func runPeriods(cmd *cobra.Command, args []string) error {
	res, err := store.Load(args[0])
	if err != nil {
		return err
	}
	return plot.WritePeriods(os.Stdout, res)
}

func runExport(cmd *cobra.Command, args []string) error {
	res, err := store.Load(args[0])
	if err != nil {
		return err
	}
	out := os.Stdout
	if plotOutput != "" {
		f, err := os.Create(plotOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return store.ExportCSV(out, res)
}

func runLive(cmd *cobra.Command, args []string) error {
	model, err := viz.NewModel(mapName, liveParameter, liveInitial, maxPeriod, relativeTolerance)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runMaps(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "MAP\tPRESETS")
	for _, name := range dynmap.Names() {
		fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(config.ListPresets(name), ", "))
	}
	return w.Flush()
}
