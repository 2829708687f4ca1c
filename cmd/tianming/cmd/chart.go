package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tianming/city-selector/internal/calculation"
	"github.com/tianming/city-selector/internal/city"
	"github.com/tianming/city-selector/internal/config"
	"github.com/tianming/city-selector/internal/domain"
	"github.com/tianming/city-selector/internal/output"
	"github.com/tianming/city-selector/internal/ziwei"
)

var (
	chartInputFile string
	chartFormat    string
	chartTopCities int
	chartSaveFile  bool
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute the birth chart and city recommendations",
	Long: `Compute the full BaZi chart, the Zi Wei Dou Shu star chart and the
ranked city list from a birth input file.

Create an input file with 'tianming init' first.`,
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVarP(&chartInputFile, "input", "i", "birth.yaml", "birth input file (YAML)")
	chartCmd.Flags().StringVarP(&chartFormat, "format", "f", "console", "output format (console, json)")
	chartCmd.Flags().IntVar(&chartTopCities, "top", 10, "number of cities to show in console output (0 = all)")
	chartCmd.Flags().BoolVar(&chartSaveFile, "save", false, "write the report to a timestamped file instead of stdout")
}

// stderrLogger routes engine debug output to stderr when --verbose is set.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

func runChart(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile(chartInputFile)
	if err != nil {
		return err
	}

	report, err := computeReport(input)
	if err != nil {
		return err
	}

	var formatter output.Formatter
	switch chartFormat {
	case "console":
		formatter = output.ConsoleFormatter{TopCities: chartTopCities}
	case "json":
		formatter = output.JSONFormatter{}
	default:
		if formatter = output.GetFormatterByName(chartFormat); formatter == nil {
			return fmt.Errorf("unknown format %q (want console or json)", chartFormat)
		}
	}

	if chartSaveFile {
		ext := "txt"
		if formatter.Name() == "json" {
			ext = "json"
		}
		filename, err := output.WriteFormatted(formatter, report, ext)
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(report)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// computeReport runs the full pipeline: BaZi chart, Zi Wei chart, the
// career enrichment pass and the city scoring.
func computeReport(input *domain.BirthInput) (*output.Report, error) {
	engine := calculation.NewEngine()
	if viper.GetBool("verbose") {
		engine.SetLogger(stderrLogger{})
	}

	baziChart, err := engine.ComputeChart(*input)
	if err != nil {
		return nil, err
	}

	ziweiChart := ziwei.Compute(baziChart.ChartYear, baziChart.LunarMonth, input.Day, baziChart.AdjustedHourBranch)

	engine.EnrichCareer(baziChart, ziweiChart.CareerPalaceStar())

	cities := city.Recommend(baziChart, ziweiChart)

	return &output.Report{
		Input:  *input,
		Bazi:   baziChart,
		Ziwei:  ziweiChart,
		Cities: cities,
	}, nil
}
