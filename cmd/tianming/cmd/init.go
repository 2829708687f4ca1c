package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tianming/city-selector/internal/config"
)

var initOutputFile string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example birth input file",
	Long: `Write an example birth input file in YAML format.

Edit the generated file with the real birth facts, then run
'tianming chart -i <file>'.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOutputFile, "output", "o", "birth.yaml", "output file")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOutputFile); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", initOutputFile)
	}

	parser := config.NewInputParser()
	example := parser.CreateExampleInput()

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal example input: %w", err)
	}

	header := []byte("# tianming birth input\n# hour_branch is one of 子丑寅卯辰巳午未申酉戌亥; longitude enables\n# the true-solar-time correction and may be omitted.\n")
	if err := os.WriteFile(initOutputFile, append(header, data...), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", initOutputFile, err)
	}

	fmt.Printf("Example input written to %s\n", initOutputFile)
	return nil
}
