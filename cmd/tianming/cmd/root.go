// Package cmd contains all CLI commands for the tianming tool.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tianming",
	Short: "BaZi and Zi Wei Dou Shu birth-chart city selector",
	Long: `tianming computes a full Chinese birth chart from a birth date, hour
branch and gender, then scores 24 Chinese cities against it.

The pipeline derives:
  - Four Pillars (BaZi): stems, branches, hidden stems, ten gods, nayin
  - Element statistics, day-master strength and the favorable element
  - Pattern (GeJu), special stars (ShenSha) and major luck cycles (DaYun)
  - The Zi Wei Dou Shu star chart with palaces and four transformations
  - A career synthesis and a ranked city recommendation list

Dates are mapped onto the solar-term month grid and the hour branch can be
corrected for true solar time from the birth longitude.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("TIANMING")
	viper.AutomaticEnv()
}
