package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	menucmd "github.com/mserradell/clinica_backend/cmd/menu"
	systemcmd "github.com/mserradell/clinica_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "clinica",
	Short: "In-memory registry for a small medical clinic.",
	Long: `Clinica manages patients, doctors, specialties, appointments and
per-patient clinical histories through an interactive text menu.
Everything lives in memory for the duration of the session.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(menucmd.NewMenuCommand())
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
}
