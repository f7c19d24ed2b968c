package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// nowFunc is the only clock the program reads.
var nowFunc = time.Now

var rootCmd = &cobra.Command{
	Use:   "pensiongap",
	Short: "Pension gap calculator",
	Long: `pensiongap projects the German statutory pension and a private savings plan
to retirement and computes the monthly saving needed to reach a target net income.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
