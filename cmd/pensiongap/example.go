package main

import (
	"fmt"

	"github.com/rpgo/pension-gap/internal/config"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example scenario file (stdout unless --out is given)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, _ := cmd.Flags().GetString("out")
		parser := config.NewInputParser()
		example := parser.CreateExampleConfiguration()

		if out == "" {
			data, err := parser.MarshalConfiguration(example)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := parser.SaveConfiguration(example, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", out)
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringP("out", "o", "", "destination file (default stdout)")
	rootCmd.AddCommand(exampleCmd)
}
