package commands

import (
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe topics by their top words",
	Long: `Load the corpus and its cluster labels, optionally reduce the number of
topics, and print every topic with its document count and top words.

Examples:
  topics describe -f experiment.yaml
  topics describe -f experiment.yaml -k 5 -n 8
  topics describe -f experiment.yaml --topic 3 --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		p, err := newPipeline(cmd, cfg, true)
		if err != nil {
			return err
		}
		defer closeQuietly(p)

		_, err = p.Run(cmd.Context())
		return err
	},
}

func init() {
	addRunFlags(describeCmd)
	rootCmd.AddCommand(describeCmd)
}
