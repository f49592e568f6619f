package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/crimson-sun/topics/internal/engine/reporter"
	"github.com/crimson-sun/topics/internal/model"
	"github.com/spf13/cobra"
)

var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Show the number of documents per topic",
	Long: `Print the number of documents grouped under every topic, or under the
topic selected with --topic. The outlier topic is the last id.

Examples:
  topics counts -f experiment.yaml
  topics counts -f experiment.yaml -k 5 --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		p, err := newPipeline(cmd, cfg, false)
		if err != nil {
			return err
		}
		defer closeQuietly(p)

		counts, err := p.Counts(cmd.Context())
		if err != nil {
			return err
		}

		if cfg.Output.Format == "json" {
			enc := json.NewEncoder(os.Stdout)
			if cfg.Output.Pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(counts)
		}
		for _, c := range counts {
			fmt.Println(reporter.Heading(model.TopicReport{ID: c.ID, Outlier: c.Outlier, Documents: c.Count}))
		}
		return nil
	},
}

func init() {
	addRunFlags(countsCmd)
	rootCmd.AddCommand(countsCmd)
}
