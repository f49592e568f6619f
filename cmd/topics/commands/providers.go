package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/topics/internal/source"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered corpus and cluster providers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("corpus:   %s\n", strings.Join(source.CorpusProviders(), ", "))
		fmt.Printf("clusters: %s\n", strings.Join(source.ClusterProviders(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
