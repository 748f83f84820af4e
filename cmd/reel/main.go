// Command reel renders declarative component trees from YAML configuration.
//
// It exists to exercise a player skin outside a host application: inspect
// prints the instantiated tree once, watch re-renders it on every config
// change.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-reel/reel/pkg/core"
	_ "github.com/go-reel/reel/pkg/widgets"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reel",
		Short: "Inspect declarative component trees",
		Long: `Reel instantiates a component tree from a YAML configuration file
and renders it as text, so skins and control-bar layouts can be
checked without embedding a player.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		inspectCmd(),
		watchCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the substrate version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(core.Version)
		},
	}
}
