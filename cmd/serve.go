package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bgraf/tagwerk/cmd/serve"
	"github.com/bgraf/tagwerk/config"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tag hygiene API for the operator dashboard",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "A", "", "Listen address (default :8000)")

	if err := viper.BindPFlag(config.KeyServeAddress, serveCmd.Flags().Lookup("address")); err != nil {
		panic(err)
	}
}
