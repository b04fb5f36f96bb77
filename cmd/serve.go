package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjx20/benglish-gemini/config"
	"github.com/zjx20/benglish-gemini/server"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rl, err := newRelay()
		if err != nil {
			return err
		}
		addr := listenAddr
		if addr == "" {
			addr = config.ReadConfig().Listen
		}
		return server.Serve(cmd.Context(), addr, server.NewRouter(rl))
	},
}

func init() {
	serveCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "listen address, overrides the config (default :7458)")
	rootCmd.AddCommand(serveCmd)
}
