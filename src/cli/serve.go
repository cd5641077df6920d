package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/eriklarko/boolean-solver/src/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP front end.",
	Long: `Start an HTTP server answering solver queries, e.g.
GET /?expr=A%C2%B7B&mode=tt for the truth table of A·B.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := loadConfig(cmd)

		address, _ := cmd.Flags().GetString("addr")
		if address == "" {
			address = conf.ListenAddress
		}

		handler := server.NewHandler(conf.MaxVariables)
		slog.Info("starting HTTP front end", "address", address, "max-variables", conf.MaxVariables)
		if err := http.ListenAndServe(address, handler); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address, overrides the config file")
}
