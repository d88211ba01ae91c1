package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/earthmesh/cubedsphere/internal/api"
	"github.com/earthmesh/cubedsphere/internal/config"
	"github.com/earthmesh/cubedsphere/internal/partition"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the introspection HTTP server",
	Long: `Start an HTTP server exposing neighbor and slice queries as JSON,
for tooling that would rather issue requests than link the Go packages
directly. The grid layout comes from --config if given, otherwise from
--layout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		layoutStr, _ := cmd.Flags().GetString("layout")
		configPath, _ := cmd.Flags().GetString("config")

		var layout partition.Layout
		var err error
		if configPath != "" {
			cfg, loadErr := config.Load(configPath)
			if loadErr != nil {
				return loadErr
			}
			layout, err = cfg.Layout()
		} else {
			var rows, cols int
			rows, cols, err = parseLayoutFlag(layoutStr)
			if err == nil {
				layout, err = partition.NewLayout(rows, cols)
			}
		}
		if err != nil {
			return err
		}

		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
		p := partition.NewCubedSpherePartitioner(partition.NewTilePartitioner(layout))
		server := api.NewServer(p, log)
		return server.Start(host + ":" + port)
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "host to bind the server to")
	serveCmd.Flags().String("layout", "3x3", "per-face sub-tile grid, RxC")
	serveCmd.Flags().String("config", "", "path to a YAML grid config file, overriding --layout")
}
