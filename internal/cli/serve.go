package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgetachew/addis-routing/pkg/server/openapi_server"
)

func newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}

			controller, resolver, err := buildEngine(cmd, cfg)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			service := openapi_server.NewRoutesApiService(controller, resolver)
			apiController := openapi_server.NewRoutesApiController(service)
			router := openapi_server.NewRouter(logger, apiController)

			srv := &http.Server{
				Addr:              cfg.Server.Listen,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			// shut down cleanly when the command context is cancelled
			go func() {
				<-cmd.Context().Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(shutdownCtx)
			}()

			logger.Info("listening", "addr", cfg.Server.Listen)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address, overrides the config")
	return cmd
}
