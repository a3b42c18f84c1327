package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/slovar-dev/slovar/internal/di/providers"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.logger()

			srv, err := do.Invoke[*providers.HTTPServerHandle](a.injector)
			if err != nil {
				return err
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case sig := <-quit:
				log.Info("Shutting down server gracefully...", "signal", sig.String())
			case err, ok := <-srv.Errors():
				if ok && err != nil {
					return err
				}
			case <-cmd.Context().Done():
				log.Info("Shutting down server gracefully...")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&a.flags.Port, "port", "", "listen port (default 8080)")
	f.StringVar(&a.flags.ReadTimeout, "read-timeout", "", "HTTP read timeout (default 15s)")
	f.StringVar(&a.flags.WriteTimeout, "write-timeout", "", "HTTP write timeout (default 15s)")
	f.StringVar(&a.flags.IdleTimeout, "idle-timeout", "", "HTTP idle timeout (default 60s)")
	f.StringVar(&a.flags.RateLimitRPS, "rate-limit", "", "requests per second per client (default 20)")
	f.StringVar(&a.flags.RateBurst, "rate-burst", "", "request burst per client (default 40)")
	f.StringVar(&a.flags.CORSOrigins, "cors-origins", "", "comma-separated allowed origins (default *)")
	f.StringVar(&a.flags.TrustProxy, "trust-proxy", "", "take client IPs from X-Forwarded-For (default false)")
	f.Lookup("trust-proxy").NoOptDefVal = "true"
	return cmd
}
