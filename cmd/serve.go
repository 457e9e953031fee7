package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"invoice-dashboard/config"
	"invoice-dashboard/routes"
	"invoice-dashboard/services"
	"invoice-dashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const (
	jobTimeout      = 2 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	scheduler, err := a.scheduler()
	if err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	gin.SetMode(gin.ReleaseMode)
	auth := utils.NewAuthenticator(cfg.JWTSecret, cfg.JWTExpiry)
	r := routes.SetupRouter(a.handlers(auth), auth, cfg.CORSOrigins, a.logger)
	for _, route := range r.Routes() {
		a.logger.Debug("route", "method", route.Method, "path", route.Path)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// scheduler registers the SMS digest and periodic reseed when configured.
func (a *app) scheduler() (*services.Scheduler, error) {
	s := services.NewScheduler(jobTimeout, a.logger)

	if a.cfg.DigestEnabled() {
		notifier := services.NewTwilioNotifier(a.cfg.TwilioAccountSID, a.cfg.TwilioAuthToken, a.cfg.TwilioFrom)
		digest := services.NewDigestService(a.invoices, notifier, a.cfg.DigestTo, a.logger)
		if err := s.Add("digest", a.cfg.DigestCron, digest.Send); err != nil {
			return nil, fmt.Errorf("schedule digest: %w", err)
		}
	}
	if err := s.Add("reseed", a.cfg.ReseedCron, a.seeder.Run); err != nil {
		return nil, fmt.Errorf("schedule reseed: %w", err)
	}
	return s, nil
}
