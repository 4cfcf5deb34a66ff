package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/helloapi/pkg/cli/config"
	controller "github.com/m-mizutani/helloapi/pkg/controller/http"
	"github.com/m-mizutani/helloapi/pkg/domain/interfaces"
	"github.com/m-mizutani/helloapi/pkg/domain/model"
	"github.com/m-mizutani/helloapi/pkg/usecase"
	"github.com/m-mizutani/helloapi/pkg/utils/async"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		greetingCfg config.Greeting
		sentryCfg   config.Sentry
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, greetingCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			workflowRoutes, err := serverCfg.Workflow()
			if err != nil {
				return err
			}

			logger.Info("Starting helloapi server",
				slog.String("addr", serverCfg.Addr),
				slog.String("workflow_routes", workflowRoutes.String()),
				slog.Any("sentry", sentryCfg),
			)

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			// Create use cases
			userUC := usecase.NewUserGreeting(greetingCfg.User)
			workflowUC := usecase.NewWorkflowGreeting(greetingCfg.Workflow)

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				controller.WithAddr(serverCfg.Addr),
				controller.WithReadHeaderTimeout(serverCfg.ReadHeaderTimeout),
				controller.WithRegistry(registry),
				controller.WithSentry(sentryCfg.Enabled()),
				controller.WithController(controller.NewUserController(userUC)),
				controller.WithController(workflowController(workflowRoutes, workflowUC)),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			errCh := make(chan error, 1)
			stopped := async.Dispatch(ctx, func(ctx context.Context) error {
				ctxlog.From(ctx).Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
					return goerr.Wrap(err, "HTTP server stopped unexpectedly")
				}
				return nil
			})

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return goerr.Wrap(err, "failed to serve HTTP", goerr.V("addr", serverCfg.Addr))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}
			<-stopped

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// workflowController picks the single workflow definition to mount
func workflowController(routes model.WorkflowRoutes, uc interfaces.GreetingUseCase) *controller.Controller {
	if routes == model.WorkflowRoutesLegacy {
		return controller.NewLegacyWorkflowController(uc)
	}
	return controller.NewWorkflowController(uc)
}
