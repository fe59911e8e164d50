package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/manager"
	"github.com/kasuboski/dvrdispatch/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the dispatch server",
	Long:  `start the dispatch server and the fault queue retry job`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		ctx = logger.WithCtx(ctx, log)

		err := withApp(ctx, writer, func(a *app) error {
			srv := server.New(log, a.manager)
			scheduler := manager.NewScheduler(a.manager, a.config.Manager)

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return srv.Serve(ctx, a.config.Server.Port)
			})
			g.Go(func() error {
				return scheduler.Run(ctx)
			})
			return g.Wait()
		})
		stop()
		if err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
