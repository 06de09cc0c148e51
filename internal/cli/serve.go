package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"african-animals/internal/router"
	"african-animals/internal/server"
)

// ServeCmd levanta el servidor HTTP hasta SIGINT/SIGTERM.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the web app on PORT (default 3300).

The backend is chosen from DATABASE_URL (mongodb://, postgres://, sqlite://).
Without DATABASE_URL records live in memory and are lost on restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFileFrom(cmd))
		},
	}
}

func runServe(parent context.Context, envFile string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, envFile, os.Stdout)
	if err != nil {
		return err
	}

	h := router.NewRouter(router.Options{Animals: a.store.Animals, Logger: a.log})
	srv := server.New(a.cfg.Addr(), h, a.cfg.ShutdownTimeout, a.log)

	runErr := srv.Run(ctx)

	// el store se cierra después de drenar las requests
	closeCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	a.close(closeCtx)

	return runErr
}
