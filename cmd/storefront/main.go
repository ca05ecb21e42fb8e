package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/JPVargas2025/storefront/internal/api"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

const shutdownTimeout = 10 * time.Second

func main() {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront API: users, catalog, orders and sales reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd(), schemaCmd(), usersCmd(), exportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			e := api.NewRouter(api.Dependencies{
				Auth:      a.auth,
				Catalog:   a.catalog,
				Orders:    a.orders,
				Reports:   a.reports,
				Readiness: a.readiness(),
				JWTSecret: a.cfg.Auth.JWTSecret,
				Logger:    a.log,
			})

			errCh := make(chan error, 1)
			go func() {
				a.log.Info().Str("port", a.cfg.Port).Msg("http server listening")
				if err := e.Start(":" + a.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the tables/collections if they do not exist and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			a.Close()
			fmt.Println("ok")
			return nil
		},
	}
}

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Print every registered username",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			names, err := a.auth.ListUsernames(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:       "export inventory|sales",
		Short:     "Write the inventory or the sales report to a file",
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{"inventory", "sales"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if out == "" {
				name := "inventario"
				if args[0] == "sales" {
					name = "reporte_ventas"
				}
				out = name + "." + format
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}

			if args[0] == "sales" {
				err = a.reports.ExportSales(cmd.Context(), format, f)
			} else {
				err = a.reports.ExportInventory(cmd.Context(), format, f)
			}
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(out)
				return err
			}

			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", ports.FormatXLSX, "Output format: xlsx|csv")
	cmd.Flags().StringVar(&out, "out", "", "Output file (defaults to inventario.<format> or reporte_ventas.<format>)")
	return cmd
}
