package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio website",
	Long: `Serves a single-person portfolio: profile, projects with before/after
metric charts, experience, skills and a contact form. The same pages can be
exported as a static site.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

var (
	exportOut  string
	exportBase string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every page as static HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		site, err := LoadPortfolio(cfg.Content)
		if err != nil {
			return err
		}
		render, err := newRenderer(site, cfg.Templates, cfg.Images)
		if err != nil {
			return err
		}
		n, err := exportSite(render, cfg, exportOut, exportBase, os.Stderr)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d files to %s\n", n, exportOut)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yaml", "config file path")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	exportCmd.Flags().StringVar(&exportBase, "base-path", "", "URL path the exported site is hosted under, e.g. /portfolio")
	rootCmd.AddCommand(serveCmd, exportCmd)
}

func loadConfig() (*Config, error) {
	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	slog.SetDefault(setupLogger(cfg.LogLevel))
	return cfg, nil
}

func serve(ctx context.Context, cfg *Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	site, err := LoadPortfolio(cfg.Content)
	if err != nil {
		return err
	}
	render, err := newRenderer(site, cfg.Templates, cfg.Images)
	if err != nil {
		return err
	}

	var store *Store
	if cfg.TrackVisitors {
		store, err = OpenStore(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer store.Close()
		slog.Info("visitor tracking enabled with hashed IP addresses", "database", cfg.Database)
	}

	s, err := newServer(cfg, site, render, store)
	if err != nil {
		return err
	}
	if s.tracker != nil {
		go s.tracker.pruneEvery(ctx, pruneInterval)
	}
	if s.admin != nil {
		slog.Info("admin access available", "path", "/admin/login")
	}

	srv := s.httpServer()
	errCh := make(chan error, 1)
	go func() {
		slog.Info("portfolio server starting", "addr", cfg.Addr, "owner", site.Owner.Name)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
