package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/verveschool/cv-builder/internal/db"
	"github.com/verveschool/cv-builder/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server that renders candidate JSON into CV PDFs. With a database URL, rendered documents are stored and can be listed and downloaded again.`,
	RunE:  runServe,
}

var (
	servePort  int
	serveFlags sharedFlags
)

func init() {
	serveFlags.register(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveFlags.resolve(cmd)
	if err != nil {
		return err
	}
	layout, err := cfg.LayoutConfig()
	if err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	port, err := resolvePort(servePort, os.Getenv("PORT"))
	if err != nil {
		return err
	}

	srvCfg := server.Config{
		Port:     port,
		Layout:   layout,
		MaxPages: cfg.MaxPages,
	}

	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		srvCfg.Store = database
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolvePort prefers the flag, then the PORT environment value, then 8080
func resolvePort(flagPort int, env string) (int, error) {
	if flagPort > 0 {
		return flagPort, nil
	}
	if env == "" {
		return 8080, nil
	}
	port, err := strconv.Atoi(env)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT value %q", env)
	}
	return port, nil
}
