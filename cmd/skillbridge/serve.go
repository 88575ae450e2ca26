package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillbridge/skillbridge/internal/config"
	"github.com/skillbridge/skillbridge/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume upload, skill extraction, and gap analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(servePort)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		DatabaseURL:  cfg.DatabaseURL,
		GeminiAPIKey: cfg.GeminiAPIKey,
		UploadDir:    cfg.UploadDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
