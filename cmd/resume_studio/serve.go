package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/ai"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the session, editing, preview and export endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	deps := server.Deps{
		Exporter: export.NewPDFExporter(),
	}

	// The generative features are optional; without a key the server runs
	// with fallback names and no image endpoints.
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := ai.NewClient(cmd.Context(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create AI client: %w", err)
		}
		defer client.Close()
		deps.NameGen = client
		deps.Imager = client
	} else {
		log.Println("[AI] GEMINI_API_KEY not set, name and image generation disabled")
	}

	srv := server.New(server.Config{Port: servePort}, deps)
	return srv.Start()
}
