package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/smarthire/internal/config"
	"github.com/jonathan/smarthire/internal/db"
	"github.com/jonathan/smarthire/internal/extraction"
	"github.com/jonathan/smarthire/internal/server"
	"github.com/jonathan/smarthire/internal/session"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running mock interviews.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := buildDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer d.close()

	srvDeps := server.Deps{
		Store:     session.NewStore(),
		Pipeline:  d.pipeline,
		Extractor: extraction.NewExtractor(cfg.UploadsDir),
		CSVLog:    d.csvLog,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		srvDeps.DB = database
		d.pipeline.WithReportStore(database)
	}

	// Admin surface is optional; without credentials the routes answer 503.
	if admin, err := config.NewAdminConfig(); err == nil {
		jwtCfg, jwtErr := config.NewJWTConfig()
		if jwtErr != nil {
			return jwtErr
		}
		srvDeps.Admin = admin
		srvDeps.JWTService = server.NewJWTService(jwtCfg)
	} else {
		log.Printf("Admin surface disabled: %v", err)
	}

	return server.New(server.Config{Port: cfg.Port}, srvDeps).Start()
}
