package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/volunteerhub/volunteer-hub-api/internal/config"
	"github.com/volunteerhub/volunteer-hub-api/internal/database"
	"github.com/volunteerhub/volunteer-hub-api/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hubctl",
		Short:        "Volunteer Hub operations tool",
		SilenceUsage: true,
	}

	var addr string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			gin.SetMode(cfg.GinMode)
			return server.Run(cfg, addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run schema migrations and seed the skill vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := database.Connect(cfg); err != nil {
				return err
			}
			if err := database.Migrate(); err != nil {
				return err
			}
			if err := database.AddIndexes(database.GetDB()); err != nil {
				return err
			}
			fmt.Println("migrations applied")
			return nil
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := database.Connect(cfg); err != nil {
				return err
			}
			if err := database.Migrate(); err != nil {
				return err
			}
			if err := database.Seed(database.GetDB()); err != nil {
				return err
			}
			fmt.Println("demo data loaded")
			return nil
		},
	}

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
