package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/beesaferoot/estate-catalog/internal/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "estate-catalog",
		Short: "Estate Catalog Service",
	}

	rootCmd.AddCommand(
		commands.ServeCmd(),
		commands.MigrateCmd(),
		commands.SeedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
