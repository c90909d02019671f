//-------------------------------------------------------------------------
//
// ShopSmart ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for shopsmart-etl.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shopsmart/shopsmart-etl/internal/config"
	"github.com/shopsmart/shopsmart-etl/internal/logging"
	"github.com/shopsmart/shopsmart-etl/pkg/version"
)

var (
	// Global flags
	cfgFile      string
	transactions string
	products     string
	logLevel     string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "shopsmart-etl",
		Short: "Batch ETL for the ShopSmart retail warehouse",
		Long: `shopsmart-etl reads raw ShopSmart transaction and product catalog
files, cleans and reconciles them, derives the customer, product, and time
dimensions and the sale fact table, and loads the result into a PostgreSQL
warehouse, replacing each destination table wholesale.

Warehouse connection parameters are read from the environment:
DB_PROTOCOL, DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./shopsmart-etl.yaml)")
	rootCmd.PersistentFlags().StringVar(&transactions, "transactions", "",
		"path to the customer transactions JSON file")
	rootCmd.PersistentFlags().StringVar(&products, "products", "",
		"path to the product catalog CSV file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if transactions != "" {
		cfg.Transactions = transactions
	}
	if products != "" {
		cfg.Products = products
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
