//-------------------------------------------------------------------------
//
// ShopSmart ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for shopsmart-etl.
// Warehouse connection parameters come from environment variables
// (DB_PROTOCOL, DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD); input
// file locations and the log level can additionally come from an optional
// config file and CLI flags. CLI flags take precedence over both.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for shopsmart-etl. It is constructed once
// at process start and passed into the pipeline; core logic never reads the
// environment directly.
type Config struct {
	// Transactions is the path to the customer transactions JSON file.
	Transactions string `mapstructure:"transactions"`

	// Products is the path to the product catalog CSV file.
	Products string `mapstructure:"products"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// DB holds the warehouse connection parameters.
	DB DatabaseConfig `mapstructure:"db"`
}

// DatabaseConfig holds the destination warehouse connection parameters.
type DatabaseConfig struct {
	Protocol string `mapstructure:"protocol"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// URL assembles the connection string from the individual parameters.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("%s://%s:%s@%s:%s/%s",
		d.Protocol, d.User, d.Password, d.Host, d.Port, d.Name)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Transactions: filepath.Join("data", "customer_transactions.json"),
		Products:     filepath.Join("data", "product_catalog.csv"),
		LogLevel:     "info",
		DB: DatabaseConfig{
			Protocol: "postgres",
			Host:     "localhost",
			Port:     "5432",
		},
	}
}

// envBindings maps config keys to the environment variables that feed them.
var envBindings = map[string]string{
	"db.protocol": "DB_PROTOCOL",
	"db.host":     "DB_HOST",
	"db.port":     "DB_PORT",
	"db.name":     "DB_NAME",
	"db.user":     "DB_USER",
	"db.password": "DB_PASSWORD",
}

// Load reads configuration from the environment and an optional config file.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./shopsmart-etl.yaml
// 3. ~/.config/shopsmart-etl/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("shopsmart-etl")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "shopsmart-etl"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	// Register every key with a default so Unmarshal sees env-only values.
	defaults := DefaultConfig()
	v.SetDefault("transactions", defaults.Transactions)
	v.SetDefault("products", defaults.Products)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("db.protocol", defaults.DB.Protocol)
	v.SetDefault("db.host", defaults.DB.Host)
	v.SetDefault("db.port", defaults.DB.Port)
	v.SetDefault("db.name", defaults.DB.Name)
	v.SetDefault("db.user", defaults.DB.User)
	v.SetDefault("db.password", defaults.DB.Password)

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the input file locations are present.
func (c *Config) Validate() error {
	if c.Transactions == "" {
		return fmt.Errorf("transactions file path is required")
	}
	if c.Products == "" {
		return fmt.Errorf("products file path is required")
	}
	return nil
}

// ValidateRun checks configuration required for the run command, which
// additionally needs a complete warehouse connection.
func (c *Config) ValidateRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DB.Protocol == "" {
		return fmt.Errorf("DB_PROTOCOL is required")
	}
	if c.DB.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DB.Port == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	if c.DB.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.DB.User == "" {
		return fmt.Errorf("DB_USER is required")
	}
	return nil
}
