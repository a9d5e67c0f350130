// Package config provides configuration management for the IceVision backend.
//
// It utilizes Viper for loading configuration from environment variables and a
// local .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, CORS origins)
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and bucket for face photos
//   - Log: Logging level and format
//   - Reconcile: snapshot cache tuning
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
