// Package config provides configuration management for treeboard.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application
// settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, mode, refresh interval)
//   - Database: MySQL connection details for the emulator catalog
//   - Storage: S3/MinIO credentials and the asset bucket
//   - Cache: bucket/object of the development tree cache
//   - Log: logging level and format
//
// Defaults come from `default` struct tags, bound through reflection so
// every key is also overridable from the environment (SERVER_PORT,
// CACHE_BUCKET, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
