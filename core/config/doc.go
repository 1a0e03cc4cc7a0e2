// Package config loads the application configuration.
//
// Values come from environment variables and an optional .env file, read
// through Viper. Every field declares its key with a 'mapstructure' tag and
// its default with a 'default' tag; nested sections map to underscored
// variables (catalog.mode is CATALOG_MODE).
//
// Sections:
//   - Server: port, API key, public base URL
//   - Storage: S3/MinIO credentials, bucket and dataset prefix
//   - Log: level and format
//   - Database: relational mirror driver and connection
//   - Catalog: loading mode, origin override, asset source, fetch timeout
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
