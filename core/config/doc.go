// Package config provides configuration management for devserve.
//
// Values come from struct tag defaults, a .env file and environment variables,
// in increasing order of precedence. Command-line flags are applied on top by the
// cmd package.
//
// # Configuration Structure
//
//   - Server: port, host, served root, source (disk or bucket), browser launch
//   - Storage: S3/MinIO credentials, bucket and key prefix for the bucket source
//   - Log: logging level and format
//
// Environment keys are the upper-cased dotted path with dots replaced by
// underscores: server.port is SERVER_PORT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.Port)
package config
