// Package config loads guard settings from a YAML file, an optional .env file
// and the process environment.
//
// Files are searched for in standard locations relative to the working
// directory (./guard.yml, ./config/guard.yml, ...). Environment variables
// prefixed with the upper-cased service name override file values, with
// underscores separating nested keys:
//
//	GUARD_LOGGING_LEVEL=debug
//	GUARD_INVARIANT_STACK=true
//
// # Usage
//
//	var cfg config.Config
//	if err := config.Load("guard", &cfg); err != nil {
//	    return err
//	}
//	f := invariant.New(invariant.WithConfig(cfg.Invariant, logger.New(&cfg.Logging, "guard")))
package config
