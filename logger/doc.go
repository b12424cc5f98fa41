// Package logger provides structured logging for guard using zerolog.
//
// It is used to report invariant violations; checks themselves never log.
//
// # Configuration
//
//	logging:
//	  level: "error"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "billing").WithComponent("invariant")
//	log.Error("invariant violated", logger.Fields("kind", "state"))
package logger
