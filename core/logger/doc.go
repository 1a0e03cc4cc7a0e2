// Package logger provides a structured logging facility based on Zap.
//
// New builds a development logger for the debug level and a production
// logger otherwise, with json or console encoding. WithRayID tags an entry
// with the ray id the rayid middleware stored in the Fiber context, so all
// logs of one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
