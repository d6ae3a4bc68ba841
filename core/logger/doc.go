// Package logger provides structured logging utilities built on Go's standard slog package.
//
// New builds a logger from options; attribute helpers produce consistent keys for
// the values the trigger package logs (event names, callback ids, token ids,
// delays, errors and recovered panics).
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("myapp"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("callback registered",
//		logger.Component("trigger"),
//		logger.Event("user.created"),
//		logger.CallbackID(id),
//	)
//
// Long-running processes can write to a size-rotated file instead of stdout:
//
//	log := logger.New(
//		logger.WithProduction("myapp"),
//		logger.WithFileOutput("/var/log/myapp/trigger.log", 100, 5),
//	)
//
// # Nil Safety
//
// Helpers that take errors, panic values or identifiers return an empty slog.Attr
// when there is nothing to log, and slog drops empty attributes:
//
//	log.Error("dispatch failed", logger.Error(err)) // no "error" key when err == nil
//
// Use Nop to get a logger that discards all output.
package logger
