// Package log provides hogdump's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// simple Field type for structured context. Internally it is backed by
// Go's standard library slog via a custom handler that preserves the
// formatter/outputs pipeline.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("extract"))
//	l.Info("archive processed", log.Uint64("files", 12))
//
// Use ApplyConfig to build a logger from a declarative Config supporting
// text or JSON formatting.
package log
