// Package log provides structured event capture for cameras.
//
// This package defines the Logger interface and Event types for recording
// what happened to a camera: feature writes and command executions,
// configuration dumps and applies, acquisition state changes and received
// frames. It is separate from operational logging (slog); event capture
// provides a complete machine-readable trace for debugging and analysis.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// For development: log to console via slog
//	opts.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	opts.EventLogger, _ = log.NewFileLogger("/var/log/genicam/cam0.glog")
//
//	// Both: use MultiLogger
//	opts.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys, using
// the .glog extension. The genicam-log CLI tool provides viewing,
// filtering, statistics and export.
package log
