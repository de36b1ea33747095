// File: doc.go
// Title: Logging Package Documentation
// Description: Structured logging used by the Smpl engine and CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Trimmed to levels, fields, formatters and timers
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//	  WithField("component", "smpl-scanner")
//
//	logger.Debug("scan completed", log.Int("tokens", 12))
//
//	timer := logger.StartTimer("compile")
//	// ... tokenize and parse
//	timer.Stop()

// Package log provides structured, leveled logging with JSON, text and
// logfmt output and timers for measuring operations.
package log
