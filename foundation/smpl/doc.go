// File: doc.go
// Title: Smpl Package Documentation
// Description: High-level entry point for scanning and parsing Smpl source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine facade

/*
Package smpl is the high-level interface to the Smpl front end.

The Engine ties the scanner and parser from the parser package together,
enforces a source size limit and reports failures as structured errors from
foundation/core/error with the codes SMPL_LEX, SMPL_PARSE,
SMPL_INTEGER_RANGE and SMPL_INPUT_TOO_LARGE. The typed errors of the parser
package stay reachable through errors.As.

	engine, err := smpl.New(smpl.Options{Logger: logger})
	if err != nil {
		return err
	}
	def, err := engine.Compile("def add(a, b) add(a, b) end")
	if err != nil {
		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) {
			// inspect parseErr.Expected and parseErr.Actual
		}
		return err
	}

An Engine holds only immutable options and a logger and may be shared
between goroutines.
*/
package smpl
