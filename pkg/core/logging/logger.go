// ============================================================================
// Smpl - Smpl(s) programming language front end
// ============================================================================
//
// Package:     logging
// Description: Key-value helpers on top of Foundation logging
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package logging

import (
	mdwlog "github.com/msto63/smpl/foundation/core/log"
)

// KV converts alternating key-value pairs to mdwlog.Fields. Non-string keys
// and a trailing key without value are skipped.
func KV(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
