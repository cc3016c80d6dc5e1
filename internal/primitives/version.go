// Package primitives provides versioning utilities for Layout.
package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion returns a deterministic fingerprint of the layout data.
// Two layouts with the same rows, hints and descriptors share a version
// regardless of where they were loaded from.
func ComputeVersion(l *Layout) string {
	data, err := json.Marshal(l)
	if err != nil {
		// Layout only holds plain values; this does not happen.
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
