// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// LoginThrottle limits repeated login attempts per client key (usually the
// client IP). Entries expire on their own after the configured window; no
// explicit cleanup is required from callers.
type LoginThrottle interface {
	// Allow reports whether another attempt from the given key is permitted.
	Allow(ctx context.Context, key string) (bool, error)

	// Reset clears the attempt counter for the given key.
	Reset(ctx context.Context, key string) error
}
