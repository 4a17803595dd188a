// Package embedding provides the deterministic offline embedder and the
// failover decorator that keeps the vector channel alive when the hosted
// provider is down.
package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
)

// OfflineEmbedder derives a vector from a content hash of the text. It is
// a pure function: identical text always yields a bit-identical vector,
// different texts almost surely diverge after the first LCG step. It is
// the development/test stand-in and the degradation target when no real
// provider is reachable.
type OfflineEmbedder struct {
	dim int
}

// NewOffline creates a deterministic offline embedder of the given dimension.
func NewOffline(dim int) *OfflineEmbedder {
	return &OfflineEmbedder{dim: dim}
}

// Embed hashes the text and expands the hash into exactly dim values in
// [-1, 1] with a 32-bit LCG.
func (e *OfflineEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	sum := sha256.Sum256([]byte(text))
	seed := binary.LittleEndian.Uint32(sum[:4])

	vec := make([]float32, e.dim)
	for i := range vec {
		seed = seed*1664525 + 1013904223 // LCG constants
		vec[i] = float32(seed%2001)/1000.0 - 1.0
	}
	return vec, nil
}

// HealthCheck always succeeds: the offline embedder has no dependencies.
func (e *OfflineEmbedder) HealthCheck(_ context.Context) error {
	return nil
}
