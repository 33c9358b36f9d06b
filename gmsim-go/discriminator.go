package gmsimgo

import (
	"crypto/sha256"
	"fmt"
)

// InstructionDiscriminator computes the anchor-style discriminator
// sha256("global:<name>")[0:8]. The pipeline itself matches on the
// pre-verified constants in constants.go; this helper exists for building
// test fixtures and for cross-checking new instructions against an IDL.
func InstructionDiscriminator(name string) [8]byte {
	sum := sha256.Sum256([]byte(fmt.Sprintf("global:%s", name)))
	var disc [8]byte
	copy(disc[:], sum[:8])
	return disc
}
