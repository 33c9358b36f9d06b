// Package registry holds the static lookup tables the GM trade pipeline
// consults: the set of authorized solver wallets and the GM token list
// (mint → symbol/decimals). A Registry is immutable after construction and
// safe for concurrent readers without locking.
package registry

import (
	"github.com/gagliardetto/solana-go"
)

// TokenInfo describes one registered GM token mint.
type TokenInfo struct {
	Symbol   string
	Decimals uint8
}

type Registry struct {
	tokens  map[solana.PublicKey]TokenInfo
	solvers map[solana.PublicKey]struct{}
}

// New builds a registry from a token table and a solver set. The inputs are
// copied; callers may reuse their maps/slices afterwards.
func New(tokens map[solana.PublicKey]TokenInfo, solvers []solana.PublicKey) *Registry {
	r := &Registry{
		tokens:  make(map[solana.PublicKey]TokenInfo, len(tokens)),
		solvers: make(map[solana.PublicKey]struct{}, len(solvers)),
	}
	for mint, info := range tokens {
		r.tokens[mint] = info
	}
	for _, s := range solvers {
		r.solvers[s] = struct{}{}
	}
	return r
}

// IsAuthorizedSolver reports whether pk is allowed to act as maker on a
// mint-required GM trade.
func (r *Registry) IsAuthorizedSolver(pk solana.PublicKey) bool {
	_, ok := r.solvers[pk]
	return ok
}

// SyntheticTokenInfo returns the symbol/decimals for a registered GM token
// mint, or ok=false if the mint is not in the registry.
func (r *Registry) SyntheticTokenInfo(mint solana.PublicKey) (TokenInfo, bool) {
	info, ok := r.tokens[mint]
	return info, ok
}

// IsSyntheticToken reports whether mint is a registered GM token.
func (r *Registry) IsSyntheticToken(mint solana.PublicKey) bool {
	_, ok := r.tokens[mint]
	return ok
}

// TokenCount returns the number of registered mints.
func (r *Registry) TokenCount() int {
	return len(r.tokens)
}
