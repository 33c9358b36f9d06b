package gmsimgo

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
)

// TradeRecord is the structured view of one order-engine fill. All fields
// come straight from the instruction's accounts and payload; the record is
// never mutated after the decoder builds it.
type TradeRecord struct {
	// Maker is the liquidity provider (solver) filling the quote.
	Maker solana.PublicKey
	// Taker is the end user whose balances the simulation reports.
	Taker solana.PublicKey

	InputMint    solana.PublicKey
	OutputMint   solana.PublicKey
	InputAmount  uint64
	OutputAmount uint64

	// MakerOutputAccount is the maker's token account on the leg the
	// maker receives.
	MakerOutputAccount solana.PublicKey

	// ExpireAt is the unix timestamp after which the quote is invalid.
	ExpireAt int64

	// SyntheticMint is whichever leg is the registered GM token, with its
	// registry symbol/decimals and the traded amount on that leg.
	SyntheticMint   solana.PublicKey
	SyntheticSymbol string
	SyntheticAmount uint64
	Decimals        uint8
}

// ClassificationResult reports whether a trade needs the pre-mint bundle.
// RequiresMint is true only for buy-direction trades (the taker receives a
// registered GM token) with an authorized maker; it is false, with Trade
// still populated, for sell-direction trades where the maker already holds
// the proceeds currency.
type ClassificationResult struct {
	RequiresMint bool
	Trade        *TradeRecord
}

// MintPlan carries every derived address the mock mint needs plus the
// assembled instructions. Recomputing a plan for the same trade always
// yields identical addresses and payload.
type MintPlan struct {
	AuthorityRole     solana.PublicKey
	OracleSanityCheck solana.PublicKey
	MintAuthority     solana.PublicKey
	ManagerState      solana.PublicKey

	// DestinationATA is the maker's Token-2022 associated token account
	// for the GM mint, where the mock mint deposits.
	DestinationATA solana.PublicKey

	Instructions []solana.Instruction
}

// BalanceChange is one taker-owned token account's movement across the
// simulated bundle. Delta is exactly post - pre; big.Int so the caller
// never has to worry about magnitude.
type BalanceChange struct {
	Mint    solana.PublicKey
	Symbol  string // empty for unregistered mints
	Owner   solana.PublicKey
	Account solana.PublicKey

	PreAmount  uint64
	PostAmount uint64
	Delta      *big.Int

	// Decimals comes from the registry, never from the simulation
	// response; zero for unregistered mints.
	Decimals uint8
}

// BundleResult is the interpreted outcome of one simulateBundle call.
// A failed simulation is a reportable result, not a Go error: Success is
// false and Err/Logs carry what the service said.
type BundleResult struct {
	Success        bool
	Err            string
	Logs           []string
	BalanceChanges []BalanceChange
}
