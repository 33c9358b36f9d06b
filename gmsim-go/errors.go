package gmsimgo

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Classification and decode outcomes. The "not applicable" cases
// (ErrNotFillInstruction, ErrNotSyntheticTrade) are expected and common;
// callers are meant to branch on them with errors.Is and fall back to
// ordinary single-transaction simulation. The structural errors mean the
// input did not match the fill schema at all.
var (
	// ErrEmptyTransaction: the transaction carries zero instructions.
	ErrEmptyTransaction = errors.New("transaction has no instructions")

	// ErrNotFillInstruction: no instruction matched the order-engine
	// program + fill discriminator.
	ErrNotFillInstruction = errors.New("transaction does not contain an order-engine fill instruction")

	// ErrNotSyntheticTrade: a fill was found but neither leg is a
	// registered GM token.
	ErrNotSyntheticTrade = errors.New("fill does not trade a registered GM token")

	// ErrInvalidAccountIndex: the fill instruction references fewer
	// accounts than the schema requires.
	ErrInvalidAccountIndex = errors.New("invalid account index in fill instruction")

	// ErrMissingAccount: an account index points outside the
	// transaction's account table.
	ErrMissingAccount = errors.New("missing required account in transaction")
)

// UnauthorizedMakerError is a hard rejection: the transaction has the shape
// of a mint-required GM trade but the maker is not an authorized solver.
// Callers must not silently fall back to normal simulation on this error.
type UnauthorizedMakerError struct {
	Maker solana.PublicKey
}

func (e *UnauthorizedMakerError) Error() string {
	return fmt.Sprintf("maker %s is not an authorized GM solver", e.Maker)
}

// ParseError reports fill instruction data that matched the discriminator
// but could not be decoded into the fixed schema.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse fill instruction: %s", e.Msg)
}
