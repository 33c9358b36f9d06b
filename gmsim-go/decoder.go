package gmsimgo

import (
	"bytes"
	"fmt"

	ag_binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// fillArgs is the borsh payload of a fill instruction, right after the
// 8-byte discriminator.
type fillArgs struct {
	InputAmount  uint64
	OutputAmount uint64
	ExpireAt     int64
}

// isFillInstruction checks program ID and leading discriminator bytes
// without decoding the rest of the payload.
func isFillInstruction(ix solana.CompiledInstruction, keys []solana.PublicKey) bool {
	if int(ix.ProgramIDIndex) >= len(keys) {
		return false
	}
	if !keys[ix.ProgramIDIndex].Equals(OrderEngineProgramID) {
		return false
	}
	data := []byte(ix.Data)
	if len(data) < 8 {
		return false
	}
	return bytes.Equal(data[:8], FillDiscriminator[:])
}

// decodeFill locates the first order-engine fill instruction and extracts a
// TradeRecord from its accounts and payload. Pure parse; the registry is
// not consulted here. Transactions with several fills are decoded from the
// first match only.
func decodeFill(instructions []solana.CompiledInstruction, keys []solana.PublicKey) (*TradeRecord, error) {
	if len(instructions) == 0 {
		return nil, ErrEmptyTransaction
	}

	var fill *solana.CompiledInstruction
	for i := range instructions {
		if isFillInstruction(instructions[i], keys) {
			fill = &instructions[i]
			break
		}
	}
	if fill == nil {
		return nil, ErrNotFillInstruction
	}

	// discriminator (8) + input_amount (8) + output_amount (8) + expire_at (8)
	data := []byte(fill.Data)
	if len(data) < 32 {
		return nil, &ParseError{Msg: fmt.Sprintf("data too short: expected at least 32 bytes, got %d", len(data))}
	}

	var args fillArgs
	if err := ag_binary.NewBorshDecoder(data[8:]).Decode(&args); err != nil {
		return nil, &ParseError{Msg: fmt.Sprintf("decoding fill args: %v", err)}
	}

	account := func(pos int) (solana.PublicKey, error) {
		if pos >= len(fill.Accounts) {
			return solana.PublicKey{}, ErrInvalidAccountIndex
		}
		keyIdx := int(fill.Accounts[pos])
		if keyIdx >= len(keys) {
			return solana.PublicKey{}, ErrMissingAccount
		}
		return keys[keyIdx], nil
	}

	if len(fill.Accounts) < fillMinAccounts {
		return nil, ErrInvalidAccountIndex
	}

	taker, err := account(fillIdxTaker)
	if err != nil {
		return nil, err
	}
	maker, err := account(fillIdxMaker)
	if err != nil {
		return nil, err
	}
	makerOut, err := account(fillIdxMakerOutputATA)
	if err != nil {
		return nil, err
	}
	inputMint, err := account(fillIdxInputMint)
	if err != nil {
		return nil, err
	}
	outputMint, err := account(fillIdxOutputMint)
	if err != nil {
		return nil, err
	}

	return &TradeRecord{
		Maker:              maker,
		Taker:              taker,
		InputMint:          inputMint,
		OutputMint:         outputMint,
		InputAmount:        args.InputAmount,
		OutputAmount:       args.OutputAmount,
		MakerOutputAccount: makerOut,
		ExpireAt:           args.ExpireAt,
	}, nil
}
