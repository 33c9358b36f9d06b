package gmsimgo

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franco-bianco/gmsim-go/registry"
)

var (
	testSolver = solana.MustPublicKeyFromBase58("DSqMPMsMAbEJVNuPKv1ZFdzt6YvJaDPDddfeW7ajtqds")
	testAAPL   = solana.MustPublicKeyFromBase58("123mYEnRLM2LLYsJW3K6oyYh8uP1fngj732iG638ondo")
)

func fillData(inputAmount, outputAmount uint64, expireAt int64) []byte {
	data := append([]byte{}, FillDiscriminator[:]...)
	data = binary.LittleEndian.AppendUint64(data, inputAmount)
	data = binary.LittleEndian.AppendUint64(data, outputAmount)
	data = binary.LittleEndian.AppendUint64(data, uint64(expireAt))
	return data
}

// fillInstruction mirrors the on-chain fill account layout: taker, maker,
// taker_input_ata, maker_input_ata, taker_output_ata, maker_output_ata,
// input_mint, input_token_program, output_mint, output_token_program,
// system_program.
func fillInstruction(taker, maker, inputMint, outputMint solana.PublicKey, inputAmount, outputAmount uint64, expireAt int64) solana.Instruction {
	return solana.NewInstruction(
		OrderEngineProgramID,
		solana.AccountMetaSlice{
			solana.Meta(taker).WRITE().SIGNER(),
			solana.Meta(maker).WRITE().SIGNER(),
			solana.Meta(solana.NewWallet().PublicKey()).WRITE(), // taker input ata
			solana.Meta(solana.NewWallet().PublicKey()).WRITE(), // maker input ata
			solana.Meta(solana.NewWallet().PublicKey()).WRITE(), // taker output ata
			solana.Meta(solana.NewWallet().PublicKey()).WRITE(), // maker output ata
			solana.Meta(inputMint),
			solana.Meta(solana.TokenProgramID),
			solana.Meta(outputMint),
			solana.Meta(solana.Token2022ProgramID),
			solana.Meta(solana.SystemProgramID),
		},
		fillData(inputAmount, outputAmount, expireAt),
	)
}

func mustTransaction(t *testing.T, payer solana.PublicKey, ixs ...solana.Instruction) *solana.Transaction {
	t.Helper()
	tx, err := solana.NewTransaction(ixs, solana.Hash{}, solana.TransactionPayer(payer))
	require.NoError(t, err)
	return tx
}

func TestClassifyBuy(t *testing.T) {
	reg := registry.Mainnet()
	taker := solana.NewWallet().PublicKey()

	tx := mustTransaction(t, taker,
		fillInstruction(taker, testSolver, USDCMint, testAAPL, 1_000_000, 3_880_411, 1704067200))

	result, err := Classify(tx, reg)
	require.NoError(t, err)
	assert.True(t, result.RequiresMint)

	rec := result.Trade
	require.NotNil(t, rec)
	assert.Equal(t, testSolver, rec.Maker)
	assert.Equal(t, taker, rec.Taker)
	assert.Equal(t, USDCMint, rec.InputMint)
	assert.Equal(t, testAAPL, rec.OutputMint)
	assert.Equal(t, uint64(1_000_000), rec.InputAmount)
	assert.Equal(t, uint64(3_880_411), rec.OutputAmount)
	assert.Equal(t, int64(1704067200), rec.ExpireAt)
	assert.Equal(t, testAAPL, rec.SyntheticMint)
	assert.Equal(t, "AAPLon", rec.SyntheticSymbol)
	assert.Equal(t, uint64(3_880_411), rec.SyntheticAmount)
	assert.Equal(t, uint8(9), rec.Decimals)
}

func TestClassifySellNeedsNoMint(t *testing.T) {
	reg := registry.Mainnet()
	taker := solana.NewWallet().PublicKey()

	tx := mustTransaction(t, taker,
		fillInstruction(taker, testSolver, testAAPL, USDCMint, 7_000_000, 1_801_000, 1704067200))

	result, err := Classify(tx, reg)
	require.NoError(t, err)
	assert.False(t, result.RequiresMint)

	rec := result.Trade
	require.NotNil(t, rec)
	assert.Equal(t, testAAPL, rec.SyntheticMint)
	assert.Equal(t, uint64(7_000_000), rec.SyntheticAmount)
}

func TestClassifySellSkipsAuthorization(t *testing.T) {
	// Selling mints nothing, so an unknown maker is acceptable.
	reg := registry.Mainnet()
	taker := solana.NewWallet().PublicKey()
	unknownMaker := solana.NewWallet().PublicKey()

	tx := mustTransaction(t, taker,
		fillInstruction(taker, unknownMaker, testAAPL, USDCMint, 7_000_000, 1_801_000, 1704067200))

	result, err := Classify(tx, reg)
	require.NoError(t, err)
	assert.False(t, result.RequiresMint)
}

func TestClassifyUnauthorizedMaker(t *testing.T) {
	reg := registry.Mainnet()
	taker := solana.NewWallet().PublicKey()
	unknownMaker := solana.NewWallet().PublicKey()

	tx := mustTransaction(t, taker,
		fillInstruction(taker, unknownMaker, USDCMint, testAAPL, 1_000_000, 3_880_411, 1704067200))

	_, err := Classify(tx, reg)
	var unauthorized *UnauthorizedMakerError
	require.ErrorAs(t, err, &unauthorized)
	assert.Equal(t, unknownMaker, unauthorized.Maker)
}

func TestClassifyUnregisteredTokens(t *testing.T) {
	reg := registry.Mainnet()
	taker := solana.NewWallet().PublicKey()
	random := solana.NewWallet().PublicKey()

	tx := mustTransaction(t, taker,
		fillInstruction(taker, testSolver, USDCMint, random, 1_000_000, 500, 1704067200))

	_, err := Classify(tx, reg)
	assert.ErrorIs(t, err, ErrNotSyntheticTrade)
}

func TestClassifyEmptyTransaction(t *testing.T) {
	reg := registry.Mainnet()
	tx := &solana.Transaction{}

	_, err := Classify(tx, reg)
	assert.ErrorIs(t, err, ErrEmptyTransaction)
}

func TestClassifyNoFillInstruction(t *testing.T) {
	reg := registry.Mainnet()
	taker := solana.NewWallet().PublicKey()

	// A lone transfer-ish instruction under some other program.
	other := solana.NewInstruction(
		solana.NewWallet().PublicKey(),
		solana.AccountMetaSlice{solana.Meta(taker).WRITE().SIGNER()},
		[]byte{1, 2, 3},
	)
	tx := mustTransaction(t, taker, other)

	_, err := Classify(tx, reg)
	assert.ErrorIs(t, err, ErrNotFillInstruction)
}

func TestClassifyFindsFillAmongOtherInstructions(t *testing.T) {
	// Real fills travel with createAssociatedTokenAccountIdempotent
	// instructions; the scan has to look past them.
	reg := registry.Mainnet()
	taker := solana.NewWallet().PublicKey()

	createATA, err := createATAIdempotent(taker, taker, testAAPL, solana.Token2022ProgramID)
	require.NoError(t, err)

	tx := mustTransaction(t, taker,
		createATA,
		fillInstruction(taker, testSolver, USDCMint, testAAPL, 1_000_000, 3_880_411, 1704067200))

	result, err := Classify(tx, reg)
	require.NoError(t, err)
	assert.True(t, result.RequiresMint)
	assert.Equal(t, uint64(3_880_411), result.Trade.SyntheticAmount)
}

func TestClassifyFirstFillWins(t *testing.T) {
	reg := registry.Mainnet()
	taker := solana.NewWallet().PublicKey()

	tx := mustTransaction(t, taker,
		fillInstruction(taker, testSolver, USDCMint, testAAPL, 1_000_000, 3_880_411, 1704067200),
		fillInstruction(taker, testSolver, USDCMint, testAAPL, 500_000, 1_940_205, 1704067200))

	result, err := Classify(tx, reg)
	require.NoError(t, err)
	assert.Equal(t, uint64(3_880_411), result.Trade.SyntheticAmount)
}

func TestClassifyShortPayload(t *testing.T) {
	reg := registry.Mainnet()
	taker := solana.NewWallet().PublicKey()

	truncated := solana.NewInstruction(
		OrderEngineProgramID,
		solana.AccountMetaSlice{
			solana.Meta(taker).WRITE().SIGNER(),
			solana.Meta(testSolver).WRITE(),
		},
		append(append([]byte{}, FillDiscriminator[:]...), 0xde, 0xad),
	)
	tx := mustTransaction(t, taker, truncated)

	_, err := Classify(tx, reg)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "too short")
}

func TestClassifyTooFewAccounts(t *testing.T) {
	reg := registry.Mainnet()
	taker := solana.NewWallet().PublicKey()

	shortFill := solana.NewInstruction(
		OrderEngineProgramID,
		solana.AccountMetaSlice{
			solana.Meta(taker).WRITE().SIGNER(),
			solana.Meta(testSolver).WRITE(),
			solana.Meta(USDCMint),
		},
		fillData(1_000_000, 3_880_411, 1704067200),
	)
	tx := mustTransaction(t, taker, shortFill)

	_, err := Classify(tx, reg)
	assert.ErrorIs(t, err, ErrInvalidAccountIndex)
}

func TestDecodeFillAccountIndexOutOfTable(t *testing.T) {
	keys := []solana.PublicKey{
		solana.NewWallet().PublicKey(),
		OrderEngineProgramID,
	}
	ix := solana.CompiledInstruction{
		ProgramIDIndex: 1,
		// Nine account slots, all pointing outside the key table.
		Accounts: []uint16{40, 41, 42, 43, 44, 45, 46, 47, 48},
		Data:     fillData(1, 2, 3),
	}

	_, err := decodeFill([]solana.CompiledInstruction{ix}, keys)
	assert.ErrorIs(t, err, ErrMissingAccount)
}

func TestClassifyWithMetaResolvesLoadedAddresses(t *testing.T) {
	// Indirectly covered by ClassifyWithMeta appending loaded addresses;
	// with nil meta it must behave exactly like Classify.
	reg := registry.Mainnet()
	taker := solana.NewWallet().PublicKey()

	tx := mustTransaction(t, taker,
		fillInstruction(taker, testSolver, USDCMint, testAAPL, 1_000_000, 3_880_411, 1704067200))

	fromMeta, err := ClassifyWithMeta(tx, nil, reg)
	require.NoError(t, err)
	plain, err := Classify(tx, reg)
	require.NoError(t, err)
	assert.Equal(t, plain, fromMeta)
}

func TestErrorVariantsAreDistinct(t *testing.T) {
	// Callers branch on these; they must not alias.
	sentinels := []error{
		ErrEmptyTransaction,
		ErrNotFillInstruction,
		ErrNotSyntheticTrade,
		ErrInvalidAccountIndex,
		ErrMissingAccount,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b))
			}
		}
	}
}
