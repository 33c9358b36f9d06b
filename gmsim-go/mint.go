package gmsimgo

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/franco-bianco/gmsim-go/registry"
)

// findTokenAccountAddress derives an associated token account for any token
// program. GM tokens live exclusively under Token-2022, so the generic
// derivation (owner, token program, mint) is required; the legacy helper
// hardcodes the classic program and yields the wrong address for GM mints.
func findTokenAccountAddress(owner, mint, tokenProgram solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{owner.Bytes(), tokenProgram.Bytes(), mint.Bytes()},
		solana.SPLAssociatedTokenAccountProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("deriving token account for %s/%s: %w", owner, mint, err)
	}
	return addr, nil
}

// GMTokenATA returns the owner's Token-2022 associated token account for a
// GM mint.
func GMTokenATA(owner, mint solana.PublicKey) (solana.PublicKey, error) {
	return findTokenAccountAddress(owner, mint, solana.Token2022ProgramID)
}

// createATAIdempotent builds an associated-token-program
// CreateIdempotent instruction (no-op if the account already exists).
func createATAIdempotent(payer, owner, mint, tokenProgram solana.PublicKey) (solana.Instruction, error) {
	ata, err := findTokenAccountAddress(owner, mint, tokenProgram)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(
		solana.SPLAssociatedTokenAccountProgramID,
		solana.AccountMetaSlice{
			solana.Meta(payer).WRITE().SIGNER(),
			solana.Meta(ata).WRITE(),
			solana.Meta(owner),
			solana.Meta(mint),
			solana.Meta(solana.SystemProgramID),
			solana.Meta(tokenProgram),
		},
		[]byte{1}, // CreateIdempotent
	), nil
}

// DeriveMintPlan computes every address the mock mint touches and
// assembles the mint instruction. Everything here is a pure function of
// fixed seeds plus {GM mint, admin minter}: deriving the same trade twice
// yields byte-identical addresses and payload.
func DeriveMintPlan(record *TradeRecord) (*MintPlan, error) {
	if record == nil {
		return nil, fmt.Errorf("nil trade record")
	}

	authorityRole, _, err := solana.FindProgramAddress(
		[][]byte{seedMinterRole, AdminMinter.Bytes()}, GMProgramID)
	if err != nil {
		return nil, fmt.Errorf("deriving authority role: %w", err)
	}
	oracleSanity, _, err := solana.FindProgramAddress(
		[][]byte{seedOracleSanity, record.SyntheticMint.Bytes()}, GMProgramID)
	if err != nil {
		return nil, fmt.Errorf("deriving oracle sanity check: %w", err)
	}
	mintAuthority, _, err := solana.FindProgramAddress(
		[][]byte{seedMintAuthority}, GMProgramID)
	if err != nil {
		return nil, fmt.Errorf("deriving mint authority: %w", err)
	}
	managerState, _, err := solana.FindProgramAddress(
		[][]byte{seedUSDOnManager}, GMProgramID)
	if err != nil {
		return nil, fmt.Errorf("deriving manager state: %w", err)
	}

	// The mock mint deposits into the maker's account: the fill then moves
	// the tokens from maker to taker, same as production settlement.
	destination, err := GMTokenATA(record.Maker, record.SyntheticMint)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, 16)
	data = append(data, MintGMDiscriminator[:]...)
	data = binary.LittleEndian.AppendUint64(data, record.SyntheticAmount)

	// Verified 12-account layout of mint_gm. Order is load-bearing: the
	// program resolves amount/destination through these positions.
	mintIx := solana.NewInstruction(
		GMProgramID,
		solana.AccountMetaSlice{
			solana.Meta(AdminMinter).WRITE().SIGNER(), // payer
			solana.Meta(AdminMinter).SIGNER(),         // authority
			solana.Meta(record.Maker),                 // user (destination owner)
			solana.Meta(authorityRole),                // authority_role_account
			solana.Meta(oracleSanity).WRITE(),         // oracle_sanity_check
			solana.Meta(mintAuthority),                // mint_authority
			solana.Meta(record.SyntheticMint).WRITE(), // mint
			solana.Meta(destination).WRITE(),          // destination ATA
			solana.Meta(managerState),                 // usdon_manager_state
			solana.Meta(solana.Token2022ProgramID),
			solana.Meta(solana.SPLAssociatedTokenAccountProgramID),
			solana.Meta(solana.SystemProgramID),
		},
		data,
	)

	return &MintPlan{
		AuthorityRole:     authorityRole,
		OracleSanityCheck: oracleSanity,
		MintAuthority:     mintAuthority,
		ManagerState:      managerState,
		DestinationATA:    destination,
		Instructions:      []solana.Instruction{mintIx},
	}, nil
}

// BuildMintInstruction returns the bare mint_gm instruction for a trade,
// without the surrounding create-ATA instructions.
func BuildMintInstruction(record *TradeRecord) (solana.Instruction, error) {
	plan, err := DeriveMintPlan(record)
	if err != nil {
		return nil, err
	}
	return plan.Instructions[0], nil
}

// BuildMintTransaction assembles the unsigned pre-mint transaction:
// idempotent ATA creates for both parties on both legs, then the mint_gm
// instruction. The fill transaction assumes these accounts exist, and the
// creates are no-ops when they already do.
func BuildMintTransaction(record *TradeRecord, blockhash solana.Hash) (*solana.Transaction, error) {
	plan, err := DeriveMintPlan(record)
	if err != nil {
		return nil, err
	}

	// The non-synthetic leg (USDC in production) is a classic SPL mint.
	otherMint := record.InputMint
	if record.SyntheticMint.Equals(record.InputMint) {
		otherMint = record.OutputMint
	}

	type ataSpec struct {
		owner        solana.PublicKey
		mint         solana.PublicKey
		tokenProgram solana.PublicKey
	}
	specs := []ataSpec{
		{record.Taker, record.SyntheticMint, solana.Token2022ProgramID},
		{record.Maker, record.SyntheticMint, solana.Token2022ProgramID},
		{record.Taker, otherMint, solana.TokenProgramID},
		{record.Maker, otherMint, solana.TokenProgramID},
	}

	instructions := make([]solana.Instruction, 0, len(specs)+len(plan.Instructions))
	for _, s := range specs {
		ix, err := createATAIdempotent(AdminMinter, s.owner, s.mint, s.tokenProgram)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, ix)
	}
	instructions = append(instructions, plan.Instructions...)

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(AdminMinter))
	if err != nil {
		return nil, fmt.Errorf("building mint transaction: %w", err)
	}
	return tx, nil
}

// ClassifyAndBuild is the convenience composition: classify the
// transaction and, if it needs the pre-mint bundle, return the unsigned
// mint transaction. (nil, nil) means a valid GM sell that needs no bundle;
// every other non-trade outcome surfaces as the classifier's error.
func ClassifyAndBuild(tx *solana.Transaction, blockhash solana.Hash, reg *registry.Registry) (*solana.Transaction, error) {
	result, err := Classify(tx, reg)
	if err != nil {
		return nil, err
	}
	if !result.RequiresMint {
		return nil, nil
	}
	return BuildMintTransaction(result.Trade, blockhash)
}
