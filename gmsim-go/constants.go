package gmsimgo

import (
	"github.com/gagliardetto/solana-go"
)

// Mainnet program and authority addresses used by the GM pipeline.
var (
	// On-chain GM program that owns the mint_gm instruction.
	GMProgramID = solana.MustPublicKeyFromBase58("XzTT4XB8m7sLD2xi6snefSasaswsKCxx5Tifjondogm")

	// Order-engine program whose fill instruction settles RFQ trades.
	OrderEngineProgramID = solana.MustPublicKeyFromBase58("61DFfeTKM7trxYcPQCM78bJ794ddZprZpAwAnLiwTpYH")

	// Admin minter: on-chain authority allowed to mint GM tokens without
	// attestations, which makes it usable as the mock-mint payer/signer.
	AdminMinter = solana.MustPublicKeyFromBase58("4pfyfezvwjBrsHtJpXPPKsqH9cphwSDDb7s63KzkVEqF")

	USDCMint = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
)

// Instruction discriminators, verified against the on-chain IDLs.
var (
	// First 8 bytes of an order-engine fill instruction's data.
	FillDiscriminator = [8]byte{0xa8, 0x60, 0xb7, 0xa3, 0x5c, 0x0a, 0x28, 0xa0}

	// Anchor discriminator for the GM program's mint_gm instruction.
	MintGMDiscriminator = [8]byte{117, 223, 58, 111, 44, 36, 16, 43}
)

// PDA seeds published by the GM program. Every derived address below is a
// pure function of these seeds plus {mint, admin minter}.
var (
	seedMintAuthority = []byte("mint_authority")
	seedMinterRole    = []byte("MinterRoleGMToken")
	seedOracleSanity  = []byte("sanity_check")
	seedUSDOnManager  = []byte("usdon_manager")
)

// Account positions inside an order-engine fill instruction.
// Layout: taker, maker, taker_input_ata, maker_input_ata, taker_output_ata,
// maker_output_ata, input_mint, input_token_program, output_mint,
// output_token_program, system_program.
const (
	fillIdxTaker          = 0
	fillIdxMaker          = 1
	fillIdxMakerOutputATA = 5
	fillIdxInputMint      = 6
	fillIdxOutputMint     = 8

	// Smallest account list a decodable fill can have (through output_mint).
	fillMinAccounts = 9
)
