package gmsimgo

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/franco-bianco/gmsim-go/registry"
)

// Classify decides whether a transaction is a GM trade that needs the
// two-transaction bundle simulation.
//
// The three-way outcome:
//   - buy direction (taker receives a registered GM token): the maker must
//     be an authorized solver, otherwise *UnauthorizedMakerError; when
//     authorized, RequiresMint is true.
//   - sell direction (taker sends a registered GM token): RequiresMint is
//     false. Authorization is deliberately not checked here — no tokens
//     get minted on a sell, so there is no minting privilege to abuse.
//   - neither leg registered: ErrNotSyntheticTrade.
//
// Structural problems surface as ErrEmptyTransaction,
// ErrNotFillInstruction, ErrInvalidAccountIndex, ErrMissingAccount or
// *ParseError; see errors.go for which of those callers may fall back on.
func Classify(tx *solana.Transaction, reg *registry.Registry) (*ClassificationResult, error) {
	return ClassifyMessage(&tx.Message, reg)
}

// ClassifyMessage is Classify for a bare message. The message's account
// keys must already be fully resolved; v0 messages that pull accounts from
// lookup tables should go through ClassifyWithMeta instead.
func ClassifyMessage(msg *solana.Message, reg *registry.Registry) (*ClassificationResult, error) {
	return classify(msg.Instructions, msg.AccountKeys, reg)
}

// ClassifyWithMeta classifies a fetched transaction, appending the
// lookup-table addresses the RPC node resolved so that fills referencing
// table entries decode correctly.
func ClassifyWithMeta(tx *solana.Transaction, meta *rpc.TransactionMeta, reg *registry.Registry) (*ClassificationResult, error) {
	keys := tx.Message.AccountKeys
	if meta != nil {
		resolved := make([]solana.PublicKey, 0, len(keys)+len(meta.LoadedAddresses.Writable)+len(meta.LoadedAddresses.ReadOnly))
		resolved = append(resolved, keys...)
		resolved = append(resolved, meta.LoadedAddresses.Writable...)
		resolved = append(resolved, meta.LoadedAddresses.ReadOnly...)
		keys = resolved
	}
	return classify(tx.Message.Instructions, keys, reg)
}

func classify(instructions []solana.CompiledInstruction, keys []solana.PublicKey, reg *registry.Registry) (*ClassificationResult, error) {
	rec, err := decodeFill(instructions, keys)
	if err != nil {
		return nil, err
	}

	outInfo, outRegistered := reg.SyntheticTokenInfo(rec.OutputMint)
	inInfo, inRegistered := reg.SyntheticTokenInfo(rec.InputMint)

	switch {
	case outRegistered:
		// Buy: the taker receives freshly minted tokens, so only an
		// authorized solver may stand on the other side.
		if !reg.IsAuthorizedSolver(rec.Maker) {
			return nil, &UnauthorizedMakerError{Maker: rec.Maker}
		}
		rec.SyntheticMint = rec.OutputMint
		rec.SyntheticSymbol = outInfo.Symbol
		rec.SyntheticAmount = rec.OutputAmount
		rec.Decimals = outInfo.Decimals
		return &ClassificationResult{RequiresMint: true, Trade: rec}, nil

	case inRegistered:
		// Sell: the maker already holds the proceeds currency, nothing
		// is minted, no bundle needed.
		rec.SyntheticMint = rec.InputMint
		rec.SyntheticSymbol = inInfo.Symbol
		rec.SyntheticAmount = rec.InputAmount
		rec.Decimals = inInfo.Decimals
		return &ClassificationResult{RequiresMint: false, Trade: rec}, nil

	default:
		return nil, ErrNotSyntheticTrade
	}
}
