package gmsimgo

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"github.com/franco-bianco/gmsim-go/registry"
)

// BundleClient talks to a simulateBundle-capable RPC endpoint. It holds no
// state between calls and is safe for concurrent use; cancellation and
// timeouts are the caller's responsibility via ctx (no internal retries).
type BundleClient struct {
	endpoint string
	http     *http.Client
	reg      *registry.Registry
	Log      *logrus.Logger
}

func NewBundleClient(endpoint string, reg *registry.Registry) *BundleClient {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	return &BundleClient{
		endpoint: endpoint,
		http:     &http.Client{},
		reg:      reg,
		Log:      log,
	}
}

// WithHTTPClient swaps the underlying HTTP client (custom transports,
// test servers).
func (c *BundleClient) WithHTTPClient(h *http.Client) *BundleClient {
	c.http = h
	return c
}

type accountsConfig struct {
	Encoding  string   `json:"encoding"`
	Addresses []string `json:"addresses"`
}

type accountSnapshot struct {
	Lamports uint64   `json:"lamports"`
	Owner    string   `json:"owner"`
	Data     []string `json:"data"` // [payload, encoding]
}

type bundleTxResult struct {
	Err                   json.RawMessage    `json:"err"`
	Logs                  []string           `json:"logs"`
	UnitsConsumed         uint64             `json:"unitsConsumed"`
	PreExecutionAccounts  []*accountSnapshot `json:"preExecutionAccounts"`
	PostExecutionAccounts []*accountSnapshot `json:"postExecutionAccounts"`
}

type bundleValue struct {
	Summary            json.RawMessage  `json:"summary"`
	TransactionResults []bundleTxResult `json:"transactionResults"`
}

type simulateBundleResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result *struct {
		Value bundleValue `json:"value"`
	} `json:"result"`
}

// SimulateBundle submits [mintTx, fillTx] as one atomic simulation unit
// and interprets the response into taker balance changes.
//
// Order is a hard invariant: the mint transaction must run first so its
// minted balance is visible to the fill. A reversed pair is a caller bug
// and returns an error rather than being silently swapped.
//
// A failing simulation is NOT an error: it comes back as
// {Success: false, Err, Logs}. Errors are reserved for transport faults,
// malformed responses, and caller mistakes.
func (c *BundleClient) SimulateBundle(ctx context.Context, mintTx, fillTx *solana.Transaction, record *TradeRecord) (*BundleResult, error) {
	if mintTx == nil || fillTx == nil {
		return nil, fmt.Errorf("both bundle transactions are required")
	}
	if record == nil {
		return nil, fmt.Errorf("nil trade record")
	}
	if !transactionHasProgram(mintTx, GMProgramID) {
		if transactionHasProgram(fillTx, GMProgramID) && transactionHasProgram(mintTx, OrderEngineProgramID) {
			return nil, fmt.Errorf("bundle order reversed: the mint transaction must be first")
		}
		return nil, fmt.Errorf("first bundle transaction carries no GM mint instruction")
	}
	if !transactionHasProgram(fillTx, OrderEngineProgramID) {
		return nil, fmt.Errorf("second bundle transaction carries no order-engine fill")
	}

	watched, err := c.takerAccounts(record)
	if err != nil {
		return nil, err
	}
	addresses := make([]string, len(watched))
	for i, w := range watched {
		addresses[i] = w.account.String()
	}

	mintB64, err := encodeTransaction(mintTx)
	if err != nil {
		return nil, fmt.Errorf("encoding mint transaction: %w", err)
	}
	fillB64, err := encodeTransaction(fillTx)
	if err != nil {
		return nil, fmt.Errorf("encoding fill transaction: %w", err)
	}

	reqBody := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "simulateBundle",
		"params": []interface{}{
			map[string]interface{}{
				"encodedTransactions": []string{mintB64, fillB64},
			},
			map[string]interface{}{
				// Snapshot the taker's accounts before the mint runs and
				// after the fill lands; the difference is what the user
				// would see.
				"preExecutionAccountsConfigs": []interface{}{
					&accountsConfig{Encoding: "base64", Addresses: addresses},
					nil,
				},
				"postExecutionAccountsConfigs": []interface{}{
					nil,
					&accountsConfig{Encoding: "base64", Addresses: addresses},
				},
				"replaceRecentBlockhash": true,
				"skipSigVerify":          true,
				"simulationBank": map[string]interface{}{
					"commitment": map[string]interface{}{
						"commitment": "processed",
					},
				},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling simulateBundle request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building simulateBundle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("simulateBundle request: %w", err)
	}
	defer resp.Body.Close()

	var parsed simulateBundleResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding simulateBundle response: %w", err)
	}

	if parsed.Error != nil {
		c.Log.Warnf("simulateBundle rpc error %d: %s", parsed.Error.Code, parsed.Error.Message)
		return &BundleResult{Success: false, Err: parsed.Error.Message}, nil
	}
	if parsed.Result == nil {
		return nil, fmt.Errorf("simulateBundle response has neither result nor error")
	}

	value := parsed.Result.Value
	if len(value.TransactionResults) < 2 {
		return nil, fmt.Errorf("simulateBundle returned %d transaction results, want 2", len(value.TransactionResults))
	}

	var logs []string
	for _, tr := range value.TransactionResults {
		logs = append(logs, tr.Logs...)
	}

	if msg, failed := bundleFailure(value); failed {
		return &BundleResult{Success: false, Err: msg, Logs: logs}, nil
	}

	changes := c.balanceChanges(record, watched,
		value.TransactionResults[0].PreExecutionAccounts,
		value.TransactionResults[1].PostExecutionAccounts)

	return &BundleResult{
		Success:        true,
		Logs:           logs,
		BalanceChanges: changes,
	}, nil
}

// bundleFailure inspects the summary and per-transaction errors. The
// service reports the summary as the string "succeeded" or an object
// describing the failure.
func bundleFailure(value bundleValue) (string, bool) {
	for i, tr := range value.TransactionResults {
		if len(tr.Err) > 0 && string(tr.Err) != "null" {
			return fmt.Sprintf("transaction %d failed: %s", i, string(tr.Err)), true
		}
	}
	if len(value.Summary) > 0 {
		var s string
		if err := json.Unmarshal(value.Summary, &s); err == nil && s == "succeeded" {
			return "", false
		}
		return string(value.Summary), true
	}
	return "", false
}

type watchedAccount struct {
	account solana.PublicKey
	mint    solana.PublicKey
}

// takerAccounts derives the taker token accounts the simulation should
// snapshot: one ATA per trade leg, under Token-2022 for registered GM
// mints and the classic token program otherwise. Takers holding tokens in
// non-associated accounts are not reported.
func (c *BundleClient) takerAccounts(record *TradeRecord) ([]watchedAccount, error) {
	mints := []solana.PublicKey{record.InputMint, record.OutputMint}
	out := make([]watchedAccount, 0, len(mints))
	for _, mint := range mints {
		program := solana.TokenProgramID
		if c.reg.IsSyntheticToken(mint) {
			program = solana.Token2022ProgramID
		}
		ata, err := findTokenAccountAddress(record.Taker, mint, program)
		if err != nil {
			return nil, err
		}
		out = append(out, watchedAccount{account: ata, mint: mint})
	}
	return out, nil
}

// balanceChanges pairs each watched account's pre snapshot with its post
// snapshot and computes signed deltas. Accounts absent before the bundle
// count as zero; accounts that never exist, or turn out to be owned by
// someone other than the taker, are dropped.
func (c *BundleClient) balanceChanges(record *TradeRecord, watched []watchedAccount, pre, post []*accountSnapshot) []BalanceChange {
	snapAt := func(list []*accountSnapshot, i int) *accountSnapshot {
		if i < len(list) {
			return list[i]
		}
		return nil
	}

	var changes []BalanceChange
	for i, w := range watched {
		preOwner, preAmount, preOK := parseTokenAccount(snapAt(pre, i))
		postOwner, postAmount, postOK := parseTokenAccount(snapAt(post, i))
		if !preOK && !postOK {
			continue
		}

		owner := postOwner
		if !postOK {
			owner = preOwner
		}
		if !owner.Equals(record.Taker) {
			c.Log.Debugf("skipping %s: owned by %s, not the taker", w.account, owner)
			continue
		}

		var symbol string
		var decimals uint8
		if info, ok := c.reg.SyntheticTokenInfo(w.mint); ok {
			symbol = info.Symbol
			decimals = info.Decimals
		}

		delta := new(big.Int).Sub(
			new(big.Int).SetUint64(postAmount),
			new(big.Int).SetUint64(preAmount),
		)

		changes = append(changes, BalanceChange{
			Mint:       w.mint,
			Symbol:     symbol,
			Owner:      owner,
			Account:    w.account,
			PreAmount:  preAmount,
			PostAmount: postAmount,
			Delta:      delta,
			Decimals:   decimals,
		})
	}
	return changes
}

// parseTokenAccount reads the owner and amount out of a raw token-account
// snapshot. Both the classic and the Token-2022 layouts put mint at 0:32,
// owner at 32:64 and the u64 amount at 64:72.
func parseTokenAccount(snap *accountSnapshot) (owner solana.PublicKey, amount uint64, ok bool) {
	if snap == nil || len(snap.Data) == 0 {
		return solana.PublicKey{}, 0, false
	}
	raw, err := base64.StdEncoding.DecodeString(snap.Data[0])
	if err != nil || len(raw) < 72 {
		return solana.PublicKey{}, 0, false
	}
	owner = solana.PublicKeyFromBytes(raw[32:64])
	amount = binary.LittleEndian.Uint64(raw[64:72])
	return owner, amount, true
}

// encodeTransaction serializes a transaction for the simulateBundle
// request. Unsigned skeletons get their signature slots zero-padded so the
// wire format stays valid (skipSigVerify makes the zeros acceptable).
func encodeTransaction(tx *solana.Transaction) (string, error) {
	padded := *tx
	padded.Signatures = append([]solana.Signature{}, tx.Signatures...)
	for len(padded.Signatures) < int(tx.Message.Header.NumRequiredSignatures) {
		padded.Signatures = append(padded.Signatures, solana.Signature{})
	}
	raw, err := padded.MarshalBinary()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func transactionHasProgram(tx *solana.Transaction, program solana.PublicKey) bool {
	keys := tx.Message.AccountKeys
	for _, ix := range tx.Message.Instructions {
		if int(ix.ProgramIDIndex) < len(keys) && keys[ix.ProgramIDIndex].Equals(program) {
			return true
		}
	}
	return false
}
