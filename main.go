package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/AlekSi/pointer"
	ag_binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/joho/godotenv"
	"github.com/mr-tron/base58"

	gmsimgo "github.com/franco-bianco/gmsim-go/gmsim-go"
	"github.com/franco-bianco/gmsim-go/registry"
)

type simulateResp struct {
	RequiresMint bool                  `json:"requiresMint"`
	Trade        *gmsimgo.TradeRecord  `json:"trade,omitempty"`
	Bundle       *gmsimgo.BundleResult `json:"bundle,omitempty"`
}

type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSONMaybePretty(w http.ResponseWriter, status int, v interface{}, pretty bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	_ = enc.Encode(v)
}

// decodeRawTransaction accepts a base64- or base58-encoded wire
// transaction.
func decodeRawTransaction(s string) (*solana.Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		raw, err = base58.Decode(s)
		if err != nil {
			return nil, errors.New("transaction is neither valid base64 nor base58")
		}
	}
	return solana.TransactionFromDecoder(ag_binary.NewBinDecoder(raw))
}

func main() {
	_ = godotenv.Load()

	rpcURL := os.Getenv("SOLANA_RPC_URL")
	if rpcURL == "" {
		rpcURL = "https://api.mainnet-beta.solana.com"
	}
	bundleURL := os.Getenv("BUNDLE_RPC_URL")
	if bundleURL == "" {
		bundleURL = rpcURL
	}
	const rpcTimeout = 20 * time.Second

	reg := registry.Mainnet()
	client := rpc.New(rpcURL)
	bundles := gmsimgo.NewBundleClient(bundleURL, reg)

	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`
<!doctype html>
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>GM Bundle Simulator</title>
<div style="font: 16px system-ui; max-width: 900px; margin: 40px auto; line-height:1.5;">
  <h1 style="margin:0 0 16px;">GM trade bundle simulation (browser)</h1>
  <form action="/simulate" method="get">
    <label>Signature<br>
      <input name="signature" style="width: 100%; padding: 8px;" placeholder="Paste a transaction signature" autofocus>
    </label>
    <div style="margin: 12px 0;">
      <label><input type="checkbox" name="pretty" value="1" checked> pretty</label>
    </div>
    <button type="submit" style="padding: 8px 14px;">Simulate</button>
  </form>
  <p style="margin-top: 24px; color:#666;">This form issues a GET to <code>/simulate?signature=...&pretty=1</code>.</p>
</div>
`))
	})

	// Classify a transaction and, for mint-required trades, run the
	// two-transaction bundle simulation. Accepts POST JSON
	// {"signature": ...} or {"transaction": <base64|base58>}, or GET query
	// params of the same names.
	http.HandleFunc("/simulate", func(w http.ResponseWriter, r *http.Request) {
		pretty := r.URL.Query().Get("pretty") == "1" || r.URL.Query().Get("pretty") == "true"

		var sigStr, rawTx string
		switch r.Method {
		case http.MethodPost:
			var req struct {
				Signature   string `json:"signature"`
				Transaction string `json:"transaction"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeJSONMaybePretty(w, http.StatusBadRequest, apiError{Error: "bad_request", Details: "invalid JSON body"}, pretty)
				return
			}
			sigStr, rawTx = req.Signature, req.Transaction
		case http.MethodGet:
			sigStr = r.URL.Query().Get("signature")
			rawTx = r.URL.Query().Get("transaction")
		default:
			writeJSONMaybePretty(w, http.StatusMethodNotAllowed, apiError{Error: "method_not_allowed"}, pretty)
			return
		}
		if sigStr == "" && rawTx == "" {
			writeJSONMaybePretty(w, http.StatusBadRequest, apiError{Error: "bad_request", Details: "signature or transaction is required"}, pretty)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
		defer cancel()

		var (
			tx     *solana.Transaction
			result *gmsimgo.ClassificationResult
			err    error
		)
		if rawTx != "" {
			tx, err = decodeRawTransaction(rawTx)
			if err != nil {
				writeJSONMaybePretty(w, http.StatusBadRequest, apiError{Error: "bad_request", Details: err.Error()}, pretty)
				return
			}
			result, err = gmsimgo.Classify(tx, reg)
		} else {
			sig, sigErr := solana.SignatureFromBase58(sigStr)
			if sigErr != nil {
				writeJSONMaybePretty(w, http.StatusBadRequest, apiError{Error: "bad_request", Details: "invalid signature (base58)"}, pretty)
				return
			}
			fetched, fetchErr := client.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
				Commitment:                     rpc.CommitmentConfirmed,
				MaxSupportedTransactionVersion: pointer.ToUint64(0),
			})
			if fetchErr != nil {
				writeJSONMaybePretty(w, http.StatusBadGateway, apiError{Error: "rpc_error", Details: fetchErr.Error()}, pretty)
				return
			}
			if fetched == nil {
				writeJSONMaybePretty(w, http.StatusNotFound, apiError{Error: "not_found", Details: "transaction not found"}, pretty)
				return
			}
			tx, err = fetched.Transaction.GetTransaction()
			if err != nil {
				writeJSONMaybePretty(w, http.StatusUnprocessableEntity, apiError{Error: "decode_error", Details: err.Error()}, pretty)
				return
			}
			result, err = gmsimgo.ClassifyWithMeta(tx, fetched.Meta, reg)
		}

		if err != nil {
			var unauthorized *gmsimgo.UnauthorizedMakerError
			switch {
			case errors.As(err, &unauthorized):
				// Hard rejection: do not fall back to normal simulation.
				writeJSONMaybePretty(w, http.StatusForbidden, apiError{Error: "unauthorized_maker", Details: unauthorized.Error()}, pretty)
			case errors.Is(err, gmsimgo.ErrNotFillInstruction) || errors.Is(err, gmsimgo.ErrNotSyntheticTrade):
				writeJSONMaybePretty(w, http.StatusOK, simulateResp{RequiresMint: false}, pretty)
			default:
				writeJSONMaybePretty(w, http.StatusUnprocessableEntity, apiError{Error: "classify_error", Details: err.Error()}, pretty)
			}
			return
		}

		resp := simulateResp{RequiresMint: result.RequiresMint, Trade: result.Trade}
		if !result.RequiresMint {
			writeJSONMaybePretty(w, http.StatusOK, resp, pretty)
			return
		}

		recent, err := client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
		if err != nil {
			writeJSONMaybePretty(w, http.StatusBadGateway, apiError{Error: "rpc_error", Details: err.Error()}, pretty)
			return
		}

		mintTx, err := gmsimgo.BuildMintTransaction(result.Trade, recent.Value.Blockhash)
		if err != nil {
			writeJSONMaybePretty(w, http.StatusInternalServerError, apiError{Error: "build_error", Details: err.Error()}, pretty)
			return
		}

		bundle, err := bundles.SimulateBundle(ctx, mintTx, tx, result.Trade)
		if err != nil {
			writeJSONMaybePretty(w, http.StatusBadGateway, apiError{Error: "simulate_error", Details: err.Error()}, pretty)
			return
		}
		resp.Bundle = bundle

		writeJSONMaybePretty(w, http.StatusOK, resp, pretty)
	})

	addr := ":8080"
	srv := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("listening on http://%s (rpc=%s, bundle=%s)", addr, rpcURL, bundleURL)
	log.Fatal(srv.ListenAndServe())
}
