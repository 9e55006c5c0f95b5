package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// fakeWalletServer answers each JSON-RPC method from a canned result and
// records the calls it saw.
func fakeWalletServer(t *testing.T, results map[string]any) (*httptest.Server, *[]rpcRequest) {
	t.Helper()
	var calls []rpcRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		calls = append(calls, req)

		result, ok := results[req.Method]
		require.True(t, ok, "unexpected method %s", req.Method)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		}))
	}))
	return server, &calls
}

func TestBridge_NoProviderConfigured(t *testing.T) {
	bridge := NewBridge(&config.RuntimeConfig{})

	_, err := bridge.Account(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoWalletProvider)
}

func TestBridge_Account(t *testing.T) {
	server, _ := fakeWalletServer(t, map[string]any{
		"eth_accounts": []string{"0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"},
	})
	defer server.Close()

	bridge := NewBridge(&config.RuntimeConfig{WalletRPC: server.URL})

	account, err := bridge.Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", account)
}

func TestBridge_AccountRequestsConnection(t *testing.T) {
	returned := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		result := []string{}
		if req.Method == "eth_requestAccounts" {
			returned = true
			result = []string{"0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"}
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		}))
	}))
	defer server.Close()

	bridge := NewBridge(&config.RuntimeConfig{WalletRPC: server.URL})

	account, err := bridge.Account(context.Background())
	require.NoError(t, err)
	assert.True(t, returned)
	assert.NotEmpty(t, account)
}

func TestBridge_NoAccountConnected(t *testing.T) {
	server, _ := fakeWalletServer(t, map[string]any{
		"eth_accounts":        []string{},
		"eth_requestAccounts": []string{},
	})
	defer server.Close()

	bridge := NewBridge(&config.RuntimeConfig{WalletRPC: server.URL})

	_, err := bridge.Account(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoAccount)
}

func TestBridge_SwitchChain(t *testing.T) {
	server, calls := fakeWalletServer(t, map[string]any{
		"wallet_switchEthereumChain": nil,
	})
	defer server.Close()

	bridge := NewBridge(&config.RuntimeConfig{WalletRPC: server.URL})

	require.NoError(t, bridge.SwitchChain(context.Background(), "eip155:8453"))

	require.Len(t, *calls, 1)
	require.Len(t, (*calls)[0].Params, 1)
	assert.JSONEq(t, `{"chainId":"0x2105"}`, string((*calls)[0].Params[0]))
}

func TestBridge_SwitchChainRejectsBadID(t *testing.T) {
	server, _ := fakeWalletServer(t, nil)
	defer server.Close()

	bridge := NewBridge(&config.RuntimeConfig{WalletRPC: server.URL})

	err := bridge.SwitchChain(context.Background(), "solana:mainnet")
	assert.ErrorIs(t, err, domain.ErrInvalidChainID)
}

func TestBridge_SendTransaction(t *testing.T) {
	server, calls := fakeWalletServer(t, map[string]any{
		"eth_sendTransaction": "0xdeadbeef",
	})
	defer server.Close()

	bridge := NewBridge(&config.RuntimeConfig{WalletRPC: server.URL})

	hash, err := bridge.SendTransaction(
		context.Background(),
		"0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266",
		"0x4200000000000000000000000000000000000021",
		[]byte{0x01, 0x02},
	)
	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeef", hash)

	require.Len(t, *calls, 1)
	var tx map[string]string
	require.NoError(t, json.Unmarshal((*calls)[0].Params[0], &tx))
	assert.Equal(t, "0x4200000000000000000000000000000000000021", tx["to"])
	assert.Equal(t, "0x0102", tx["data"])
}

func TestBridge_RPCFailureWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"error":   map[string]any{"code": 4001, "message": "user rejected"},
		}))
	}))
	defer server.Close()

	bridge := NewBridge(&config.RuntimeConfig{WalletRPC: server.URL})

	_, err := bridge.SendTransaction(context.Background(), "0xabc", "0xdef", nil)

	var werr *domain.WalletError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "send transaction", werr.Op)
}
