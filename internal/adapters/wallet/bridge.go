// Package wallet bridges the workflow to an external wallet over JSON-RPC.
package wallet

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// Bridge implements usecase.WalletBridge against a wallet's JSON-RPC
// endpoint. The wallet holds the keys; the bridge only asks it to switch
// networks and sign.
type Bridge struct {
	rpcURL string

	mu     sync.Mutex
	client *rpc.Client
}

// NewBridge creates a new wallet bridge
func NewBridge(cfg *config.RuntimeConfig) *Bridge {
	return &Bridge{rpcURL: cfg.WalletRPC}
}

// connect dials the wallet endpoint on first use.
func (b *Bridge) connect(ctx context.Context) (*rpc.Client, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.client != nil {
		return b.client, nil
	}
	if b.rpcURL == "" {
		return nil, domain.ErrNoWalletProvider
	}

	client, err := rpc.DialContext(ctx, b.rpcURL)
	if err != nil {
		return nil, &domain.WalletError{Op: "connect", Err: err}
	}
	b.client = client
	return client, nil
}

// Account returns the wallet's active account, asking the wallet to
// connect one when none is exposed yet.
func (b *Bridge) Account(ctx context.Context) (string, error) {
	client, err := b.connect(ctx)
	if err != nil {
		return "", err
	}

	var accounts []string
	if err := client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return "", &domain.WalletError{Op: "accounts", Err: err}
	}
	if len(accounts) == 0 {
		if err := client.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
			return "", &domain.WalletError{Op: "request accounts", Err: err}
		}
	}
	if len(accounts) == 0 {
		return "", domain.ErrNoAccount
	}
	return accounts[0], nil
}

// SwitchChain asks the wallet to move to the given eip155 network.
func (b *Bridge) SwitchChain(ctx context.Context, chainID string) error {
	client, err := b.connect(ctx)
	if err != nil {
		return err
	}

	id, err := domain.ParseEIP155(chainID)
	if err != nil {
		return err
	}

	params := struct {
		ChainID string `json:"chainId"`
	}{ChainID: fmt.Sprintf("0x%x", id)}

	if err := client.CallContext(ctx, nil, "wallet_switchEthereumChain", params); err != nil {
		return &domain.WalletError{Op: "switch chain", Err: err}
	}
	return nil
}

// SendTransaction asks the wallet to sign and broadcast, returning the
// transaction hash. Gas and nonce are left to the wallet.
func (b *Bridge) SendTransaction(ctx context.Context, from, to string, data []byte) (string, error) {
	client, err := b.connect(ctx)
	if err != nil {
		return "", err
	}

	tx := struct {
		From string `json:"from"`
		To   string `json:"to"`
		Data string `json:"data"`
	}{
		From: from,
		To:   to,
		Data: hexutil.Encode(data),
	}

	var hash string
	if err := client.CallContext(ctx, &hash, "eth_sendTransaction", tx); err != nil {
		return "", &domain.WalletError{Op: "send transaction", Err: err}
	}
	return hash, nil
}

var _ usecase.WalletBridge = (*Bridge)(nil)
