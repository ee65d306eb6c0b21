package solana

import (
	"context"
	"strings"

	solanaclient "github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
)

type accountInfo struct {
	Lamports uint64
	Owner    string
	Data     []byte
}

type signatureStatus struct {
	Confirmed bool
	Err       any
}

// rpcAPI is the subset of the Solana JSON-RPC surface the driver needs.
type rpcAPI interface {
	GetBalance(ctx context.Context, address string) (uint64, error)
	RequestAirdrop(ctx context.Context, address string, lamports uint64) (string, error)
	GetSignatureStatus(ctx context.Context, signature string) (*signatureStatus, error)
	GetAccountInfo(ctx context.Context, address string) (accountInfo, bool, error)
	GetMinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error)
	GetLatestBlockhash(ctx context.Context) (string, error)
	SendTransaction(ctx context.Context, tx types.Transaction) (string, error)
}

type sdkRPC struct {
	client *solanaclient.Client
}

func newSDKRPC(endpoint string) *sdkRPC {
	return &sdkRPC{client: solanaclient.NewClient(endpoint)}
}

func (adapter *sdkRPC) GetBalance(ctx context.Context, address string) (uint64, error) {
	return adapter.client.GetBalance(ctx, address)
}

func (adapter *sdkRPC) RequestAirdrop(ctx context.Context, address string, lamports uint64) (string, error) {
	return adapter.client.RequestAirdrop(ctx, address, lamports)
}

func (adapter *sdkRPC) GetSignatureStatus(ctx context.Context, signature string) (*signatureStatus, error) {
	status, err := adapter.client.GetSignatureStatus(ctx, signature)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, nil
	}

	confirmed := false
	if status.ConfirmationStatus != nil {
		switch *status.ConfirmationStatus {
		case rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
			confirmed = true
		}
	}
	return &signatureStatus{Confirmed: confirmed, Err: status.Err}, nil
}

func (adapter *sdkRPC) GetAccountInfo(ctx context.Context, address string) (accountInfo, bool, error) {
	info, err := adapter.client.GetAccountInfo(ctx, address)
	if err != nil {
		if isMissingAccountError(err) {
			return accountInfo{}, false, nil
		}
		return accountInfo{}, false, err
	}
	if info.Owner == (common.PublicKey{}) && info.Lamports == 0 {
		return accountInfo{}, false, nil
	}
	return accountInfo{
		Lamports: info.Lamports,
		Owner:    info.Owner.ToBase58(),
		Data:     info.Data,
	}, true, nil
}

func (adapter *sdkRPC) GetMinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	return adapter.client.GetMinimumBalanceForRentExemption(ctx, size)
}

func (adapter *sdkRPC) GetLatestBlockhash(ctx context.Context) (string, error) {
	latest, err := adapter.client.GetLatestBlockhash(ctx)
	if err != nil {
		return "", err
	}
	return latest.Blockhash, nil
}

func (adapter *sdkRPC) SendTransaction(ctx context.Context, tx types.Transaction) (string, error) {
	return adapter.client.SendTransaction(ctx, tx)
}

func isMissingAccountError(err error) bool {
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "could not find account") ||
		strings.Contains(message, "account does not exist")
}
