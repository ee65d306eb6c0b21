package solana

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
)

type fakeRPC struct {
	mu sync.Mutex

	accounts     map[string]accountInfo
	balances     map[string]uint64
	statuses     map[string]*signatureStatus
	pendingPolls int
	blockhash    string
	sent         []types.Transaction
	sendErr      error
	statusCalls  int
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{
		accounts:  map[string]accountInfo{},
		balances:  map[string]uint64{},
		statuses:  map[string]*signatureStatus{},
		blockhash: types.NewAccount().PublicKey.ToBase58(),
	}
}

func (fake *fakeRPC) GetBalance(ctx context.Context, address string) (uint64, error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.balances[address], nil
}

func (fake *fakeRPC) RequestAirdrop(ctx context.Context, address string, lamports uint64) (string, error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.balances[address] += lamports
	return fake.recordSignature(), nil
}

func (fake *fakeRPC) GetSignatureStatus(ctx context.Context, signature string) (*signatureStatus, error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.statusCalls++
	if fake.pendingPolls > 0 {
		fake.pendingPolls--
		return nil, nil
	}
	return fake.statuses[signature], nil
}

func (fake *fakeRPC) GetAccountInfo(ctx context.Context, address string) (accountInfo, bool, error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	info, found := fake.accounts[address]
	return info, found, nil
}

func (fake *fakeRPC) GetMinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	return 1_461_600, nil
}

func (fake *fakeRPC) GetLatestBlockhash(ctx context.Context) (string, error) {
	return fake.blockhash, nil
}

func (fake *fakeRPC) SendTransaction(ctx context.Context, tx types.Transaction) (string, error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	if fake.sendErr != nil {
		return "", fake.sendErr
	}
	fake.sent = append(fake.sent, tx)
	return fake.recordSignature(), nil
}

func (fake *fakeRPC) recordSignature() string {
	signature := fmt.Sprintf("sig-%d", len(fake.statuses)+1)
	fake.statuses[signature] = &signatureStatus{Confirmed: true}
	return signature
}

func (fake *fakeRPC) lastProgramIDs() []string {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	if len(fake.sent) == 0 {
		return nil
	}
	message := fake.sent[len(fake.sent)-1].Message
	programs := make([]string, 0, len(message.Instructions))
	for _, instruction := range message.Instructions {
		programs = append(programs, message.Accounts[instruction.ProgramIDIndex].ToBase58())
	}
	return programs
}

func (fake *fakeRPC) putMint(mint common.PublicKey, program common.PublicKey, authority common.PublicKey, supply uint64, decimals uint8) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.accounts[mint.ToBase58()] = accountInfo{
		Lamports: 1_461_600,
		Owner:    program.ToBase58(),
		Data:     encodeMint(authority, supply, decimals),
	}
}

func (fake *fakeRPC) putTokenAccount(address common.PublicKey, program common.PublicKey, mint common.PublicKey, owner common.PublicKey, amount uint64) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.accounts[address.ToBase58()] = accountInfo{
		Lamports: 2_039_280,
		Owner:    program.ToBase58(),
		Data:     encodeTokenAccount(mint, owner, amount),
	}
}

func encodeMint(authority common.PublicKey, supply uint64, decimals uint8) []byte {
	data := make([]byte, 82)
	binary.LittleEndian.PutUint32(data[0:4], 1)
	copy(data[4:36], authority.Bytes())
	binary.LittleEndian.PutUint64(data[36:44], supply)
	data[44] = decimals
	data[45] = 1
	return data
}

func encodeTokenAccount(mint common.PublicKey, owner common.PublicKey, amount uint64) []byte {
	data := make([]byte, 165)
	copy(data[0:32], mint.Bytes())
	copy(data[32:64], owner.Bytes())
	binary.LittleEndian.PutUint64(data[64:72], amount)
	data[108] = 1
	return data
}
