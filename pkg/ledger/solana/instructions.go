package solana

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/associated_token_account"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/types"

	"github.com/sammyshakes/solana-points-go/pkg/registry"
)

var (
	tokenProgram           = common.TokenProgramID
	token2022Program       = common.Token2022ProgramID
	associatedTokenProgram = common.SPLAssociatedTokenAccountProgramID
	systemProgram          = common.SystemProgramID
	rentSysvar             = common.SysVarRentPubkey
)

// resolveTokenProgram maps an optional program id to one of the two token
// programs.
func resolveTokenProgram(programID string) (common.PublicKey, error) {
	switch programID {
	case "", registry.TokenProgramID:
		return tokenProgram, nil
	case registry.Token2022ProgramID:
		return token2022Program, nil
	default:
		return common.PublicKey{}, fmt.Errorf("unsupported token program %s", programID)
	}
}

// findAssociatedTokenAddress derives the canonical token account of owner
// for mint under the given token program.
func findAssociatedTokenAddress(owner, mint, program common.PublicKey) (common.PublicKey, error) {
	address, _, err := common.FindProgramAddress(
		[][]byte{owner.Bytes(), program.Bytes(), mint.Bytes()},
		associatedTokenProgram,
	)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("failed to derive associated token account: %w", err)
	}
	return address, nil
}

// createAssociatedTokenAccountInstruction builds the associated token
// program Create instruction. The SDK helper always passes the classic
// token program, so Token-2022 accounts are built by hand.
func createAssociatedTokenAccountInstruction(payer, owner, mint, ata, program common.PublicKey) types.Instruction {
	if program == tokenProgram {
		return associated_token_account.Create(associated_token_account.CreateParam{
			Funder:                 payer,
			Owner:                  owner,
			Mint:                   mint,
			AssociatedTokenAccount: ata,
		})
	}
	return types.Instruction{
		ProgramID: associatedTokenProgram,
		Accounts: []types.AccountMeta{
			{PubKey: payer, IsSigner: true, IsWritable: true},
			{PubKey: ata, IsSigner: false, IsWritable: true},
			{PubKey: owner, IsSigner: false, IsWritable: false},
			{PubKey: mint, IsSigner: false, IsWritable: false},
			{PubKey: systemProgram, IsSigner: false, IsWritable: false},
			{PubKey: program, IsSigner: false, IsWritable: false},
			{PubKey: rentSysvar, IsSigner: false, IsWritable: false},
		},
		Data: []byte{},
	}
}

// onProgram retargets an SPL Token instruction. Token-2022 shares the
// instruction layouts used here.
func onProgram(instruction types.Instruction, program common.PublicKey) types.Instruction {
	instruction.ProgramID = program
	return instruction
}

type createMintInstructionsParams struct {
	Payer    common.PublicKey
	Mint     common.PublicKey
	Program  common.PublicKey
	Rent     uint64
	Decimals uint8
	Name     string
	Symbol   string
	URI      string
	WithMeta bool
}

func createMintInstructions(params createMintInstructionsParams) ([]types.Instruction, error) {
	instructions := []types.Instruction{
		system.CreateAccount(system.CreateAccountParam{
			From:     params.Payer,
			New:      params.Mint,
			Owner:    params.Program,
			Lamports: params.Rent,
			Space:    token.MintAccountSize,
		}),
		onProgram(token.InitializeMint(token.InitializeMintParam{
			Decimals:   params.Decimals,
			Mint:       params.Mint,
			MintAuth:   params.Payer,
			FreezeAuth: &params.Payer,
		}), params.Program),
	}

	if !params.WithMeta {
		return instructions, nil
	}

	metadataAccount, err := token_metadata.GetTokenMetaPubkey(params.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive metadata account: %w", err)
	}
	instructions = append(instructions, token_metadata.CreateMetadataAccountV3(
		token_metadata.CreateMetadataAccountV3Param{
			Metadata:                metadataAccount,
			Mint:                    params.Mint,
			MintAuthority:           params.Payer,
			UpdateAuthority:         params.Payer,
			Payer:                   params.Payer,
			UpdateAuthorityIsSigner: true,
			IsMutable:               true,
			Data: token_metadata.DataV2{
				Name:                 params.Name,
				Symbol:               params.Symbol,
				Uri:                  params.URI,
				SellerFeeBasisPoints: 0,
			},
		},
	))
	return instructions, nil
}
