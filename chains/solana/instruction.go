package solana

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

// MINT_INSTRUCTION is the Gateway Minter program's mint discriminator,
// encoded as 2 little-endian bytes at the start of the instruction data.
const MINT_INSTRUCTION uint16 = 0x000c

// MintAccounts is the fixed, ordered account list the Gateway Minter
// program expects for a mint instruction. DestinationCaller equals Payer in
// the permissionless case.
type MintAccounts struct {
	Payer                 solana.PublicKey
	DestinationCaller     solana.PublicKey
	MinterConfig          solana.PublicKey
	SystemProgram         solana.PublicKey
	TokenProgram          solana.PublicKey
	AuxiliaryAccount      solana.PublicKey
	MinterProgram         solana.PublicKey
	SourceTokenAccount    solana.PublicKey
	RecipientTokenAccount solana.PublicKey
	StateAccount          solana.PublicKey
}

// EncodeMintData lays the instruction payload out exactly as the program
// parses it: the 2-byte LE discriminator followed by the attestation and the
// operator signature, each prefixed with its 4-byte LE length.
func EncodeMintData(attestation, operatorSignature []byte) []byte {
	data := make([]byte, 0, 2+4+len(attestation)+4+len(operatorSignature))

	data = binary.LittleEndian.AppendUint16(data, MINT_INSTRUCTION)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(attestation)))
	data = append(data, attestation...)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(operatorSignature)))
	data = append(data, operatorSignature...)

	return data
}

// NewMintInstruction builds the Gateway Minter mint instruction against the
// fixed account layout.
func NewMintInstruction(accounts MintAccounts, attestation, operatorSignature []byte) solana.Instruction {
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Payer, true, true),
		solana.NewAccountMeta(accounts.DestinationCaller, true, true),
		solana.NewAccountMeta(accounts.MinterConfig, false, false),
		solana.NewAccountMeta(accounts.SystemProgram, false, false),
		solana.NewAccountMeta(accounts.TokenProgram, false, false),
		solana.NewAccountMeta(accounts.AuxiliaryAccount, false, false),
		solana.NewAccountMeta(accounts.MinterProgram, false, false),
		solana.NewAccountMeta(accounts.SourceTokenAccount, true, false),
		solana.NewAccountMeta(accounts.RecipientTokenAccount, true, false),
		solana.NewAccountMeta(accounts.StateAccount, true, false),
	}

	return solana.NewInstruction(accounts.MinterProgram, metas, EncodeMintData(attestation, operatorSignature))
}
