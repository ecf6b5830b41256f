package gateway

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"

	"github.com/unifiedusdc/gateway-client/config/chain"
)

type InvalidAddressError struct {
	Address string
	Reason  string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address %s: %s", e.Address, e.Reason)
}

// ToCanonical converts a chain-native address into the uniform 32-byte
// representation used inside transfer specs. EVM addresses are left-padded
// with 12 zero bytes, Solana public keys pass through unchanged.
func ToCanonical(address string, family chain.Family) ([32]byte, error) {
	var out [32]byte
	switch family {
	case chain.FamilyEVM:
		if !common.IsHexAddress(address) {
			return out, &InvalidAddressError{Address: address, Reason: "not a valid hex address"}
		}
		copy(out[12:], common.HexToAddress(address).Bytes())
		return out, nil
	case chain.FamilySolana:
		key, err := solana.PublicKeyFromBase58(address)
		if err != nil {
			return out, &InvalidAddressError{Address: address, Reason: err.Error()}
		}
		copy(out[:], key.Bytes())
		return out, nil
	default:
		return out, &InvalidAddressError{Address: address, Reason: fmt.Sprintf("unknown chain family '%s'", family)}
	}
}

// FromCanonical converts a canonical 32-byte representation back into the
// chain-native address encoding. Round-trip with ToCanonical is lossless.
func FromCanonical(canonical [32]byte, family chain.Family) (string, error) {
	switch family {
	case chain.FamilyEVM:
		for _, b := range canonical[:12] {
			if b != 0 {
				return "", &InvalidAddressError{
					Address: fmt.Sprintf("%#x", canonical),
					Reason:  "non-zero padding in canonical EVM address",
				}
			}
		}
		return common.BytesToAddress(canonical[12:]).Hex(), nil
	case chain.FamilySolana:
		return solana.PublicKeyFromBytes(canonical[:]).String(), nil
	default:
		return "", &InvalidAddressError{
			Address: fmt.Sprintf("%#x", canonical),
			Reason:  fmt.Sprintf("unknown chain family '%s'", family),
		}
	}
}
