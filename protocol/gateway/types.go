package gateway

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const SpecVersion = 1

// Bytes32 is the canonical 32-byte value used for addresses and salts inside
// transfer specs. Serialized as a 0x-prefixed hex string on the wire.
type Bytes32 [32]byte

func (b Bytes32) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexutil.Encode(b[:]))
}

func (b *Bytes32) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := hexutil.Decode(s)
	if err != nil {
		return err
	}
	if len(raw) != 32 {
		return fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(b[:], raw)
	return nil
}

func (b Bytes32) IsZero() bool {
	return b == Bytes32{}
}

// TransferSpec is the cross-chain transfer declaration consumed by the
// Gateway. Field order matches the typed-data schema the Gateway Wallet
// verifies signatures against.
type TransferSpec struct {
	Version              uint32
	SourceDomain         uint32
	DestinationDomain    uint32
	SourceContract       Bytes32
	DestinationContract  Bytes32
	SourceToken          Bytes32
	DestinationToken     Bytes32
	SourceDepositor      Bytes32
	DestinationRecipient Bytes32
	SourceSigner         Bytes32
	// DestinationCaller restricts who may execute the destination mint.
	// Zero means the mint is permissionless.
	DestinationCaller Bytes32
	// Value is expressed in source-chain base units.
	Value    *big.Int
	Salt     Bytes32
	HookData []byte
}

type wireTransferSpec struct {
	Version              uint32  `json:"version"`
	SourceDomain         uint32  `json:"sourceDomain"`
	DestinationDomain    uint32  `json:"destinationDomain"`
	SourceContract       Bytes32 `json:"sourceContract"`
	DestinationContract  Bytes32 `json:"destinationContract"`
	SourceToken          Bytes32 `json:"sourceToken"`
	DestinationToken     Bytes32 `json:"destinationToken"`
	SourceDepositor      Bytes32 `json:"sourceDepositor"`
	DestinationRecipient Bytes32 `json:"destinationRecipient"`
	SourceSigner         Bytes32 `json:"sourceSigner"`
	DestinationCaller    Bytes32 `json:"destinationCaller"`
	Value                string  `json:"value"`
	Salt                 Bytes32 `json:"salt"`
	HookData             string  `json:"hookData"`
}

func (s TransferSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireTransferSpec{
		Version:              s.Version,
		SourceDomain:         s.SourceDomain,
		DestinationDomain:    s.DestinationDomain,
		SourceContract:       s.SourceContract,
		DestinationContract:  s.DestinationContract,
		SourceToken:          s.SourceToken,
		DestinationToken:     s.DestinationToken,
		SourceDepositor:      s.SourceDepositor,
		DestinationRecipient: s.DestinationRecipient,
		SourceSigner:         s.SourceSigner,
		DestinationCaller:    s.DestinationCaller,
		Value:                s.Value.String(),
		Salt:                 s.Salt,
		HookData:             hexutil.Encode(s.HookData),
	})
}

func (s *TransferSpec) UnmarshalJSON(data []byte) error {
	var w wireTransferSpec
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	value, ok := new(big.Int).SetString(w.Value, 10)
	if !ok {
		return fmt.Errorf("invalid transfer value '%s'", w.Value)
	}
	hookData, err := hexutil.Decode(w.HookData)
	if err != nil {
		return err
	}

	*s = TransferSpec{
		Version:              w.Version,
		SourceDomain:         w.SourceDomain,
		DestinationDomain:    w.DestinationDomain,
		SourceContract:       w.SourceContract,
		DestinationContract:  w.DestinationContract,
		SourceToken:          w.SourceToken,
		DestinationToken:     w.DestinationToken,
		SourceDepositor:      w.SourceDepositor,
		DestinationRecipient: w.DestinationRecipient,
		SourceSigner:         w.SourceSigner,
		DestinationCaller:    w.DestinationCaller,
		Value:                value,
		Salt:                 w.Salt,
		HookData:             hookData,
	}
	return nil
}

// BurnIntent wraps a transfer spec with its validity bounds. MaxBlockHeight
// has to exceed the source domain's reported burn-intent expiration height,
// otherwise the intent may expire on-chain before being consumed.
type BurnIntent struct {
	MaxBlockHeight *big.Int
	MaxFee         *big.Int
	Spec           TransferSpec
}

type wireBurnIntent struct {
	MaxBlockHeight string       `json:"maxBlockHeight"`
	MaxFee         string       `json:"maxFee"`
	Spec           TransferSpec `json:"spec"`
}

func (i BurnIntent) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireBurnIntent{
		MaxBlockHeight: i.MaxBlockHeight.String(),
		MaxFee:         i.MaxFee.String(),
		Spec:           i.Spec,
	})
}

func (i *BurnIntent) UnmarshalJSON(data []byte) error {
	var w wireBurnIntent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	maxBlockHeight, ok := new(big.Int).SetString(w.MaxBlockHeight, 10)
	if !ok {
		return fmt.Errorf("invalid maxBlockHeight '%s'", w.MaxBlockHeight)
	}
	maxFee, ok := new(big.Int).SetString(w.MaxFee, 10)
	if !ok {
		return fmt.Errorf("invalid maxFee '%s'", w.MaxFee)
	}

	*i = BurnIntent{
		MaxBlockHeight: maxBlockHeight,
		MaxFee:         maxFee,
		Spec:           w.Spec,
	}
	return nil
}

// SignedBurnIntent is created once per transfer attempt and never reused.
type SignedBurnIntent struct {
	Intent    BurnIntent    `json:"burnIntent"`
	Signature hexutil.Bytes `json:"signature"`
}

type Fees struct {
	Total *big.Int
	Token string
}

// TransferResult carries the attestation and operator signature needed for
// the destination mint. The pair is only valid together and expires roughly
// ten minutes after issuance.
type TransferResult struct {
	TransferID        string
	Attestation       []byte
	OperatorSignature []byte
	Fees              *Fees
	IssuedAt          time.Time
}

type DomainInfo struct {
	Domain                     uint32 `json:"domain"`
	ProcessedHeight            uint64 `json:"processedHeight"`
	BurnIntentExpirationHeight uint64 `json:"burnIntentExpirationHeight"`
}

type DepositSource struct {
	Domain    uint32  `json:"domain"`
	Depositor Bytes32 `json:"depositor"`
}

type DomainBalance struct {
	Domain  uint32
	Balance *big.Int
}
