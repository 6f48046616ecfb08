// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"bytes"
	"fmt"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/wallet/cbor"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	AddressHeaderTypeMask    = 0xF0
	AddressHeaderNetworkMask = 0x0F
	AddressHashSize          = Blake2b224Size

	AddressBaseSize       = 1 + 2*AddressHashSize
	AddressEnterpriseSize = 1 + AddressHashSize
	AddressRewardSize     = 1 + AddressHashSize

	AddressPrefixPayment = "addr"
	AddressPrefixStake   = "stake"
)

// AddressType identifies the layout of an address body. The value is the tag stored in the
// high nibble of the header byte
type AddressType uint8

const (
	AddressTypeBase       AddressType = 0b0000
	AddressTypeEnterprise AddressType = 0b0110
	AddressTypeReward     AddressType = 0b1110
)

type AddrKeyHash = Blake2b224

func (t AddressType) String() string {
	switch t {
	case AddressTypeBase:
		return "base"
	case AddressTypeEnterprise:
		return "enterprise"
	case AddressTypeReward:
		return "reward"
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// bodySize returns the expected length of an address body of this type
func (t AddressType) bodySize() (int, error) {
	switch t {
	case AddressTypeBase:
		return AddressBaseSize, nil
	case AddressTypeEnterprise:
		return AddressEnterpriseSize, nil
	case AddressTypeReward:
		return AddressRewardSize, nil
	}
	return 0, UnknownAddressTypeError{Type: t}
}

// HeaderByte returns the first byte of an address body for the given address type and network
func HeaderByte(addrType AddressType, networkInfo NetworkInfo) (byte, error) {
	switch addrType {
	case AddressTypeBase, AddressTypeEnterprise, AddressTypeReward:
		return (byte(addrType) << 4) | (networkInfo.NetworkId & AddressHeaderNetworkMask), nil
	}
	return 0, UnknownAddressTypeError{Type: addrType}
}

// Prefix returns the bech32 human-readable prefix for the given address type and network
func Prefix(addrType AddressType, network NetworkType) (string, error) {
	var ret string
	switch addrType {
	case AddressTypeBase, AddressTypeEnterprise:
		ret = AddressPrefixPayment
	case AddressTypeReward:
		ret = AddressPrefixStake
	default:
		return "", UnknownAddressTypeError{Type: addrType}
	}
	suffix, err := network.PrefixSuffix()
	if err != nil {
		return "", err
	}
	return ret + suffix, nil
}

// Address is an on-chain address: a bech32 prefix and the raw address body
type Address struct {
	prefix string
	body   []byte
}

// NewBaseAddress returns a base address built from the hashes of the payment and stake keys
func NewBaseAddress(
	paymentKey PublicKey,
	stakeKey PublicKey,
	network NetworkType,
) (Address, error) {
	return NewBaseAddressFromHashes(paymentKey.Hash(), stakeKey.Hash(), network)
}

// NewEnterpriseAddress returns an enterprise address built from the hash of the payment key
func NewEnterpriseAddress(
	paymentKey PublicKey,
	network NetworkType,
) (Address, error) {
	return NewEnterpriseAddressFromHash(paymentKey.Hash(), network)
}

// NewRewardAddress returns a reward address built from the hash of the stake key
func NewRewardAddress(
	stakeKey PublicKey,
	network NetworkType,
) (Address, error) {
	return NewRewardAddressFromHash(stakeKey.Hash(), network)
}

// NewAddressFromKeys returns an address of the requested type built from the provided keys. The
// stake key is ignored for enterprise addresses and the payment key is ignored for reward addresses
//
// Deprecated: use NewBaseAddress, NewEnterpriseAddress or NewRewardAddress
func NewAddressFromKeys(
	addrType AddressType,
	paymentKey PublicKey,
	stakeKey PublicKey,
	network NetworkType,
) (Address, error) {
	switch addrType {
	case AddressTypeBase:
		return NewBaseAddress(paymentKey, stakeKey, network)
	case AddressTypeEnterprise:
		return NewEnterpriseAddress(paymentKey, network)
	case AddressTypeReward:
		return NewRewardAddress(stakeKey, network)
	}
	return Address{}, UnknownAddressTypeError{Type: addrType}
}

func NewBaseAddressFromHashes(
	paymentHash AddrKeyHash,
	stakeHash AddrKeyHash,
	network NetworkType,
) (Address, error) {
	return AddressBody{
		Type:        AddressTypeBase,
		Network:     network,
		PaymentHash: &paymentHash,
		StakeHash:   &stakeHash,
	}.address()
}

func NewEnterpriseAddressFromHash(
	paymentHash AddrKeyHash,
	network NetworkType,
) (Address, error) {
	return AddressBody{
		Type:        AddressTypeEnterprise,
		Network:     network,
		PaymentHash: &paymentHash,
	}.address()
}

func NewRewardAddressFromHash(
	stakeHash AddrKeyHash,
	network NetworkType,
) (Address, error) {
	return AddressBody{
		Type:      AddressTypeReward,
		Network:   network,
		StakeHash: &stakeHash,
	}.address()
}

// ExtractRewardAddress returns the reward address that shares its stake key hash with the
// provided base address
func ExtractRewardAddress(baseAddr Address) (Address, error) {
	body, err := baseAddr.Body()
	if err != nil {
		return Address{}, InvalidArgumentError{
			Argument: "baseAddress",
			Reason:   err.Error(),
		}
	}
	if body.Type != AddressTypeBase {
		return Address{}, InvalidArgumentError{
			Argument: "baseAddress",
			Reason: fmt.Sprintf(
				"%s is not a base address",
				baseAddr.String(),
			),
		}
	}
	return NewRewardAddressFromHash(*body.StakeHash, body.Network)
}

// NewAddress returns an Address based on the provided bech32 address string
func NewAddress(addr string) (Address, error) {
	hrp, data, err := bech32.DecodeNoLimit(addr)
	if err != nil {
		return Address{}, err
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, err
	}
	body, err := DecodeAddressBody(decoded)
	if err != nil {
		return Address{}, err
	}
	ret, err := body.address()
	if err != nil {
		return Address{}, err
	}
	if hrp != ret.prefix {
		return Address{}, InvalidArgumentError{
			Argument: "address",
			Reason: fmt.Sprintf(
				"prefix %q does not match %s address on %s",
				hrp,
				body.Type,
				body.Network,
			),
		}
	}
	return ret, nil
}

// NewAddressFromBytes returns an Address based on the raw address body provided
func NewAddressFromBytes(addrBytes []byte) (Address, error) {
	body, err := DecodeAddressBody(addrBytes)
	if err != nil {
		return Address{}, err
	}
	return body.address()
}

// Prefix returns the bech32 human-readable prefix of the address
func (a Address) Prefix() string {
	return a.prefix
}

// Bytes returns a copy of the address body
func (a Address) Bytes() []byte {
	return bytes.Clone(a.body)
}

// Header returns the header byte of the address, or zero for an empty address
func (a Address) Header() byte {
	if len(a.body) == 0 {
		return 0
	}
	return a.body[0]
}

// Body returns the decoded address body
func (a Address) Body() (AddressBody, error) {
	return DecodeAddressBody(a.body)
}

// Type returns the address type encoded in the header byte
func (a Address) Type() (AddressType, error) {
	body, err := a.Body()
	if err != nil {
		return 0, err
	}
	return body.Type, nil
}

// Network returns the network encoded in the header byte
func (a Address) Network() (NetworkType, error) {
	body, err := a.Body()
	if err != nil {
		return 0, err
	}
	return body.Network, nil
}

// PaymentKeyHash returns the payment key hash, or an empty hash for reward addresses
func (a Address) PaymentKeyHash() AddrKeyHash {
	body, err := a.Body()
	if err != nil || body.PaymentHash == nil {
		return AddrKeyHash{}
	}
	return *body.PaymentHash
}

// StakeKeyHash returns the stake key hash, or an empty hash for enterprise addresses
func (a Address) StakeKeyHash() AddrKeyHash {
	body, err := a.Body()
	if err != nil || body.StakeHash == nil {
		return AddrKeyHash{}
	}
	return *body.StakeHash
}

// Equal reports whether both addresses have the same prefix and body
func (a Address) Equal(other Address) bool {
	return a.prefix == other.prefix && bytes.Equal(a.body, other.body)
}

// String returns the bech32-encoded version of the address
func (a Address) String() string {
	if len(a.body) == 0 {
		return ""
	}
	return bech32Encode(a.prefix, a.body)
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a Address) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(a.body)
}

func (a *Address) UnmarshalCBOR(cborData []byte) error {
	var tmpData []byte
	if _, err := cbor.Decode(cborData, &tmpData); err != nil {
		return err
	}
	tmpAddr, err := NewAddressFromBytes(tmpData)
	if err != nil {
		return err
	}
	*a = tmpAddr
	return nil
}

func (a Address) ToPlutusData() data.PlutusData {
	body, err := a.Body()
	if err != nil || body.PaymentHash == nil {
		// Reward addresses have no PlutusData representation
		return nil
	}
	paymentPd := data.NewConstr(
		0,
		body.PaymentHash.ToPlutusData(),
	)
	var stakePd data.PlutusData
	if body.StakeHash == nil {
		stakePd = data.NewConstr(1)
	} else {
		tmpCred := StakeCredential{
			CredType:   StakeCredentialTypeAddrKeyHash,
			Credential: body.StakeHash.Bytes(),
		}
		stakePd = data.NewConstr(
			0,
			data.NewConstr(
				0,
				tmpCred.ToPlutusData(),
			),
		)
	}
	return data.NewConstr(
		0,
		paymentPd,
		stakePd,
	)
}

// AddressBody is the structured form of an address body
type AddressBody struct {
	Type    AddressType
	Network NetworkType
	// PaymentHash is nil for reward addresses
	PaymentHash *AddrKeyHash
	// StakeHash is nil for enterprise addresses
	StakeHash *AddrKeyHash
}

// DecodeAddressBody splits a raw address body into its header fields and key hashes
func DecodeAddressBody(addrBytes []byte) (AddressBody, error) {
	if len(addrBytes) == 0 {
		return AddressBody{}, InvalidArgumentError{
			Argument: "address",
			Reason:   "empty address body",
		}
	}
	header := addrBytes[0]
	ret := AddressBody{
		Type: AddressType((header & AddressHeaderTypeMask) >> 4),
	}
	network, err := NetworkTypeFromId(header & AddressHeaderNetworkMask)
	if err != nil {
		return AddressBody{}, err
	}
	ret.Network = network
	expectedSize, err := ret.Type.bodySize()
	if err != nil {
		return AddressBody{}, err
	}
	if len(addrBytes) != expectedSize {
		return AddressBody{}, InvalidArgumentError{
			Argument: "address",
			Reason: fmt.Sprintf(
				"%s address body must be %d bytes, got %d",
				ret.Type,
				expectedSize,
				len(addrBytes),
			),
		}
	}
	payload := addrBytes[1:]
	switch ret.Type {
	case AddressTypeBase:
		paymentHash := NewBlake2b224(payload[:AddressHashSize])
		stakeHash := NewBlake2b224(payload[AddressHashSize:])
		ret.PaymentHash = &paymentHash
		ret.StakeHash = &stakeHash
	case AddressTypeEnterprise:
		paymentHash := NewBlake2b224(payload)
		ret.PaymentHash = &paymentHash
	case AddressTypeReward:
		stakeHash := NewBlake2b224(payload)
		ret.StakeHash = &stakeHash
	}
	return ret, nil
}

// Bytes encodes the address body
func (b AddressBody) Bytes() ([]byte, error) {
	info, err := b.Network.Info()
	if err != nil {
		return nil, err
	}
	header, err := HeaderByte(b.Type, info)
	if err != nil {
		return nil, err
	}
	expectedSize, err := b.Type.bodySize()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(make([]byte, 0, expectedSize))
	buf.WriteByte(header)
	if b.Type != AddressTypeReward {
		if b.PaymentHash == nil {
			return nil, InvalidArgumentError{
				Argument: "paymentHash",
				Reason:   fmt.Sprintf("required for %s address", b.Type),
			}
		}
		buf.Write(b.PaymentHash.Bytes())
	}
	if b.Type != AddressTypeEnterprise {
		if b.StakeHash == nil {
			return nil, InvalidArgumentError{
				Argument: "stakeHash",
				Reason:   fmt.Sprintf("required for %s address", b.Type),
			}
		}
		buf.Write(b.StakeHash.Bytes())
	}
	return buf.Bytes(), nil
}

func (b AddressBody) address() (Address, error) {
	body, err := b.Bytes()
	if err != nil {
		return Address{}, err
	}
	prefix, err := Prefix(b.Type, b.Network)
	if err != nil {
		return Address{}, err
	}
	return Address{
		prefix: prefix,
		body:   body,
	}, nil
}
