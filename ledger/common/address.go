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
	"errors"
	"fmt"
	"hash/crc32"
	"slices"
	"strings"

	"github.com/blinklabs-io/workbench/cbor"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	AddressHeaderTypeMask    = 0xF0
	AddressHeaderNetworkMask = 0x0F
	AddressHashSize          = 28

	AddressNetworkTestnet = 0
	AddressNetworkMainnet = 1

	AddressTypeKeyKey        = 0b0000
	AddressTypeScriptKey     = 0b0001
	AddressTypeKeyScript     = 0b0010
	AddressTypeScriptScript  = 0b0011
	AddressTypeKeyPointer    = 0b0100
	AddressTypeScriptPointer = 0b0101
	AddressTypeKeyNone       = 0b0110
	AddressTypeScriptNone    = 0b0111
	AddressTypeByron         = 0b1000
	AddressTypeNoneKey       = 0b1110
	AddressTypeNoneScript    = 0b1111

	ByronAddressTypePubkey = 0
	ByronAddressTypeScript = 1
	ByronAddressTypeRedeem = 2
)

var ErrInvalidAddress = errors.New("invalid address")

type Address struct {
	addressType      uint8
	networkId        uint8
	paymentPayload   AddressPayload
	stakingPayload   AddressPayload
	extraData        []byte
	byronAddressType uint64
	byronAddressAttr ByronAddressAttributes
}

// NewAddress returns an Address based on the provided bech32/base58 address string.
// Mixed case input is assumed to be a base58 Byron address, anything else is decoded
// as bech32
func NewAddress(addr string) (Address, error) {
	var decoded []byte
	if strings.ToLower(addr) != addr {
		decoded = base58.Decode(addr)
	} else {
		_, data, err := bech32.DecodeNoLimit(addr)
		if err != nil {
			return Address{}, err
		}
		decoded, err = bech32.ConvertBits(data, 5, 8, false)
		if err != nil {
			return Address{}, err
		}
	}
	return NewAddressFromBytes(decoded)
}

// NewAddressFromBytes returns an Address based on the raw bytes provided
func NewAddressFromBytes(addrBytes []byte) (Address, error) {
	var ret Address
	if err := ret.populateFromBytes(addrBytes); err != nil {
		return Address{}, err
	}
	return ret, nil
}

func (a *Address) populateFromBytes(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	// Extract header info
	header := data[0]
	a.addressType = (header & AddressHeaderTypeMask) >> 4
	a.networkId = header & AddressHeaderNetworkMask
	if a.addressType == AddressTypeByron {
		return a.populateByron(data)
	}
	// Payment payload
	payload := data[1:]
	switch a.addressType {
	case AddressTypeKeyKey, AddressTypeKeyScript, AddressTypeKeyPointer, AddressTypeKeyNone:
		if len(payload) < AddressHashSize {
			return fmt.Errorf("%w: payment key hash too small", ErrInvalidAddress)
		}
		a.paymentPayload = AddressPayloadKeyHash{
			Hash: AddrKeyHash(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	case AddressTypeScriptKey, AddressTypeScriptScript, AddressTypeScriptPointer, AddressTypeScriptNone:
		if len(payload) < AddressHashSize {
			return fmt.Errorf("%w: payment script hash too small", ErrInvalidAddress)
		}
		a.paymentPayload = AddressPayloadScriptHash{
			Hash: ScriptHash(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	case AddressTypeNoneKey, AddressTypeNoneScript:
	default:
		return fmt.Errorf(
			"%w: unknown address type 0b%04b",
			ErrInvalidAddress,
			a.addressType,
		)
	}
	// Staking payload
	switch a.addressType {
	case AddressTypeKeyKey, AddressTypeScriptKey, AddressTypeNoneKey:
		if len(payload) < AddressHashSize {
			return fmt.Errorf("%w: staking key hash too small", ErrInvalidAddress)
		}
		a.stakingPayload = AddressPayloadKeyHash{
			Hash: AddrKeyHash(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	case AddressTypeKeyScript, AddressTypeScriptScript, AddressTypeNoneScript:
		if len(payload) < AddressHashSize {
			return fmt.Errorf("%w: staking script hash too small", ErrInvalidAddress)
		}
		a.stakingPayload = AddressPayloadScriptHash{
			Hash: ScriptHash(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	case AddressTypeKeyPointer, AddressTypeScriptPointer:
		var tmpPointer AddressPayloadPointer
		n, err := tmpPointer.decode(payload)
		if err != nil {
			return fmt.Errorf("%w: bad pointer: %w", ErrInvalidAddress, err)
		}
		a.stakingPayload = tmpPointer
		payload = payload[n:]
	}
	// Some early addresses on chain carry trailing garbage that must round-trip
	if len(payload) > 0 {
		a.extraData = slices.Clone(payload)
	}
	return nil
}

func (a *Address) populateByron(data []byte) error {
	var rawAddr byronAddress
	if err := cbor.DecodeFull(data, &rawAddr); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	payloadBytes := rawAddr.Payload.Bytes()
	if crc32.ChecksumIEEE(payloadBytes) != rawAddr.Checksum {
		return fmt.Errorf(
			"%w: Byron address checksum does not match",
			ErrInvalidAddress,
		)
	}
	var byronAddr byronAddressPayload
	if err := cbor.DecodeFull(payloadBytes, &byronAddr); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if len(byronAddr.Hash) != AddressHashSize {
		return fmt.Errorf(
			"%w: Byron address hash is not expected length",
			ErrInvalidAddress,
		)
	}
	if byronAddr.AddrType > ByronAddressTypeRedeem {
		return fmt.Errorf(
			"%w: unknown Byron address type %d",
			ErrInvalidAddress,
			byronAddr.AddrType,
		)
	}
	a.byronAddressType = byronAddr.AddrType
	a.byronAddressAttr = byronAddr.Attr
	a.paymentPayload = AddressPayloadKeyHash{
		Hash: AddrKeyHash(byronAddr.Hash),
	}
	return nil
}

func (a *Address) UnmarshalCBOR(data []byte) error {
	majorType, err := cbor.MajorType(data)
	if err != nil {
		return err
	}
	// Shelley and later addresses are wrapped in a bytestring. Byron outputs embed
	// the address structure directly
	if majorType == cbor.CborTypeByteString {
		tmpData := []byte{}
		if _, err := cbor.Decode(data, &tmpData); err != nil {
			return err
		}
		return a.populateFromBytes(tmpData)
	}
	if majorType != cbor.CborTypeArray {
		return fmt.Errorf(
			"%w: unexpected CBOR major type 0x%x",
			ErrInvalidAddress,
			majorType,
		)
	}
	return a.populateFromBytes(data)
}

func (a *Address) MarshalCBOR() ([]byte, error) {
	addrBytes, err := a.Bytes()
	if err != nil {
		return nil, err
	}
	if a.addressType == AddressTypeByron {
		return addrBytes, nil
	}
	return cbor.Encode(addrBytes)
}

// NetworkId returns the network ID for the address. Byron addresses only carry a
// network magic attribute outside of mainnet
func (a Address) NetworkId() uint {
	if a.addressType == AddressTypeByron {
		if a.byronAddressAttr.Network != nil {
			return AddressNetworkTestnet
		}
		return AddressNetworkMainnet
	}
	return uint(a.networkId)
}

// Network returns the network the address belongs to. Byron addresses carry the
// network magic in their attributes, and its absence means mainnet
func (a Address) Network() Network {
	if a.addressType == AddressTypeByron {
		if a.byronAddressAttr.Network != nil {
			return NetworkByNetworkMagic(*a.byronAddressAttr.Network)
		}
		return NetworkMainnet
	}
	return NetworkById(a.networkId)
}

func (a Address) Type() uint8 {
	return a.addressType
}

func (a Address) IsByron() bool {
	return a.addressType == AddressTypeByron
}

func (a Address) ByronType() uint64 {
	return a.byronAddressType
}

// PaymentKeyHash returns the payment credential hash, or the zero hash if the address
// has no payment part
func (a Address) PaymentKeyHash() Blake2b224 {
	switch p := a.paymentPayload.(type) {
	case AddressPayloadKeyHash:
		return p.Hash
	case AddressPayloadScriptHash:
		return p.Hash
	}
	return Blake2b224{}
}

func (a Address) generateHRP() string {
	var ret string
	if a.addressType == AddressTypeNoneKey ||
		a.addressType == AddressTypeNoneScript {
		ret = "stake"
	} else {
		ret = "addr"
	}
	// Add test_ suffix if not mainnet
	if a.networkId != AddressNetworkMainnet {
		ret += "_test"
	}
	return ret
}

// Bytes returns the underlying bytes for the address
func (a Address) Bytes() ([]byte, error) {
	if a.addressType == AddressTypeByron {
		tmpPayload := []any{
			a.PaymentKeyHash().Bytes(),
			&a.byronAddressAttr,
			a.byronAddressType,
		}
		rawPayload, err := cbor.Encode(tmpPayload)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to encode Byron address payload: %w",
				err,
			)
		}
		tmpData := []any{
			cbor.WrappedCbor(rawPayload),
			crc32.ChecksumIEEE(rawPayload),
		}
		ret, err := cbor.Encode(tmpData)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to encode Byron address data: %w",
				err,
			)
		}
		return ret, nil
	}
	buf := bytes.NewBuffer(nil)
	header := (a.addressType << 4) | (a.networkId & AddressHeaderNetworkMask)
	buf.WriteByte(header)
	switch p := a.paymentPayload.(type) {
	case AddressPayloadKeyHash:
		buf.Write(p.Hash.Bytes())
	case AddressPayloadScriptHash:
		buf.Write(p.Hash.Bytes())
	}
	switch p := a.stakingPayload.(type) {
	case AddressPayloadKeyHash:
		buf.Write(p.Hash.Bytes())
	case AddressPayloadScriptHash:
		buf.Write(p.Hash.Bytes())
	case AddressPayloadPointer:
		buf.Write(p.encode())
	}
	buf.Write(a.extraData)
	return buf.Bytes(), nil
}

// String returns the bech32-encoded version of the address, or base58 for Byron addresses
func (a Address) String() string {
	data, err := a.Bytes()
	if err != nil {
		panic(fmt.Sprintf("failed to get address bytes: %v", err))
	}
	if a.addressType == AddressTypeByron {
		return base58.Encode(data)
	}
	return encodeBech32(a.generateHRP(), data)
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

type byronAddress struct {
	cbor.StructAsArray
	Payload  cbor.WrappedCbor
	Checksum uint32
}

type byronAddressPayload struct {
	cbor.StructAsArray
	Hash     []byte
	Attr     ByronAddressAttributes
	AddrType uint64
}

type ByronAddressAttributes struct {
	Payload []byte
	Network *uint32
}

func (a *ByronAddressAttributes) UnmarshalCBOR(data []byte) error {
	var tmpData struct {
		Payload    []byte `cbor:"1,keyasint,omitempty"`
		NetworkRaw []byte `cbor:"2,keyasint,omitempty"`
	}
	if _, err := cbor.Decode(data, &tmpData); err != nil {
		return err
	}
	a.Payload = tmpData.Payload
	if len(tmpData.NetworkRaw) > 0 {
		var tmpNetwork uint32
		if err := cbor.DecodeFull(tmpData.NetworkRaw, &tmpNetwork); err != nil {
			return err
		}
		a.Network = &tmpNetwork
	}
	return nil
}

func (a *ByronAddressAttributes) MarshalCBOR() ([]byte, error) {
	tmpData := make(map[int]any)
	if len(a.Payload) > 0 {
		tmpData[1] = a.Payload
	}
	if a.Network != nil {
		networkRaw, err := cbor.Encode(a.Network)
		if err != nil {
			return nil, err
		}
		tmpData[2] = networkRaw
	}
	return cbor.Encode(tmpData)
}

type AddressPayload interface {
	isAddressPayload()
}

type AddressPayloadKeyHash struct {
	Hash AddrKeyHash
}

func (AddressPayloadKeyHash) isAddressPayload() {}

type AddressPayloadScriptHash struct {
	Hash ScriptHash
}

func (AddressPayloadScriptHash) isAddressPayload() {}

type AddressPayloadPointer struct {
	Slot      uint64
	TxIndex   uint64
	CertIndex uint64
}

func (AddressPayloadPointer) isAddressPayload() {}

// decode reads the three variable-length integers of a pointer and returns the number
// of bytes consumed
func (a *AddressPayloadPointer) decode(data []byte) (int, error) {
	readVarUint := func(buf *bytes.Reader) (uint64, error) {
		var ret uint64
		for {
			byt, err := buf.ReadByte()
			if err != nil {
				return 0, err
			}
			ret = (ret << 7) | uint64(byt&0x7F)
			if (byt & 0x80) == 0 {
				return ret, nil
			}
		}
	}
	buf := bytes.NewReader(data)
	var err error
	if a.Slot, err = readVarUint(buf); err != nil {
		return 0, err
	}
	if a.TxIndex, err = readVarUint(buf); err != nil {
		return 0, err
	}
	if a.CertIndex, err = readVarUint(buf); err != nil {
		return 0, err
	}
	return len(data) - buf.Len(), nil
}

func (a AddressPayloadPointer) encode() []byte {
	writeVarUint := func(buf *bytes.Buffer, val uint64) {
		data := []byte{
			byte(val & 0x7F),
		}
		val /= 128
		for val > 0 {
			data = append(
				data,
				byte((val&0x7F)|0x80),
			)
			val /= 128
		}
		slices.Reverse(data)
		buf.Write(data)
	}
	buf := bytes.NewBuffer(nil)
	writeVarUint(buf, a.Slot)
	writeVarUint(buf, a.TxIndex)
	writeVarUint(buf, a.CertIndex)
	return buf.Bytes()
}
