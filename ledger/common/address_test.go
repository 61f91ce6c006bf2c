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
	"errors"
	"testing"

	"github.com/blinklabs-io/workbench/cbor"
	"github.com/blinklabs-io/workbench/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromBytes(t *testing.T) {
	testDefs := []struct {
		addressBytesHex string
		expectedAddress string
	}{
		{
			addressBytesHex: "11e1317b152faac13426e6a83e06ff88a4d62cce3c1634ab0a5ec1330952563c5410bff6a0d43ccebb7c37e1f69f5eb260552521adff33b9c2",
			expectedAddress: "addr1z8snz7c4974vzdpxu65ruphl3zjdvtxw8strf2c2tmqnxz2j2c79gy9l76sdg0xwhd7r0c0kna0tycz4y5s6mlenh8pq0xmsha",
		},
		{
			addressBytesHex: "013f35615835258addded1c2e169f3a2ab4ae94d606bde030e7947f5184ff5f8e3d43ce6b19ec4197e331e86d0f5e58b02d7a75b5e74cff95d",
			expectedAddress: test.BaseAddressMainnet,
		},
		{
			addressBytesHex: "7121bd8c2e0df2fbe92137f78dbaba48f62308e52303049f0d628b6c4c",
			expectedAddress: "addr1wysmmrpwphe0h6fpxlmcmw46frmzxz89yvpsf8cdv29kcnqsw3vw6",
		},
		{
			addressBytesHex: "61cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b",
			expectedAddress: test.EnterpriseAddressMainnet,
		},
		// Long (but apparently valid) address from:
		// https://github.com/IntersectMBO/cardano-ledger/issues/2729
		{
			addressBytesHex: "015bad085057ac10ecc7060f7ac41edd6f63068d8963ef7d86ca58669e5ecf2d283418a60be5a848a2380eb721000da1e0bbf39733134beca4cb57afb0b35fc89c63061c9914e055001a518c7516",
			expectedAddress: "addr1q9d66zzs27kppmx8qc8h43q7m4hkxp5d39377lvxefvxd8j7eukjsdqc5c97t2zg5guqadepqqx6rc9m7wtnxy6tajjvk4a0kze4ljyuvvrpexg5up2sqxj33363v35gtew",
		},
		// Byron address, mainnet with derivation
		{
			addressBytesHex: "82d818584283581caf56de241bcca83d72c51e74d18487aa5bc68b45e2caa170fa329d3aa101581e581cea1425ccdd649b25af5deb7e6335da2eb8167353a55e77925122e95f001a3a858621",
			expectedAddress: "DdzFFzCqrht2ii4Vc7KRchSkVvQtCqdGkQt4nF4Yxg1NpsubFBity2Tpt2eSEGrxBH1eva8qCFKM2Y5QkwM1SFBizRwZgz1N452WYvgG",
		},
		// Byron address, preview
		{
			addressBytesHex: "82d818582483581c5d5e698eba3dd9452add99a1af9461beb0ba61b8bece26e7399878dda1024102001a36d41aba",
			expectedAddress: "FHnt4NL7yPXvDWHa8bVs73UEUdJd64VxWXSFNqetECtYfTd9TtJguJ14Lu3feth",
		},
	}
	for _, testDef := range testDefs {
		addr, err := NewAddressFromBytes(
			test.DecodeHexString(testDef.addressBytesHex),
		)
		if err != nil {
			t.Fatalf(
				"failure populating address from bytes: %s",
				err,
			)
		}
		if addr.String() != testDef.expectedAddress {
			t.Fatalf(
				"address did not match expected value, got: %s, wanted: %s",
				addr.String(),
				testDef.expectedAddress,
			)
		}
	}
}

func TestAddressFromBytesInvalid(t *testing.T) {
	testDefs := []struct {
		name            string
		addressBytesHex string
	}{
		{name: "empty", addressBytesHex: ""},
		{name: "short payment hash", addressBytesHex: "61cfe224"},
		{name: "short staking hash", addressBytesHex: "013f35615835258addded1c2e169f3a2ab4ae94d606bde030e7947f5184ff5"},
		{name: "unknown type", addressBytesHex: "91cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b"},
		// Byron preview address with the last checksum byte changed
		{
			name:            "bad Byron checksum",
			addressBytesHex: "82d818582483581c5d5e698eba3dd9452add99a1af9461beb0ba61b8bece26e7399878dda1024102001a36d41abb",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := NewAddressFromBytes(
				test.DecodeHexString(testDef.addressBytesHex),
			)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAddress))
		})
	}
}

func TestAddressRoundTrip(t *testing.T) {
	testDefs := []string{
		test.BaseAddressMainnet,
		test.EnterpriseAddressMainnet,
		"addr_test1wpvdxve27gk4ylwyf7t6xn3c7swrfzwz9uv0akwnpctkc4qdhgye0",
		"FHnt4NL7yPXvDWHa8bVs73UEUdJd64VxWXSFNqetECtYfTd9TtJguJ14Lu3feth",
	}
	for _, addrStr := range testDefs {
		addr, err := NewAddress(addrStr)
		require.NoError(t, err)
		assert.Equal(t, addrStr, addr.String())
		// Through CBOR and back
		cborData, err := cbor.Encode(&addr)
		require.NoError(t, err)
		var decoded Address
		_, err = cbor.Decode(cborData, &decoded)
		require.NoError(t, err)
		assert.Equal(t, addrStr, decoded.String())
	}
}

func TestAddressNetworkId(t *testing.T) {
	testDefs := []struct {
		address           string
		expectedNetworkId uint
		expectedNetwork   Network
	}{
		{
			address:           "addr_test1wpvdxve27gk4ylwyf7t6xn3c7swrfzwz9uv0akwnpctkc4qdhgye0",
			expectedNetworkId: AddressNetworkTestnet,
			expectedNetwork:   NetworkTestnet,
		},
		{
			address:           "FHnt4NL7yPXvDWHa8bVs73UEUdJd64VxWXSFNqetECtYfTd9TtJguJ14Lu3feth",
			expectedNetworkId: AddressNetworkTestnet,
			expectedNetwork:   NetworkPreview,
		},
		{
			address:           "DdzFFzCqrht2ii4Vc7KRchSkVvQtCqdGkQt4nF4Yxg1NpsubFBity2Tpt2eSEGrxBH1eva8qCFKM2Y5QkwM1SFBizRwZgz1N452WYvgG",
			expectedNetworkId: AddressNetworkMainnet,
			expectedNetwork:   NetworkMainnet,
		},
		{
			address:           test.BaseAddressMainnet,
			expectedNetworkId: AddressNetworkMainnet,
			expectedNetwork:   NetworkMainnet,
		},
	}
	for _, testDef := range testDefs {
		addr, err := NewAddress(testDef.address)
		if err != nil {
			t.Fatalf("failed to decode address: %s", err)
		}
		if addr.NetworkId() != testDef.expectedNetworkId {
			t.Fatalf(
				"address did not return expected network ID, got: %d, wanted: %d",
				addr.NetworkId(),
				testDef.expectedNetworkId,
			)
		}
		if addr.Network() != testDef.expectedNetwork {
			t.Fatalf(
				"address did not return expected network, got: %s, wanted: %s",
				addr.Network(),
				testDef.expectedNetwork,
			)
		}
	}
}

func TestAddressUnmarshalCBORWrongType(t *testing.T) {
	var addr Address
	// Unsigned integer is neither a bytestring nor a Byron address structure
	_, err := cbor.Decode([]byte{0x01}, &addr)
	require.Error(t, err)
}
