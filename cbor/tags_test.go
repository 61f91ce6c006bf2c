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

package cbor_test

import (
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/blinklabs-io/workbench/cbor"
)

func TestWrappedCborDecode(t *testing.T) {
	// 24(h'8200')
	cborData, _ := hex.DecodeString("d818428200")
	var dest cbor.WrappedCbor
	if _, err := cbor.Decode(cborData, &dest); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if hex.EncodeToString(dest.Bytes()) != "8200" {
		t.Fatalf("did not get expected wrapped bytes: %x", dest.Bytes())
	}
	// Plain bytestring without the tag
	if _, err := cbor.Decode([]byte{0x42, 0x82, 0x00}, &dest); err == nil {
		t.Fatal("did not get expected error for untagged bytestring")
	}
}

func TestWrappedCborBytes(t *testing.T) {
	data := []byte{0xab, 0xcd, 0xef}
	wrapped := cbor.WrappedCbor(data)
	if !reflect.DeepEqual(wrapped.Bytes(), data) {
		t.Errorf("expected %v, got %v", data, wrapped.Bytes())
	}
}

func TestSetTypeDecode(t *testing.T) {
	testDefs := []struct {
		name      string
		cborHex   string
		items     []uint64
		tagged    bool
		expectErr bool
	}{
		// 258([1, 2, 3])
		{name: "tagged", cborHex: "d9010283010203", items: []uint64{1, 2, 3}, tagged: true},
		// [1, 2, 3]
		{name: "untagged", cborHex: "83010203", items: []uint64{1, 2, 3}},
		// 258([])
		{name: "empty tagged", cborHex: "d9010280", items: []uint64{}, tagged: true},
		// 259([1])
		{name: "wrong tag", cborHex: "d901038101", expectErr: true},
		// 258({})
		{name: "tagged map", cborHex: "d90102a0", expectErr: true},
		// {}
		{name: "map", cborHex: "a0", expectErr: true},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data, err := hex.DecodeString(testDef.cborHex)
			if err != nil {
				t.Fatalf("failed to decode CBOR hex: %s", err)
			}
			var setType cbor.SetType[uint64]
			_, err = cbor.Decode(data, &setType)
			if testDef.expectErr {
				if err == nil {
					t.Fatal("did not get expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to decode SetType: %s", err)
			}
			if !reflect.DeepEqual(setType.Items(), testDef.items) {
				t.Errorf("expected %v, got %v", testDef.items, setType.Items())
			}
			if setType.Tagged() != testDef.tagged {
				t.Errorf("expected tagged=%v, got %v", testDef.tagged, setType.Tagged())
			}
			if setType.Len() != len(testDef.items) {
				t.Errorf("expected length %d, got %d", len(testDef.items), setType.Len())
			}
		})
	}
}

func TestSetTypeMarshalCBOR(t *testing.T) {
	testDefs := []struct {
		useTag  bool
		cborHex string
	}{
		{useTag: true, cborHex: "d9010283010203"},
		{useTag: false, cborHex: "83010203"},
	}
	for _, testDef := range testDefs {
		setType := cbor.NewSetType([]uint64{1, 2, 3}, testDef.useTag)
		encoded, err := cbor.Encode(&setType)
		if err != nil {
			t.Fatalf("failed to encode SetType: %s", err)
		}
		if hex.EncodeToString(encoded) != testDef.cborHex {
			t.Errorf("expected %s, got %x", testDef.cborHex, encoded)
		}
	}
}

func TestArraySetDecode(t *testing.T) {
	var arraySet cbor.ArraySet[uint64]
	if _, err := cbor.Decode([]byte{0x82, 0x01, 0x02}, &arraySet); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !reflect.DeepEqual([]uint64(arraySet), []uint64{1, 2}) {
		t.Fatalf("did not get expected items: %v", arraySet)
	}
	// 258([1, 2])
	if _, err := cbor.Decode([]byte{0xd9, 0x01, 0x02, 0x82, 0x01, 0x02}, &arraySet); err == nil {
		t.Fatal("did not get expected error for tagged set")
	}
}
