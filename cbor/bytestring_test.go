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

package cbor

import (
	"encoding/json"
	"testing"
)

func TestByteString_String(t *testing.T) {
	bs := NewByteString([]byte("workbench"))
	expected := "776f726b62656e6368"
	if actual := bs.String(); actual != expected {
		t.Errorf("expected %s but got %s", expected, actual)
	}
}

func TestByteString_MarshalJSON(t *testing.T) {
	bs := NewByteString([]byte("workbench"))
	jsonData, err := json.Marshal(bs)
	if err != nil {
		t.Fatalf("failed to marshal ByteString: %v", err)
	}
	expectedJSON := `"776f726b62656e6368"`
	if string(jsonData) != expectedJSON {
		t.Errorf("expected %s but got %s", expectedJSON, string(jsonData))
	}
}

func TestByteString_MapKey(t *testing.T) {
	// {h'4142': 1, h'4344': 2}
	cborData := []byte{0xa2, 0x42, 0x41, 0x42, 0x01, 0x42, 0x43, 0x44, 0x02}
	var dest map[ByteString]uint64
	if _, err := Decode(cborData, &dest); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if dest[NewByteString([]byte("AB"))] != 1 ||
		dest[NewByteString([]byte("CD"))] != 2 {
		t.Fatalf("did not get expected map contents: %#v", dest)
	}
}
