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

// Package cbor wraps github.com/fxamacker/cbor/v2 with the decoding rules used by the
// transaction schemas.
//
// The shared decoder rejects unknown struct fields and duplicate map keys, which is what
// makes a failed decode meaningful when the same bytes are tried against several schemas.
//
// # Key Types
//
//   - StructAsArray: embed to encode struct fields as a CBOR array instead of a map
//   - DecodeStoreCbor: embed to preserve the original CBOR bytes for hashing
//   - RawMessage: deferred decoding (like json.RawMessage)
//   - ByteString: bytestrings that can be used as map keys
//   - WrappedCbor: tag 24 embedded CBOR
//   - SetType: tag 258 sets, remembering whether the tag was present
//   - ArraySet: sets that must not carry tag 258
//
// # Storing the original CBOR
//
//	type MyType struct {
//	    cbor.DecodeStoreCbor
//	    Field1 string
//	}
//
//	func (m *MyType) UnmarshalCBOR(data []byte) error {
//	    type tMyType MyType
//	    var tmp tMyType
//	    if _, err := cbor.Decode(data, &tmp); err != nil {
//	        return err
//	    }
//	    *m = MyType(tmp)
//	    m.SetCbor(data)
//	    return nil
//	}
package cbor
