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
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDiagMode     _cbor.DiagMode
	cachedDiagModeErr  error
	cachedDiagModeOnce sync.Once
)

func getDiagMode() (_cbor.DiagMode, error) {
	cachedDiagModeOnce.Do(func() {
		opts := _cbor.DiagOptions{
			ByteStringEncoding: _cbor.ByteStringBase16Encoding,
			// Show tag 24 payloads (Byron inputs and addresses) as nested items
			ByteStringEmbeddedCBOR: true,
			MaxNestedLevels:        256,
		}
		cachedDiagMode, cachedDiagModeErr = opts.DiagMode()
	})
	return cachedDiagMode, cachedDiagModeErr
}

// Diagnose returns the extended diagnostic notation (RFC 8949 section 8) for a
// single CBOR item. It is used to dump the raw structure of decoded objects
func Diagnose(data []byte) (string, error) {
	dm, err := getDiagMode()
	if err != nil {
		return "", err
	}
	return dm.Diagnose(data)
}
