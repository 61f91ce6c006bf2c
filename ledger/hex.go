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

package ledger

import (
	"encoding/hex"
	"strings"
)

// DecodeHex trims surrounding whitespace from text and hex-decodes it before decoding
// the transaction. A hex failure is a *HexDecodeError and the decoder is not called
func (d *Decoder) DecodeHex(text string) (*MultiEraTransaction, error) {
	data, err := hex.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, &HexDecodeError{Err: err}
	}
	return d.Decode(data)
}

// DecodeHexTransaction is DecodeHex with the default priority order
func DecodeHexTransaction(text string) (*MultiEraTransaction, error) {
	return defaultDecoder.DecodeHex(text)
}
