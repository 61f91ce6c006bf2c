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
	"sync"

	"github.com/blinklabs-io/workbench/cbor"
)

type Era struct {
	Id   uint8
	Name string
}

func (e Era) String() string {
	return e.Name
}

var (
	eras      = map[uint8]Era{}
	erasMutex sync.RWMutex
)

// RegisterEra makes an era known to EraById. Each era package registers itself at init
func RegisterEra(era Era) {
	erasMutex.Lock()
	defer erasMutex.Unlock()
	eras[era.Id] = era
}

func EraById(eraId uint8) (Era, bool) {
	erasMutex.RLock()
	defer erasMutex.RUnlock()
	era, ok := eras[eraId]
	return era, ok
}

// TransactionBodyBase is embedded by the transaction body of every post-Byron era. The
// transaction ID is the hash of the body exactly as it appeared on the wire
type TransactionBodyBase struct {
	cbor.DecodeStoreCbor
}

func (b *TransactionBodyBase) Hash() Blake2b256 {
	return Blake2b256Hash(b.Cbor())
}

// RequiredTransactionBodyKeys are the body keys every post-Byron era requires: inputs,
// outputs and fee
var RequiredTransactionBodyKeys = []uint64{0, 1, 2}
