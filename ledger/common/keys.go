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
	"fmt"
	"slices"

	"github.com/blinklabs-io/workbench/cbor"
	"github.com/samber/lo"
)

var (
	ErrUnexpectedKey = errors.New("unexpected map key")
	ErrMissingKey    = errors.New("missing required map key")
)

// KeyRange returns the keys from start to end, inclusive
func KeyRange(start, end uint64) []uint64 {
	return lo.RangeFrom(start, int(end-start)+1)
}

// CheckMapKeys verifies that the CBOR map in data only uses keys from allowed and
// contains every key in required. Keys are reported in ascending order
func CheckMapKeys(data []byte, allowed []uint64, required []uint64) error {
	items, err := cbor.DecodeMapKeys(data)
	if err != nil {
		return err
	}
	keys := lo.Keys(items)
	slices.Sort(keys)
	for _, key := range keys {
		if !slices.Contains(allowed, key) {
			return fmt.Errorf("%w: %d", ErrUnexpectedKey, key)
		}
	}
	for _, key := range required {
		if _, ok := items[key]; !ok {
			return fmt.Errorf("%w: %d", ErrMissingKey, key)
		}
	}
	return nil
}
