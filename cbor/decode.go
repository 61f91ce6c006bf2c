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
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			ExtraReturnErrors: _cbor.ExtraDecErrorUnknownField,
			// Transaction maps never repeat a key
			DupMapKey: _cbor.DupMapKeyEnforcedAPF,
			// This defaults to 32, but there is data in the wild using >64 nested levels
			MaxNestedLevels: 256,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecModeWithTags(customTagSet)
	})
	return cachedDecMode, cachedDecModeErr
}

// Decode decodes the first CBOR item in dataBytes into dest and returns the number of
// bytes consumed
func Decode(dataBytes []byte, dest any) (int, error) {
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	if decMode == nil {
		return 0, errors.New("CBOR decoder mode not initialized")
	}
	dec := decMode.NewDecoder(bytes.NewReader(dataBytes))
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// DecodeFull decodes dataBytes into dest, failing if anything follows the first CBOR item
func DecodeFull(dataBytes []byte, dest any) error {
	if len(dataBytes) == 0 {
		return errors.New("empty CBOR data")
	}
	n, err := Decode(dataBytes, dest)
	if err != nil {
		return err
	}
	if n != len(dataBytes) {
		return fmt.Errorf(
			"trailing data after CBOR item: %d of %d bytes consumed",
			n,
			len(dataBytes),
		)
	}
	return nil
}

// Extract the first item from a CBOR list. This will return the first item from the
// provided list if it's numeric and an error otherwise
func DecodeIdFromList(cborData []byte) (int, error) {
	listLen, err := ListLength(cborData)
	if err != nil {
		return 0, err
	}
	if listLen == 0 {
		return 0, errors.New("cannot return first item from empty list")
	}
	// If the list length is <= the max simple uint and the first list value
	// is <= the max simple uint, then we can extract the value straight from
	// the byte slice
	if listLen <= int(CborMaxUintSimple) && len(cborData) > 1 &&
		cborData[1] <= CborMaxUintSimple {
		return int(cborData[1]), nil
	}
	var tmp []RawMessage
	if _, err := Decode(cborData, &tmp); err != nil {
		return 0, err
	}
	if len(tmp) == 0 {
		return 0, errors.New("cannot return first item from empty list")
	}
	var id uint64
	if _, err := Decode(tmp[0], &id); err != nil {
		return 0, fmt.Errorf("first list item was not numeric: %w", err)
	}
	if id > uint64(math.MaxInt) {
		return 0, errors.New("decoded numeric value too large: uint64 > int")
	}
	return int(id), nil
}

// Determine the length of a CBOR list
func ListLength(cborData []byte) (int, error) {
	if len(cborData) == 0 {
		return 0, errors.New("empty CBOR data")
	}
	// If the list length is <= the max simple uint, then we can extract the length
	// value straight from the byte slice (with a little math)
	if cborData[0] >= CborTypeArray &&
		cborData[0] <= (CborTypeArray+CborMaxUintSimple) {
		return int(cborData[0]) - int(CborTypeArray), nil
	}
	var tmp []RawMessage
	if _, err := Decode(cborData, &tmp); err != nil {
		return 0, err
	}
	return len(tmp), nil
}

// DecodeMapKeys decodes a CBOR map with unsigned integer keys, keeping each value as
// undecoded CBOR
func DecodeMapKeys(cborData []byte) (map[uint64]RawMessage, error) {
	majorType, err := MajorType(cborData)
	if err != nil {
		return nil, err
	}
	if majorType != CborTypeMap {
		return nil, fmt.Errorf("expected CBOR map, found major type 0x%x", majorType)
	}
	ret := map[uint64]RawMessage{}
	if _, err := Decode(cborData, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}
