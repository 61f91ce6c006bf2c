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
	"errors"
	"reflect"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
	"github.com/jinzhu/copier"
)

const (
	CborTypeUint       uint8 = 0x00
	CborTypeNegInt     uint8 = 0x20
	CborTypeByteString uint8 = 0x40
	CborTypeTextString uint8 = 0x60
	CborTypeArray      uint8 = 0x80
	CborTypeMap        uint8 = 0xa0
	CborTypeTag        uint8 = 0xc0
	CborTypeSimple     uint8 = 0xe0

	// Only the top 3 bits are used to specify the type
	CborTypeMask uint8 = 0xe0

	// Max value able to be stored in a single byte without type prefix
	CborMaxUintSimple uint8 = 0x17

	// Simple values
	CborNull  uint8 = 0xf6
	CborTrue  uint8 = 0xf5
	CborFalse uint8 = 0xf4
)

// Create an alias for RawMessage for convenience
type RawMessage = _cbor.RawMessage

// Alias for Tag for convenience
type Tag = _cbor.Tag

// Alias for RawTag for convenience
type RawTag = _cbor.RawTag

// Useful for embedding and easier to remember
type StructAsArray struct {
	// Tells the CBOR decoder to convert to/from a struct and a CBOR array
	_ struct{} `cbor:",toarray"`
}

type DecodeStoreCborInterface interface {
	Cbor() []byte
}

// DecodeStoreCbor is embedded by types that need access to the exact CBOR they were
// decoded from, usually for hashing
type DecodeStoreCbor struct {
	cborData []byte
}

// Cbor returns the original CBOR for the object
func (d *DecodeStoreCbor) Cbor() []byte {
	return d.cborData
}

// SetCbor stores a copy of the provided CBOR
func (d *DecodeStoreCbor) SetCbor(cborData []byte) {
	if cborData == nil {
		d.cborData = nil
		return
	}
	d.cborData = make([]byte, len(cborData))
	copy(d.cborData, cborData)
}

// MajorType returns the CBOR major type of the first item in the provided data
func MajorType(data []byte) (uint8, error) {
	if len(data) == 0 {
		return 0, errors.New("empty CBOR data")
	}
	return data[0] & CborTypeMask, nil
}

var (
	decodeGenericTypeCache      = map[reflect.Type]reflect.Type{}
	decodeGenericTypeCacheMutex sync.RWMutex
)

// DecodeGeneric decodes the specified CBOR into the destination object without using the
// destination object's UnmarshalCBOR() function
func DecodeGeneric(cborData []byte, dest any) error {
	valueDest := reflect.ValueOf(dest)
	if valueDest.Kind() != reflect.Pointer ||
		valueDest.Elem().Kind() != reflect.Struct {
		return errors.New("destination must be a pointer to a struct")
	}
	typeDest := valueDest.Elem().Type()
	decodeGenericTypeCacheMutex.RLock()
	tmpTypeDest, ok := decodeGenericTypeCache[typeDest]
	decodeGenericTypeCacheMutex.RUnlock()
	if !ok {
		// Create a duplicate(-ish) struct from the destination
		// We do this so that we can bypass any custom UnmarshalCBOR() function on the
		// destination object
		destTypeFields := []reflect.StructField{}
		for i := range typeDest.NumField() {
			tmpField := typeDest.Field(i)
			if tmpField.IsExported() && tmpField.Name != "DecodeStoreCbor" {
				destTypeFields = append(destTypeFields, tmpField)
			}
		}
		tmpTypeDest = reflect.StructOf(destTypeFields)
		decodeGenericTypeCacheMutex.Lock()
		decodeGenericTypeCache[typeDest] = tmpTypeDest
		decodeGenericTypeCacheMutex.Unlock()
	}
	tmpDest := reflect.New(tmpTypeDest)
	if _, err := Decode(cborData, tmpDest.Interface()); err != nil {
		return err
	}
	// Copy values from temporary object into destination object
	return copier.Copy(dest, tmpDest.Interface())
}
