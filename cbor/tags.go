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
	"fmt"
	"reflect"

	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	// Useful tag numbers
	CborTagCbor = 24
	CborTagSet  = 258
	CborTagMap  = 259
)

var customTagSet _cbor.TagSet

func init() {
	// Build custom tagset
	customTagSet = _cbor.NewTagSet()
	tagOpts := _cbor.TagOptions{EncTag: _cbor.EncTagRequired, DecTag: _cbor.DecTagRequired}
	// Wrapped CBOR
	if err := customTagSet.Add(
		tagOpts,
		reflect.TypeOf(WrappedCbor{}),
		CborTagCbor,
	); err != nil {
		panic(err)
	}
}

// WrappedCbor corresponds to CBOR tag 24 and is used to encode nested CBOR data
type WrappedCbor []byte

func (w WrappedCbor) Bytes() []byte {
	return w[:]
}

// SetType corresponds to CBOR tag 258. The tag is optional on the wire, so SetType
// records whether it was present for callers that need to reject (or require) it
type SetType[T any] struct {
	items  []T
	useTag bool
}

func NewSetType[T any](items []T, useTag bool) SetType[T] {
	s := SetType[T]{
		items:  make([]T, len(items)),
		useTag: useTag,
	}
	copy(s.items, items)
	return s
}

func (t *SetType[T]) UnmarshalCBOR(data []byte) error {
	var tmpTag RawTag
	if _, err := Decode(data, &tmpTag); err == nil {
		if tmpTag.Number != CborTagSet {
			return fmt.Errorf("unexpected tag %d, expected set", tmpTag.Number)
		}
		data = []byte(tmpTag.Content)
		t.useTag = true
	} else {
		t.useTag = false
	}
	majorType, err := MajorType(data)
	if err != nil {
		return err
	}
	if majorType != CborTypeArray {
		return fmt.Errorf("expected CBOR array for set, found major type 0x%x", majorType)
	}
	var items []T
	if _, err := Decode(data, &items); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	t.items = items
	return nil
}

func (t *SetType[T]) MarshalCBOR() ([]byte, error) {
	items := t.items
	if items == nil {
		items = []T{}
	}
	if t.useTag {
		return Encode(&Tag{Number: CborTagSet, Content: items})
	}
	return Encode(&items)
}

// Items returns the set contents
func (t *SetType[T]) Items() []T {
	return t.items
}

// Tagged reports whether the set was encoded with tag 258
func (t *SetType[T]) Tagged() bool {
	return t.useTag
}

func (t *SetType[T]) Len() int {
	return len(t.items)
}

// ArraySet is a set that only accepts the bare array encoding used before sets could
// carry tag 258. Unregistered tags are otherwise stripped silently by the decoder
type ArraySet[T any] []T

func (s *ArraySet[T]) UnmarshalCBOR(data []byte) error {
	majorType, err := MajorType(data)
	if err != nil {
		return err
	}
	if majorType != CborTypeArray {
		return fmt.Errorf("expected untagged CBOR array for set, found major type 0x%x", majorType)
	}
	var items []T
	if _, err := Decode(data, &items); err != nil {
		return err
	}
	*s = items
	return nil
}
