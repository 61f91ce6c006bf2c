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

package workbench

import (
	"strconv"
	"strings"

	"github.com/blinklabs-io/workbench/hashes"
)

// Blake2b hashes hex contents with a selectable digest length
type Blake2b struct {
	contents string
	length   int
	hash     string
}

func NewBlake2b() *Blake2b {
	return &Blake2b{length: hashes.Blake2b256Length}
}

func (b *Blake2b) Name() string {
	return ToolKindBlake2b.String()
}

func (b *Blake2b) Update(msg Message) error {
	switch m := msg.(type) {
	case TextChanged:
		b.contents = m.Text
	case LengthSelected:
		if m.Bits != hashes.Blake2b224Length && m.Bits != hashes.Blake2b256Length {
			return hashes.ErrInvalidLength
		}
		b.length = m.Bits
	default:
		return unsupported(b, msg)
	}
	b.recompute()
	return nil
}

// recompute leaves the previous hash in place while the contents are blank
func (b *Blake2b) recompute() {
	contents := strings.TrimSpace(b.contents)
	if contents == "" {
		return
	}
	hash, err := hashes.Blake2bHex(contents, b.length)
	if err != nil {
		b.hash = ""
		return
	}
	b.hash = hash
}

func (b *Blake2b) Length() int {
	return b.length
}

func (b *Blake2b) Hash() string {
	return b.hash
}

func (b *Blake2b) View() View {
	return View{
		Title: b.Name(),
		Lines: []Line{
			{Label: "length", Value: strconv.Itoa(b.length)},
			{Label: "hash", Value: b.hash},
		},
	}
}
