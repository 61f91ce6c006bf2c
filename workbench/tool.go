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
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blinklabs-io/workbench/encoding"
)

var ErrUnsupportedMessage = errors.New("unsupported message")

// Tool is the state of one workbench tool
type Tool interface {
	Name() string
	Update(Message) error
	View() View
}

// Message is any input a tool understands. Tools reject other messages with
// ErrUnsupportedMessage
type Message any

// TextChanged replaces the main text input of a tool
type TextChanged struct {
	Text string
}

// EncodingSelected picks how text inputs are decoded. EncodingUnknown selects detection
type EncodingSelected struct {
	Encoding encoding.Encoding
}

// LengthSelected picks the digest length in bits
type LengthSelected struct {
	Bits int
}

// KeyChanged replaces the private key input of the signatures tool
type KeyChanged struct {
	Key string
}

// GenerateKey asks the signatures tool for a fresh random key
type GenerateKey struct{}

// SelectTool replaces an empty pane with a new tool
type SelectTool struct {
	Kind ToolKind
}

func unsupported(tool Tool, msg Message) error {
	return fmt.Errorf("%w: %T for %s", ErrUnsupportedMessage, msg, tool.Name())
}

// Line is one labeled row of a tool view. Lines without a label are plain text
type Line struct {
	Label string
	Value string
}

func (l Line) String() string {
	if l.Label == "" {
		return l.Value
	}
	return l.Label + ": " + l.Value
}

// View is the rendered state of a tool
type View struct {
	Title   string
	Lines   []Line
	Warning string
}

func (v View) String() string {
	var sb strings.Builder
	if v.Title != "" {
		sb.WriteString(v.Title)
		sb.WriteString("\n")
	}
	for _, line := range v.Lines {
		sb.WriteString(line.String())
		sb.WriteString("\n")
	}
	if v.Warning != "" {
		sb.WriteString("warning: ")
		sb.WriteString(v.Warning)
		sb.WriteString("\n")
	}
	return sb.String()
}

type ToolKind uint8

const (
	ToolKindSelector ToolKind = iota
	ToolKindInspector
	ToolKindHashes
	ToolKindBlake2b
	ToolKindSignatures
)

// SelectableTools are the kinds offered in an empty pane
var SelectableTools = []ToolKind{
	ToolKindInspector,
	ToolKindHashes,
	ToolKindBlake2b,
	ToolKindSignatures,
}

func (k ToolKind) String() string {
	switch k {
	case ToolKindSelector:
		return "Select"
	case ToolKindInspector:
		return "Transaction Inspector"
	case ToolKindHashes:
		return "Hashes"
	case ToolKindBlake2b:
		return "Blake2b"
	case ToolKindSignatures:
		return "Signatures"
	default:
		return fmt.Sprintf("ToolKind(%d)", k)
	}
}

// ToolFactory builds a new tool of the given kind
type ToolFactory func(context.Context, ToolKind) (Tool, error)

// NewTool is the default ToolFactory
func NewTool(ctx context.Context, kind ToolKind) (Tool, error) {
	switch kind {
	case ToolKindSelector:
		return NewSelector(), nil
	case ToolKindInspector:
		return NewInspector(ctx)
	case ToolKindHashes:
		return NewHashes(), nil
	case ToolKindBlake2b:
		return NewBlake2b(), nil
	case ToolKindSignatures:
		return NewSignatures(), nil
	default:
		return nil, fmt.Errorf("unknown tool kind: %s", kind)
	}
}
