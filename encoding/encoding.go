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

// Package encoding detects and decodes the text encodings accepted by the workbench tools.
package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingHex
	EncodingBase64
	EncodingUTF8
)

// All lists the encodings in the order they are offered and detected
var All = []Encoding{EncodingHex, EncodingBase64, EncodingUTF8}

var (
	ErrInvalidHex      = errors.New("invalid hex")
	ErrInvalidBase64   = errors.New("invalid base64")
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// DecodeError reports text that does not match its encoding. It matches ErrInvalidHex
// or ErrInvalidBase64 with errors.Is
type DecodeError struct {
	Encoding Encoding
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s: %s", strings.ToLower(e.Encoding.String()), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	switch e.Encoding {
	case EncodingHex:
		return target == ErrInvalidHex
	case EncodingBase64:
		return target == ErrInvalidBase64
	default:
		return false
	}
}

// Padded standard base64 only. Unpadded or URL-safe text is treated as UTF8
var base64Pattern = regexp.MustCompile(
	`^([A-Za-z0-9+/]{4})*([A-Za-z0-9+/]{3}=|[A-Za-z0-9+/]{2}==)?$`,
)

func (e Encoding) String() string {
	switch e {
	case EncodingHex:
		return "Hex"
	case EncodingBase64:
		return "Base64"
	case EncodingUTF8:
		return "UTF8"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// FromString parses an encoding name as accepted on the command line
func FromString(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case "hex":
		return EncodingHex, nil
	case "base64":
		return EncodingBase64, nil
	case "utf8", "utf-8":
		return EncodingUTF8, nil
	default:
		return EncodingUnknown, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
}

func stripNewlines(text string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(text)
}

func isHex(text string) bool {
	if len(text)%2 != 0 {
		return false
	}
	for _, c := range text {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Detect guesses the encoding of text. Newlines are ignored, so wrapped hex or base64
// is still recognized. Empty text is reported as hex
func Detect(text string) Encoding {
	stripped := stripNewlines(text)
	if isHex(stripped) {
		return EncodingHex
	}
	if base64Pattern.MatchString(stripped) {
		return EncodingBase64
	}
	return EncodingUTF8
}

// Decode converts text to bytes using the given encoding
func Decode(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingHex:
		data, err := hex.DecodeString(stripNewlines(text))
		if err != nil {
			return nil, &DecodeError{Encoding: EncodingHex, Err: err}
		}
		return data, nil
	case EncodingBase64:
		data, err := base64.StdEncoding.DecodeString(stripNewlines(text))
		if err != nil {
			return nil, &DecodeError{Encoding: EncodingBase64, Err: err}
		}
		return data, nil
	case EncodingUTF8:
		return []byte(text), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, enc)
	}
}

// DecodeAuto decodes text with the detected encoding and returns the encoding used
func DecodeAuto(text string) ([]byte, Encoding, error) {
	enc := Detect(text)
	data, err := Decode(text, enc)
	return data, enc, err
}
