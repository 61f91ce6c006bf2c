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
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrUnknownEncoding is returned when no era schema accepts the input
	ErrUnknownEncoding = errors.New("unknown transaction encoding")

	// ErrHexDecode is returned when input text is not valid hex. It never reaches the decoder
	ErrHexDecode = errors.New("hex decode error")
)

// UnknownEncodingError is the concrete error behind ErrUnknownEncoding. Its message is
// always the same; the per-schema failures are only available from Attempts
type UnknownEncodingError struct {
	attempts *multierror.Error
}

func (e *UnknownEncodingError) Error() string {
	return ErrUnknownEncoding.Error()
}

func (e *UnknownEncodingError) Is(target error) bool {
	return target == ErrUnknownEncoding
}

// Attempts returns the failure from each schema that was tried, in decode order
func (e *UnknownEncodingError) Attempts() []error {
	if e.attempts == nil {
		return nil
	}
	return e.attempts.WrappedErrors()
}

type HexDecodeError struct {
	Err error
}

func (e *HexDecodeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrHexDecode, e.Err)
}

func (e *HexDecodeError) Unwrap() error {
	return e.Err
}

func (e *HexDecodeError) Is(target error) bool {
	return target == ErrHexDecode
}
