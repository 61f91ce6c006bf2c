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

// Package signatures signs and verifies messages with the key types shown in the
// signatures tool.
//
// A single 32-byte private key drives every scheme: it is used as an Ed25519 seed and
// as a secp256k1 scalar. A 64-byte key is treated as an extended Ed25519 key (the
// clamped scalar followed by the nonce prefix) and only produces an Ed25519 signature.
//
// The secp256k1 schemes sign the SHA-256 digest of the message. ECDSA signatures are
// DER encoded with a compressed public key, and Schnorr signatures follow BIP-340 with
// an x-only public key.
package signatures
