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

// Package ledger identifies which era produced a serialized transaction.
//
// Transactions carry no era discriminant, so DecodeTransaction tries each era schema in
// a fixed priority order (Conway, Babbage, Alonzo, Byron) and returns the first one that
// decodes structurally. Newer schemas are tried first because they are more constrained.
// The order is a heuristic: bytes that satisfy an earlier schema are reported as that era
// even if an older era produced them.
//
// The Shelley, Allegra, Mary and Alonzo eras share one schema and can't be told apart,
// so they are all reported as the AlonzoCompatible kind with the Alonzo era.
package ledger
