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

package alonzo_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/workbench/internal/test"
	"github.com/blinklabs-io/workbench/ledger/alonzo"
	"github.com/blinklabs-io/workbench/ledger/common"
)

func TestAlonzoTransactionDecode(t *testing.T) {
	testDefs := []struct {
		name              string
		txCborHex         string
		expectedTxId      string
		expectedFee       uint64
		expectedPreAlonzo bool
	}{
		{
			name:              "ShelleyShape",
			txCborHex:         test.ShelleyTxHex,
			expectedTxId:      test.ShelleyTxId,
			expectedFee:       170000,
			expectedPreAlonzo: true,
		},
		{
			name:         "UpdateProposal",
			txCborHex:    test.BabbageTxHex,
			expectedTxId: test.BabbageTxId,
			expectedFee:  200000,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			tx, err := alonzo.NewAlonzoTransactionFromCbor(
				test.DecodeHexString(testDef.txCborHex),
			)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if tx.Hash().String() != testDef.expectedTxId {
				t.Fatalf(
					"did not get expected TX ID, got: %s, wanted: %s",
					tx.Hash().String(),
					testDef.expectedTxId,
				)
			}
			if tx.Fee() != testDef.expectedFee {
				t.Fatalf("did not get expected fee, got: %d, wanted: %d", tx.Fee(), testDef.expectedFee)
			}
			if tx.PreAlonzo() != testDef.expectedPreAlonzo {
				t.Fatalf("did not get expected layout, got pre-Alonzo: %v", tx.PreAlonzo())
			}
			if !tx.IsValid() {
				t.Fatal("expected transaction to be valid")
			}
			if len(tx.Inputs()) != 1 || len(tx.Outputs()) != 1 {
				t.Fatalf(
					"did not get expected inputs/outputs: %d/%d",
					len(tx.Inputs()),
					len(tx.Outputs()),
				)
			}
		})
	}
}

func TestAlonzoTransactionOutputDatumHash(t *testing.T) {
	txHex := "84a30081825820279184037d249e397d97293738370756da559718fcdefae9924834840046b37b01018183581d61cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b1a001e8480582000000000000000000000000000000000000000000000000000000000000000000201a0f5f6"
	tx, err := alonzo.NewAlonzoTransactionFromCbor(test.DecodeHexString(txHex))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	output := tx.Body.TxOutputs[0]
	if output.DatumHash() == nil {
		t.Fatal("expected datum hash")
	}
	if output.Address().String() != test.EnterpriseAddressMainnet {
		t.Fatalf("did not get expected address: %s", output.Address().String())
	}
}

func TestAlonzoTransactionDecodeFailures(t *testing.T) {
	testDefs := []struct {
		name        string
		txCborHex   string
		expectedErr error
	}{
		{
			name:      "TaggedInputSet",
			txCborHex: test.ConwayTxHex,
		},
		{
			name:      "MapOutput",
			txCborHex: "84a30081825820279184037d249e397d97293738370756da559718fcdefae9924834840046b37b010181a200581d61cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b011a001e8480021a00029810a0f5f6",
		},
		{
			name:        "MissingFee",
			txCborHex:   "84a20081825820279184037d249e397d97293738370756da559718fcdefae9924834840046b37b01018182581d61cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b1a001e8480a0f5f6",
			expectedErr: common.ErrMissingKey,
		},
		{
			name:        "ConwayCertificate",
			txCborHex:   "84a40081825820279184037d249e397d97293738370756da559718fcdefae9924834840046b37b01018182581d61cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b1a001e84800201048183078200581c000000000000000000000000000000000000000000000000000000001a001e8480a0f5f6",
			expectedErr: common.ErrUnsupportedCertificate,
		},
		{
			name:      "FiveElements",
			txCborHex: "85a30081825820279184037d249e397d97293738370756da559718fcdefae9924834840046b37b01018182581d61cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b1a001e84800201a0f5f6f6",
		},
		{
			name:      "TrailingData",
			txCborHex: test.ShelleyTxHex + "00",
		},
		{
			name:      "Byron",
			txCborHex: test.ByronTxHex,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := alonzo.NewAlonzoTransactionFromCbor(
				test.DecodeHexString(testDef.txCborHex),
			)
			if err == nil {
				t.Fatal("did not get expected error")
			}
			if testDef.expectedErr != nil && !errors.Is(err, testDef.expectedErr) {
				t.Fatalf("did not get expected error, got: %s, wanted: %s", err, testDef.expectedErr)
			}
		})
	}
}

func TestAlonzoErasRegistered(t *testing.T) {
	for _, eraId := range []uint8{alonzo.EraIdShelley, alonzo.EraIdAllegra, alonzo.EraIdMary, alonzo.EraIdAlonzo} {
		if _, ok := common.EraById(eraId); !ok {
			t.Fatalf("era %d not registered", eraId)
		}
	}
}
