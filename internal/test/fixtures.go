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

package test

// Transaction fixtures shared by the ledger, pipeline and workbench tests
const (
	// Conway transaction with a tag 258 input set, legacy outputs and a tagged vkey witness set
	ConwayTxHex = "84a500d9010281825820279184037d249e397d97293738370756da559718fcdefae9924834840046b37b01018282583900923d4b64e1d730a4baf3e6dc433a9686983940f458363f37aad7a1a9568b72f85522e4a17d44a45cd021b9741b55d7cbc635c911625b015e1a00a9867082583900923d4b64e1d730a4baf3e6dc433a9686983940f458363f37aad7a1a9568b72f85522e4a17d44a45cd021b9741b55d7cbc635c911625b015e1b00000001267d7b04021a0002938d031a04e304e70800a100d9010281825820b829480e5d5827d2e1bd7c89176a5ca125c30812e54be7dbdf5c47c835a17f3d5840b13a76e7f2b19cde216fcad55ceeeb489ebab3dcf63ef1539ac4f535dece00411ee55c9b8188ef04b4aa3c72586e4a0ec9b89949367d7270fdddad3b18731403f5f6"

	// Conway transaction with two inputs, a map-form output, a multi-asset legacy output
	// and a registration certificate (type 7)
	ConwayMapOutputTxHex = "84a400d9010282825820279184037d249e397d97293738370756da559718fcdefae9924834840046b37b00825820a12a839c25a01fa5d118167db5acdbd9e38172ae8f00e5ac0a4997ef792a2007030182a2005839013f35615835258addded1c2e169f3a2ab4ae94d606bde030e7947f5184ff5f8e3d43ce6b19ec4197e331e86d0f5e58b02d7a75b5e74cff95d011a004c4b4082581d61cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b821a0016e360a1581c00000000000000000000000000000000000000000000000000000001a143746f6b0a021a0002bf2004d901028183078200581c000000000000000000000000000000000000000000000000000000001a001e8480a0f5f6"

	// Transaction with an update proposal (body key 6), which is valid for Babbage and
	// Alonzo but not for Conway
	BabbageTxHex = "84a40081825820279184037d249e397d97293738370756da559718fcdefae9924834840046b37b000181825839013f35615835258addded1c2e169f3a2ab4ae94d606bde030e7947f5184ff5f8e3d43ce6b19ec4197e331e86d0f5e58b02d7a75b5e74cff95d1a000f4240021a00030d400682a005a0f5f6"

	// Shelley-shaped transaction (3 element array) with a TTL
	ShelleyTxHex = "83a40081825820279184037d249e397d97293738370756da559718fcdefae9924834840046b37b01018182581d61cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b1a001e8480021a00029810031903e8a0f6"

	// Byron transaction with an indefinite-length input and output list
	ByronTxHex = "839f8200d8185824825820a12a839c25a01fa5d118167db5acdbd9e38172ae8f00e5ac0a4997ef792a200700ff9f8282d818584283581c6c9982e7f2b6dcc5eaa880e8014568913c8868d9f0f86eb687b2633ca101581e581c010d876783fb2b4d0d17c86df29af8d35356ed3d1827bf4744f06700001a8dc672c11a000f4240ffa0"

	// Bech32 forms of the addresses used in the fixtures above
	ConwayTxAddress          = "addr_test1qzfr6jmyu8tnpf9670ndcse6j6rfsw2q73vrv0eh4tt6r22k3de0s4fzujsh639ytngzrwt5rd2a0j7xxhy3zcjmq90qdn3muv"
	BaseAddressMainnet       = "addr1qyln2c2cx5jc4hw768pwz60n5245462dvp4auqcw09rl2xz07huw84puu6cea3qe0ce3apks7hjckqkh5ad4uax0l9ws0q9xty"
	EnterpriseAddressMainnet = "addr1v887yfpftg5z660dmf063hj0zv0zh8xjrfkfyd2e07j076cecha5k"
	ByronTxAddress           = "DdzFFzCqrhsszHTvbjTmYje5hehGbadkT6WgWbaqCy5XNxNttsPNF13eAjjBHYT7JaLJz2XVxiucam1EvwBRPSTiCrT4TNCBas4hfzic"

	// Transaction IDs (Blake2b-256 of the body CBOR, or of the whole transaction for Byron)
	ConwayTxId  = "22fbebfedc02277dd550cc774c483cb842728d090ffeba8ae2168805f651fc4c"
	BabbageTxId = "43460d25d9124d4473a784f943f5f6c50d0c51d45d43a84f1a2e3345c0e338dd"
	ShelleyTxId = "b88d22438df92756630c0d5fb8515b43b65105d01da83be6c6c1cfac415ec565"
	ByronTxId   = "6497b33b10fa2619c6efbd9f874ecd1c91badb10bf70850732aab45b90524d9e"
)

// TestTx is a named transaction fixture
type TestTx struct {
	Name string
	Hex  string
	Cbor []byte
}

// GetTestTxs returns one transaction fixture per era schema, newest first
func GetTestTxs() []TestTx {
	ret := []TestTx{
		{Name: "Conway", Hex: ConwayTxHex},
		{Name: "Babbage", Hex: BabbageTxHex},
		{Name: "Shelley", Hex: ShelleyTxHex},
		{Name: "Byron", Hex: ByronTxHex},
	}
	for i := range ret {
		ret[i].Cbor = DecodeHexString(ret[i].Hex)
	}
	return ret
}
