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

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// EncodeBech32 encodes raw bytes as bech32 with the given prefix, panicking on failure
func EncodeBech32(hrp string, data []byte) string {
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("error converting bech32 data: %s", err))
	}
	encoded, err := bech32.Encode(hrp, convData)
	if err != nil {
		panic(fmt.Sprintf("error encoding bech32: %s", err))
	}
	return encoded
}

// DecodeBech32 returns the prefix and raw bytes of a bech32 string, panicking on failure
func DecodeBech32(encoded string) (string, []byte) {
	hrp, convData, err := bech32.DecodeNoLimit(encoded)
	if err != nil {
		panic(fmt.Sprintf("error decoding bech32: %s", err))
	}
	data, err := bech32.ConvertBits(convData, 5, 8, false)
	if err != nil {
		panic(fmt.Sprintf("error converting bech32 data: %s", err))
	}
	return hrp, data
}
