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

package common

import (
	"encoding/hex"
	"fmt"

	"filippo.io/edwards25519"
)

const PublicKeySize = 32

// PublicKey is the raw bytes of an Ed25519 verification key
type PublicKey []byte

// NewPublicKey returns a PublicKey after checking that the bytes are a valid Ed25519 point encoding
func NewPublicKey(keyBytes []byte) (PublicKey, error) {
	if len(keyBytes) != PublicKeySize {
		return nil, InvalidArgumentError{
			Argument: "publicKey",
			Reason: fmt.Sprintf(
				"expected %d bytes, got %d",
				PublicKeySize,
				len(keyBytes),
			),
		}
	}
	if _, err := new(edwards25519.Point).SetBytes(keyBytes); err != nil {
		return nil, InvalidArgumentError{
			Argument: "publicKey",
			Reason:   err.Error(),
		}
	}
	ret := make(PublicKey, len(keyBytes))
	copy(ret, keyBytes)
	return ret, nil
}

// Hash returns the Blake2b-224 hash of the key, as used in addresses and credentials
func (k PublicKey) Hash() Blake2b224 {
	return Blake2b224Hash(k)
}

func (k PublicKey) String() string {
	return hex.EncodeToString(k)
}
