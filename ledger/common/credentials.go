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
	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/wallet/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

const (
	StakeCredentialTypeAddrKeyHash = 0
	StakeCredentialTypeScriptHash  = 1
)

type StakeCredential struct {
	cbor.StructAsArray
	CredType   uint
	Credential []byte
}

// NewKeyHashStakeCredential returns a key-hash stake credential for the provided stake key
func NewKeyHashStakeCredential(stakeKey PublicKey) StakeCredential {
	return StakeCredential{
		CredType:   StakeCredentialTypeAddrKeyHash,
		Credential: stakeKey.Hash().Bytes(),
	}
}

// Hash returns the Blake2b-224 hash of the credential bytes
func (c *StakeCredential) Hash() Blake2b224 {
	if c == nil {
		return Blake2b224Hash(nil)
	}
	return Blake2b224Hash(c.Credential)
}

func (c *StakeCredential) Utxorpc() *utxorpc.StakeCredential {
	ret := &utxorpc.StakeCredential{}
	switch c.CredType {
	case StakeCredentialTypeAddrKeyHash:
		ret.StakeCredential = &utxorpc.StakeCredential_AddrKeyHash{
			AddrKeyHash: c.Credential[:],
		}
	case StakeCredentialTypeScriptHash:
		ret.StakeCredential = &utxorpc.StakeCredential_ScriptHash{
			ScriptHash: c.Credential[:],
		}
	}
	return ret
}

func (c *StakeCredential) ToPlutusData() data.PlutusData {
	switch c.CredType {
	case StakeCredentialTypeAddrKeyHash:
		return data.NewConstr(0, data.NewByteString(c.Credential))
	case StakeCredentialTypeScriptHash:
		return data.NewConstr(1, data.NewByteString(c.Credential))
	}
	return nil
}
