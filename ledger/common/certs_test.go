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
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/blinklabs-io/wallet/cbor"
	"github.com/blinklabs-io/wallet/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

var (
	testCredentialA = bytes.Repeat([]byte{0xaa}, AddressHashSize)
	testCredentialB = bytes.Repeat([]byte{0xbb}, AddressHashSize)
	testPoolKeyHash = NewBlake2b224(bytes.Repeat([]byte{0xcc}, AddressHashSize))
)

func TestCertificatesSerialize(t *testing.T) {
	testDefs := []struct {
		name         string
		certificates Certificates
		expectedHex  string
	}{
		{
			name:         "empty",
			certificates: Certificates{},
			expectedHex:  "80",
		},
		{
			name: "registration",
			certificates: Certificates{
				NewStakeRegistrationCertificate(make([]byte, AddressHashSize)),
			},
			expectedHex: "81" + "8200" + "8200" + "581c" + strings.Repeat("00", AddressHashSize),
		},
		{
			name: "deregistration",
			certificates: Certificates{
				NewStakeDeregistrationCertificate(testCredentialA),
			},
			expectedHex: "81" + "8201" + "8200" + "581c" + strings.Repeat("aa", AddressHashSize),
		},
		{
			name: "delegation",
			certificates: Certificates{
				NewStakeDelegationCertificate(
					StakeCredential{
						CredType:   StakeCredentialTypeAddrKeyHash,
						Credential: testCredentialB,
					},
					testPoolKeyHash,
				),
			},
			expectedHex: "81" + "8302" + "8200" + "581c" + strings.Repeat("bb", AddressHashSize) + "581c" + strings.Repeat("cc", AddressHashSize),
		},
		{
			// Input order doesn't matter, output is always registration then deregistration
			name: "canonical order",
			certificates: Certificates{
				NewStakeDeregistrationCertificate([]byte{0x02}),
				NewStakeRegistrationCertificate([]byte{0x01}),
			},
			expectedHex: "82" + "8200820041" + "01" + "8201820041" + "02",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			cborData, err := testDef.certificates.Serialize()
			require.NoError(t, err)
			assert.Equal(t, testDef.expectedHex, hex.EncodeToString(cborData))
		})
	}
}

func TestCertificatesEncodeOrder(t *testing.T) {
	delegation := NewStakeDelegationCertificate(
		StakeCredential{Credential: testCredentialA},
		testPoolKeyHash,
	)
	certs := Certificates{
		delegation,
		NewStakeDeregistrationCertificate(testCredentialB),
		NewStakeRegistrationCertificate(testCredentialA),
	}
	records, err := certs.Encode()
	require.NoError(t, err)
	require.Len(t, records, 3)
	for idx, expectedType := range []int{
		CertificateTypeStakeRegistration,
		CertificateTypeStakeDeregistration,
		CertificateTypeStakeDelegation,
	} {
		certType, err := cbor.DecodeIdFromList(records[idx])
		require.NoError(t, err)
		assert.Equal(t, expectedType, certType)
	}
	// The input is left untouched
	assert.Equal(t, delegation, certs[0])
}

func TestCertificatesRoundTrip(t *testing.T) {
	testDefs := []struct {
		name         string
		certificates Certificates
	}{
		{
			name: "registration only",
			certificates: Certificates{
				NewStakeRegistrationCertificate(testCredentialA),
			},
		},
		{
			name: "deregistration only",
			certificates: Certificates{
				NewStakeDeregistrationCertificate(testCredentialB),
			},
		},
		{
			name: "registration and deregistration",
			certificates: Certificates{
				NewStakeRegistrationCertificate(testCredentialA),
				NewStakeDeregistrationCertificate(testCredentialB),
			},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			records, err := testDef.certificates.Encode()
			require.NoError(t, err)
			decoded, err := records.Decode()
			require.NoError(t, err)
			if reg := testDef.certificates.StakeRegistration(); reg != nil {
				require.NotNil(t, decoded.StakeRegistration())
				assert.Equal(t, reg.Credential, decoded.StakeRegistration().Credential)
			} else {
				assert.Nil(t, decoded.StakeRegistration())
			}
			if dereg := testDef.certificates.StakeDeregistration(); dereg != nil {
				require.NotNil(t, decoded.StakeDeregistration())
				assert.Equal(t, dereg.Credential, decoded.StakeDeregistration().Credential)
			} else {
				assert.Nil(t, decoded.StakeDeregistration())
			}
			assert.Nil(t, decoded.StakeDelegation())
		})
	}
}

func TestStakeDelegationRoundTrip(t *testing.T) {
	certs := Certificates{
		NewStakeDelegationCertificate(
			StakeCredential{
				CredType:   StakeCredentialTypeScriptHash,
				Credential: testCredentialB,
			},
			testPoolKeyHash,
		),
	}
	cborData, err := certs.Serialize()
	require.NoError(t, err)
	decoded, err := DecodeCertificates(cborData)
	require.NoError(t, err)
	delegation := decoded.StakeDelegation()
	require.NotNil(t, delegation)
	assert.Equal(t, uint(CertificateTypeStakeDelegation), delegation.CertType)
	assert.Equal(t, uint(StakeCredentialTypeScriptHash), delegation.StakeCredential.CredType)
	assert.Equal(t, testCredentialB, delegation.StakeCredential.Credential)
	assert.Equal(t, testPoolKeyHash, delegation.PoolKeyHash)
	// The original record CBOR is kept
	assert.Equal(t, cborData[1:], delegation.Cbor())
}

func TestDecodeCertificatesUncheckedCredentialType(t *testing.T) {
	// [[0, [5, h'abcd']]]
	decoded, err := DecodeCertificates(test.DecodeHexString("8182008205" + "42abcd"))
	require.NoError(t, err)
	require.NotNil(t, decoded.StakeRegistration())
	assert.Equal(t, []byte{0xab, 0xcd}, decoded.StakeRegistration().Credential)
}

func TestDecodeCertificatesMalformed(t *testing.T) {
	testDefs := []struct {
		name    string
		cborHex string
	}{
		{
			name:    "empty input",
			cborHex: "",
		},
		{
			name:    "top-level not an array",
			cborHex: "01",
		},
		{
			name:    "top-level map",
			cborHex: "a0",
		},
		{
			name:    "record not an array",
			cborHex: "8101",
		},
		{
			name:    "empty record",
			cborHex: "8180",
		},
		{
			name:    "non-numeric discriminator",
			cborHex: "8181f5",
		},
		{
			name:    "bytestring discriminator",
			cborHex: "81824100820041ab",
		},
		{
			name:    "unexpected index",
			cborHex: "818105",
		},
		{
			name:    "pool retirement is unsupported",
			cborHex: "818304" + "581c" + strings.Repeat("cc", AddressHashSize) + "01",
		},
		{
			name:    "registration without credential",
			cborHex: "818100",
		},
		{
			name:    "registration with bytestring credential",
			cborHex: "81820042abcd",
		},
		{
			name:    "delegation with short pool key hash",
			cborHex: "8183028200" + "42abcd" + "42abcd",
		},
		{
			name:    "truncated",
			cborHex: "8182",
		},
		{
			name:    "trailing bytes",
			cborHex: "80ffff",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := DecodeCertificates(test.DecodeHexString(testDef.cborHex))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedWire)
		})
	}
}

func TestCertificatesNilEntry(t *testing.T) {
	certs := Certificates{
		NewStakeRegistrationCertificate(testCredentialA),
		nil,
	}
	_, err := certs.Serialize()
	assert.ErrorIs(t, err, ErrInvalidArgument)
	typedNils := []Certificates{
		{(*StakeRegistrationCertificate)(nil)},
		{(*StakeDeregistrationCertificate)(nil)},
		{NewStakeRegistrationCertificate(testCredentialA), (*StakeDelegationCertificate)(nil)},
	}
	for _, certs := range typedNils {
		_, err := certs.Serialize()
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Nil(t, certs.StakeDelegation())
	}
}

func TestCertificatesDuplicateAccessor(t *testing.T) {
	certs := Certificates{
		NewStakeRegistrationCertificate(testCredentialA),
		NewStakeRegistrationCertificate(testCredentialB),
	}
	require.NotNil(t, certs.StakeRegistration())
	assert.Equal(t, testCredentialB, certs.StakeRegistration().Credential)
	cborData, err := certs.Serialize()
	require.NoError(t, err)
	decoded, err := DecodeCertificates(cborData)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	require.NotNil(t, decoded.StakeRegistration())
	assert.Equal(t, testCredentialB, decoded.StakeRegistration().Credential)
}

func TestDecodeCertificatesLongListHeader(t *testing.T) {
	// Record uses a two-byte array header (0x98 0x02) around [0, [0, h'aa']]
	certs, err := DecodeCertificates(
		test.DecodeHexString("81" + "980200" + "820041aa"),
	)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	reg := certs.StakeRegistration()
	require.NotNil(t, reg)
	assert.Equal(t, []byte{0xaa}, reg.Credential)
}

func TestCertificatesCborEmbedded(t *testing.T) {
	type txBody struct {
		cbor.StructAsArray
		Fee          uint64
		Certificates Certificates
	}
	tmpBody := txBody{
		Fee: 170000,
		Certificates: Certificates{
			NewStakeRegistrationCertificate(testCredentialA),
			NewStakeDelegationCertificate(
				StakeCredential{Credential: testCredentialA},
				testPoolKeyHash,
			),
		},
	}
	cborData, err := cbor.Encode(&tmpBody)
	require.NoError(t, err)
	var decoded txBody
	_, err = cbor.Decode(cborData, &decoded)
	require.NoError(t, err)
	assert.Equal(t, tmpBody.Fee, decoded.Fee)
	require.Len(t, decoded.Certificates, 2)
	assert.Equal(t, testCredentialA, decoded.Certificates.StakeRegistration().Credential)
	assert.Equal(t, testPoolKeyHash, decoded.Certificates.StakeDelegation().PoolKeyHash)
}

func TestCertificateUtxorpc(t *testing.T) {
	reg, err := NewStakeRegistrationCertificate(testCredentialA).Utxorpc()
	require.NoError(t, err)
	regCert, ok := reg.Certificate.(*utxorpc.Certificate_StakeRegistration)
	require.True(t, ok)
	assert.Equal(t, testCredentialA, regCert.StakeRegistration.GetAddrKeyHash())

	dereg, err := NewStakeDeregistrationCertificate(testCredentialB).Utxorpc()
	require.NoError(t, err)
	deregCert, ok := dereg.Certificate.(*utxorpc.Certificate_StakeDeregistration)
	require.True(t, ok)
	assert.Equal(t, testCredentialB, deregCert.StakeDeregistration.GetAddrKeyHash())

	deleg, err := NewStakeDelegationCertificate(
		StakeCredential{
			CredType:   StakeCredentialTypeScriptHash,
			Credential: testCredentialA,
		},
		testPoolKeyHash,
	).Utxorpc()
	require.NoError(t, err)
	delegCert, ok := deleg.Certificate.(*utxorpc.Certificate_StakeDelegation)
	require.True(t, ok)
	assert.Equal(t, testCredentialA, delegCert.StakeDelegation.GetStakeCredential().GetScriptHash())
	assert.Equal(t, testPoolKeyHash.Bytes(), delegCert.StakeDelegation.GetPoolKeyhash())
}

func TestStakeCredentialHash(t *testing.T) {
	stakeKey := PublicKey(bytes.Repeat([]byte{0x07}, PublicKeySize))
	cred := NewKeyHashStakeCredential(stakeKey)
	assert.Equal(t, uint(StakeCredentialTypeAddrKeyHash), cred.CredType)
	assert.Equal(t, stakeKey.Hash().Bytes(), cred.Credential)
	assert.Equal(t, Blake2b224Hash(cred.Credential), cred.Hash())
}
