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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFingerprint(t *testing.T) {
	// Test vectors from CIP-14
	testDefs := []struct {
		policyIdHex         string
		assetNameHex        string
		expectedFingerprint string
	}{
		{
			policyIdHex:         "7eae28af2208be856f7a119668ae52a49b73725e326dc16579dcc373",
			assetNameHex:        "",
			expectedFingerprint: "asset1rjklcrnsdzqp65wjgrg55sy9723kw09mlgvlc3",
		},
		{
			policyIdHex:         "29a8fb8318718bd756124f0c144f56d4b4579dc5edf2dd42d669ac61",
			assetNameHex:        "6675726e697368613239686e",
			expectedFingerprint: "asset1jdu2xcrwlqsjqqjger6kj2szddz8dcpvcg4ksz",
		},
		{
			policyIdHex:         "eaf8042c1d8203b1c585822f54ec32c4c1bb4d3914603e2cca20bbd5",
			assetNameHex:        "426f7764757261436f6e63657074733638",
			expectedFingerprint: "asset1kp7hdhqc7chmyqvtqrsljfdrdt6jz8mg5culpe",
		},
		{
			policyIdHex:         "cf78aeb9736e8aa94ce8fab44da86b522fa9b1c56336b92a28420525",
			assetNameHex:        "363438346330393264363164373033656236333233346461",
			expectedFingerprint: "asset1rx3cnlsvh3udka56wyqyed3u695zd5q2jck2yd",
		},
	}
	for _, testDef := range testDefs {
		fp, err := Fingerprint(testDef.policyIdHex, testDef.assetNameHex)
		require.NoError(t, err)
		if fp != testDef.expectedFingerprint {
			t.Fatalf(
				"asset fingerprint did not match expected value, got: %s, wanted: %s",
				fp,
				testDef.expectedFingerprint,
			)
		}
		asset, err := ParseTokenTypeId(testDef.policyIdHex+testDef.assetNameHex, 1)
		require.NoError(t, err)
		assetFp, err := asset.Fingerprint()
		require.NoError(t, err)
		assert.Equal(t, testDef.expectedFingerprint, assetFp)
	}
}

func TestAssetFingerprintDeterministic(t *testing.T) {
	zeroPolicy := strings.Repeat("0", AssetPolicyIdHexLength)
	first, err := FingerprintFromTokenTypeId(zeroPolicy)
	require.NoError(t, err)
	second, err := FingerprintFromTokenTypeId(zeroPolicy)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "asset1cg0xc9suhqg622wk0cwud0j0m730r8ed8v7jnj", first)
	assert.True(t, strings.HasPrefix(first, AssetFingerprintPrefix+"1"))
	changed, err := FingerprintFromTokenTypeId(zeroPolicy + "01")
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)
	assert.Equal(t, "asset1yz67dzrgxs9uxeyg0gdyh75nmhqrp0g0awzklq", changed)
	// Single character changes in either half must change the fingerprint
	policyFlip, err := FingerprintFromTokenTypeId("1" + zeroPolicy[1:])
	require.NoError(t, err)
	assert.NotEqual(t, first, policyFlip)
	nameFlip, err := FingerprintFromTokenTypeId(zeroPolicy + "02")
	require.NoError(t, err)
	assert.NotEqual(t, changed, nameFlip)
	assert.NotEqual(t, policyFlip, nameFlip)
}

func TestAssetFingerprintInvalidHex(t *testing.T) {
	_, err := FingerprintFromTokenTypeId("zz")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = FingerprintFromTokenTypeId("abc")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAssetFingerprintHash(t *testing.T) {
	policyId := make([]byte, Blake2b224Size)
	fp := NewAssetFingerprint(policyId, []byte{0x01})
	assert.Equal(t, Blake2b160Hash(append(policyId, 0x01)), fp.Hash())
}

func TestParseTokenTypeId(t *testing.T) {
	testDefs := []struct {
		name        string
		length      int
		expectError bool
	}{
		{name: "too short", length: AssetTokenTypeIdMinLength - 1, expectError: true},
		{name: "policy only", length: AssetTokenTypeIdMinLength},
		{name: "max name", length: AssetTokenTypeIdMaxLength},
		{name: "too long", length: AssetTokenTypeIdMaxLength + 1, expectError: true},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			tokenTypeId := strings.Repeat("a", testDef.length)
			asset, err := ParseTokenTypeId(tokenTypeId, 42)
			if testDef.expectError {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tokenTypeId[:AssetPolicyIdHexLength], asset.PolicyId)
			assert.Equal(t, tokenTypeId[AssetPolicyIdHexLength:], asset.Name)
			assert.Equal(t, int64(42), asset.Quantity)
			assert.Equal(t, tokenTypeId, asset.TokenTypeId())
		})
	}
}
