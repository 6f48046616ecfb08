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
)

const (
	AssetFingerprintPrefix = "asset"

	// Lengths of the hex-encoded forms
	AssetPolicyIdHexLength    = 2 * Blake2b224Size
	AssetNameMaxHexLength     = 64
	AssetTokenTypeIdMinLength = AssetPolicyIdHexLength
	AssetTokenTypeIdMaxLength = AssetPolicyIdHexLength + AssetNameMaxHexLength
)

// Asset identifies a native asset and an amount of it. PolicyId and Name are hex-encoded
type Asset struct {
	PolicyId string
	Name     string
	Quantity int64
}

// ParseTokenTypeId splits a token type ID (policy ID followed by asset name, hex-encoded) into an Asset
func ParseTokenTypeId(tokenTypeId string, quantity int64) (Asset, error) {
	if len(tokenTypeId) < AssetTokenTypeIdMinLength ||
		len(tokenTypeId) > AssetTokenTypeIdMaxLength {
		return Asset{}, InvalidArgumentError{
			Argument: "tokenTypeId",
			Reason: fmt.Sprintf(
				"has to be between %d and %d characters, got %d",
				AssetTokenTypeIdMinLength,
				AssetTokenTypeIdMaxLength,
				len(tokenTypeId),
			),
		}
	}
	return Asset{
		PolicyId: tokenTypeId[:AssetPolicyIdHexLength],
		Name:     tokenTypeId[AssetPolicyIdHexLength:],
		Quantity: quantity,
	}, nil
}

// TokenTypeId returns the policy ID and asset name joined together
func (a Asset) TokenTypeId() string {
	return a.PolicyId + a.Name
}

// Fingerprint returns the CIP-14 fingerprint of the asset
func (a Asset) Fingerprint() (string, error) {
	return FingerprintFromTokenTypeId(a.TokenTypeId())
}

// FingerprintFromTokenTypeId returns the CIP-14 fingerprint for a hex-encoded token type ID
func FingerprintFromTokenTypeId(tokenTypeId string) (string, error) {
	tokenTypeIdBytes, err := hex.DecodeString(tokenTypeId)
	if err != nil {
		return "", InvalidArgumentError{
			Argument: "tokenTypeId",
			Reason:   err.Error(),
		}
	}
	return NewAssetFingerprint(tokenTypeIdBytes, nil).String(), nil
}

// Fingerprint returns the CIP-14 fingerprint for a hex-encoded policy ID and asset name
func Fingerprint(policyId string, assetName string) (string, error) {
	return FingerprintFromTokenTypeId(policyId + assetName)
}

type AssetFingerprint struct {
	policyId  []byte
	assetName []byte
}

func NewAssetFingerprint(policyId []byte, assetName []byte) AssetFingerprint {
	return AssetFingerprint{
		policyId:  policyId,
		assetName: assetName,
	}
}

func (a AssetFingerprint) Hash() Blake2b160 {
	tmpData := make([]byte, 0, len(a.policyId)+len(a.assetName))
	tmpData = append(tmpData, a.policyId...)
	tmpData = append(tmpData, a.assetName...)
	return Blake2b160Hash(tmpData)
}

func (a AssetFingerprint) String() string {
	return bech32Encode(AssetFingerprintPrefix, a.Hash().Bytes())
}
