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

// Package wallet builds and parses Cardano Shelley addresses, encodes and decodes stake
// certificate lists, and computes native asset fingerprints for a single configured network.
package wallet

import (
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/wallet/config"
	"github.com/blinklabs-io/wallet/ledger/common"
)

// Service wraps the address, certificate and asset codecs for a single network. It holds no
// mutable state after New returns and is safe for concurrent use
type Service struct {
	network     Network
	networkType common.NetworkType
	logger      *slog.Logger
	config      *config.Config
}

// New returns a new Service object with the specified options applied
func New(options ...ServiceOptionFunc) (*Service, error) {
	s := &Service{}
	for _, option := range options {
		option(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "wallet")
	if s.network == (Network{}) {
		s.network = NetworkMainnet
		if s.config != nil {
			if err := s.config.Validate(); err != nil {
				return nil, err
			}
			s.network = NetworkByName(s.config.Network)
			if s.network == NetworkInvalid {
				return nil, fmt.Errorf(
					"%w: unknown network %q",
					config.ErrInvalidConfig,
					s.config.Network,
				)
			}
		}
	}
	networkType, err := s.network.Type()
	if err != nil {
		return nil, err
	}
	s.networkType = networkType
	s.logger.Debug(
		"wallet service created",
		"network", s.network.Name,
		"network_magic", s.network.NetworkMagic,
	)
	return s, nil
}

// Network returns the network the service was created for
func (s *Service) Network() Network {
	return s.network
}

// NetworkType returns the address network type of the service network
func (s *Service) NetworkType() common.NetworkType {
	return s.networkType
}

func (s *Service) addressResult(
	op string,
	addr common.Address,
	err error,
) (common.Address, error) {
	if err != nil {
		s.logger.Warn(
			"failed to build address",
			"op", op,
			"error", err,
		)
		return common.Address{}, err
	}
	s.logger.Debug(
		"built address",
		"op", op,
		"address", addr.String(),
	)
	return addr, nil
}

// BaseAddress returns the base address for the payment and stake keys
func (s *Service) BaseAddress(
	paymentKey common.PublicKey,
	stakeKey common.PublicKey,
) (common.Address, error) {
	addr, err := common.NewBaseAddress(paymentKey, stakeKey, s.networkType)
	return s.addressResult("BaseAddress", addr, err)
}

// EnterpriseAddress returns the enterprise address for the payment key
func (s *Service) EnterpriseAddress(
	paymentKey common.PublicKey,
) (common.Address, error) {
	addr, err := common.NewEnterpriseAddress(paymentKey, s.networkType)
	return s.addressResult("EnterpriseAddress", addr, err)
}

// RewardAddress returns the reward address for the stake key
func (s *Service) RewardAddress(
	stakeKey common.PublicKey,
) (common.Address, error) {
	addr, err := common.NewRewardAddress(stakeKey, s.networkType)
	return s.addressResult("RewardAddress", addr, err)
}

// ExtractRewardAddress returns the reward address for the stake part of a base address. The
// base address network is used, not the service network
func (s *Service) ExtractRewardAddress(
	baseAddr common.Address,
) (common.Address, error) {
	addr, err := common.ExtractRewardAddress(baseAddr)
	return s.addressResult("ExtractRewardAddress", addr, err)
}

// ParseAddress decodes a bech32 address and checks that it belongs to the service network
func (s *Service) ParseAddress(addr string) (common.Address, error) {
	ret, err := common.NewAddress(addr)
	if err == nil {
		var network common.NetworkType
		network, err = ret.Network()
		if err == nil && network != s.networkType {
			err = common.InvalidArgumentError{
				Argument: "address",
				Reason: fmt.Sprintf(
					"address is for %s, expected %s",
					network,
					s.networkType,
				),
			}
		}
	}
	return s.addressResult("ParseAddress", ret, err)
}

// Prefix returns the bech32 prefix for the address type on the service network
func (s *Service) Prefix(addrType common.AddressType) (string, error) {
	return common.Prefix(addrType, s.networkType)
}

// EncodeCertificates returns the wire records for the certificates in canonical order
func (s *Service) EncodeCertificates(
	certs common.Certificates,
) (common.WireRecordList, error) {
	records, err := certs.Encode()
	if err != nil {
		s.logger.Warn(
			"failed to encode certificates",
			"error", err,
		)
		return nil, err
	}
	s.logger.Debug(
		"encoded certificates",
		"count", len(records),
	)
	return records, nil
}

// SerializeCertificates returns the certificates as a CBOR list
func (s *Service) SerializeCertificates(certs common.Certificates) ([]byte, error) {
	records, err := s.EncodeCertificates(certs)
	if err != nil {
		return nil, err
	}
	return records.Serialize()
}

// DecodeCertificates parses a CBOR certificate list
func (s *Service) DecodeCertificates(cborData []byte) (common.Certificates, error) {
	certs, err := common.DecodeCertificates(cborData)
	if err != nil {
		s.logger.Warn(
			"failed to decode certificates",
			"error", err,
		)
		return nil, err
	}
	s.logger.Debug(
		"decoded certificates",
		"count", len(certs),
	)
	return certs, nil
}

// AssetFingerprint returns the CIP-14 fingerprint for the hex-encoded policy ID and asset name
func (s *Service) AssetFingerprint(policyId string, assetName string) (string, error) {
	fp, err := common.Fingerprint(policyId, assetName)
	if err != nil {
		s.logger.Warn(
			"failed to compute asset fingerprint",
			"error", err,
		)
		return "", err
	}
	return fp, nil
}

// ParseTokenTypeId splits a hex-encoded token type ID into an Asset
func (s *Service) ParseTokenTypeId(tokenTypeId string, quantity int64) (common.Asset, error) {
	return common.ParseTokenTypeId(tokenTypeId, quantity)
}
