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

const (
	AddressNetworkTestnet = 0
	AddressNetworkMainnet = 1

	ProtocolMagicTestnet uint32 = 1097911063
	ProtocolMagicMainnet uint32 = 764824073
)

// NetworkType selects the network an address belongs to
type NetworkType uint8

const (
	NetworkTypeTestnet NetworkType = AddressNetworkTestnet
	NetworkTypeMainnet NetworkType = AddressNetworkMainnet
)

// NetworkInfo holds the fixed identifiers for a network
type NetworkInfo struct {
	NetworkId     uint8
	ProtocolMagic uint32
}

var (
	networkInfoTestnet = NetworkInfo{
		NetworkId:     AddressNetworkTestnet,
		ProtocolMagic: ProtocolMagicTestnet,
	}
	networkInfoMainnet = NetworkInfo{
		NetworkId:     AddressNetworkMainnet,
		ProtocolMagic: ProtocolMagicMainnet,
	}
)

// Info returns the network ID and protocol magic for the network type
func (n NetworkType) Info() (NetworkInfo, error) {
	switch n {
	case NetworkTypeTestnet:
		return networkInfoTestnet, nil
	case NetworkTypeMainnet:
		return networkInfoMainnet, nil
	}
	return NetworkInfo{}, UnknownNetworkTypeError{Network: n}
}

// PrefixSuffix returns the suffix appended to bech32 human-readable prefixes on this network
func (n NetworkType) PrefixSuffix() (string, error) {
	switch n {
	case NetworkTypeTestnet:
		return "_test", nil
	case NetworkTypeMainnet:
		return "", nil
	}
	return "", UnknownNetworkTypeError{Network: n}
}

func (n NetworkType) String() string {
	switch n {
	case NetworkTypeTestnet:
		return "testnet"
	case NetworkTypeMainnet:
		return "mainnet"
	}
	return "unknown"
}

// NetworkTypeFromId returns the network type for a network ID as found in an address header
func NetworkTypeFromId(networkId uint8) (NetworkType, error) {
	switch networkId {
	case AddressNetworkTestnet:
		return NetworkTypeTestnet, nil
	case AddressNetworkMainnet:
		return NetworkTypeMainnet, nil
	}
	return 0, UnknownNetworkTypeError{Network: NetworkType(networkId)}
}
