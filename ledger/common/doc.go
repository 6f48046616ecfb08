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

// Package common provides the ledger value types shared by the wallet: addresses, stake
// credentials, certificates and native asset identifiers, together with their binary encodings.
//
// # Key Files by Purpose
//
//   - network.go: NetworkType and the network ID / protocol magic for each network
//   - address.go: base, enterprise and reward address construction and parsing
//   - certs.go: stake registration, deregistration and delegation certificates
//   - asset.go: CIP-14 asset fingerprints and token type IDs
//   - common.go: Blake2b hash types
//   - errors.go: sentinel and typed errors
//
// Everything in this package is a pure function over its inputs and safe for concurrent use.
package common
