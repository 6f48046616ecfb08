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
	"errors"
	"fmt"
)

var (
	// ErrUnknownAddressType is returned when an address type outside of base/enterprise/reward is used
	ErrUnknownAddressType = errors.New("unknown address type")
	// ErrUnknownNetworkType is returned when a network type outside of testnet/mainnet is used
	ErrUnknownNetworkType = errors.New("unknown network type")
	// ErrInvalidArgument is returned when a caller-supplied value violates a documented precondition
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMalformedWire is returned when decoded CBOR does not have the expected certificate shape
	ErrMalformedWire = errors.New("malformed wire data")
)

// UnknownAddressTypeError indicates an address type with no known header tag
type UnknownAddressTypeError struct {
	Type AddressType
}

func (e UnknownAddressTypeError) Error() string {
	return fmt.Sprintf("unknown address type: %d", uint8(e.Type))
}

func (UnknownAddressTypeError) Is(target error) bool {
	return target == ErrUnknownAddressType
}

// UnknownNetworkTypeError indicates a network type with no known network ID
type UnknownNetworkTypeError struct {
	Network NetworkType
}

func (e UnknownNetworkTypeError) Error() string {
	return fmt.Sprintf("unknown network type: %d", uint8(e.Network))
}

func (UnknownNetworkTypeError) Is(target error) bool {
	return target == ErrUnknownNetworkType
}

// InvalidArgumentError indicates that an argument failed validation
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

func (InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// MalformedWireError indicates CBOR data that doesn't match the expected record shape
type MalformedWireError struct {
	Reason string
	Err    error
}

func (e MalformedWireError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed wire data: %s: %v", e.Reason, e.Err)
	}
	return "malformed wire data: " + e.Reason
}

func (e MalformedWireError) Unwrap() error { return e.Err }

func (MalformedWireError) Is(target error) bool {
	return target == ErrMalformedWire
}
