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
	"fmt"
	"reflect"
	"slices"

	"github.com/blinklabs-io/wallet/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

const (
	CertificateTypeStakeRegistration   = 0
	CertificateTypeStakeDeregistration = 1
	CertificateTypeStakeDelegation     = 2
)

type PoolKeyHash = Blake2b224

// Certificate is implemented by each supported certificate kind. Pool registration/retirement,
// genesis key delegation and instantaneous rewards certificates have no implementation
type Certificate interface {
	isCertificate()
	Type() uint
	Utxorpc() (*utxorpc.Certificate, error)
}

// stakeCredentialCertificate is the wire form shared by stake registration and deregistration
type stakeCredentialCertificate struct {
	cbor.StructAsArray
	CertType        uint
	StakeCredential StakeCredential
}

func encodeStakeCredentialCertificate(
	certType uint,
	credential []byte,
) ([]byte, error) {
	if credential == nil {
		credential = []byte{}
	}
	tmp := stakeCredentialCertificate{
		CertType: certType,
		StakeCredential: StakeCredential{
			// Only key-hash credentials are produced
			CredType:   StakeCredentialTypeAddrKeyHash,
			Credential: credential,
		},
	}
	return cbor.Encode(&tmp)
}

func decodeStakeCredentialCertificate(
	cborData []byte,
	certType uint,
) ([]byte, error) {
	var tmp stakeCredentialCertificate
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return nil, err
	}
	if tmp.CertType != certType {
		return nil, fmt.Errorf(
			"unexpected certificate type %d, wanted %d",
			tmp.CertType,
			certType,
		)
	}
	// The credential type is not checked
	return tmp.StakeCredential.Credential, nil
}

type StakeRegistrationCertificate struct {
	Credential []byte
}

func NewStakeRegistrationCertificate(credential []byte) *StakeRegistrationCertificate {
	return &StakeRegistrationCertificate{
		Credential: bytes.Clone(credential),
	}
}

func (StakeRegistrationCertificate) isCertificate() {}

func (c *StakeRegistrationCertificate) Type() uint {
	return CertificateTypeStakeRegistration
}

func (c *StakeRegistrationCertificate) MarshalCBOR() ([]byte, error) {
	return encodeStakeCredentialCertificate(
		CertificateTypeStakeRegistration,
		c.Credential,
	)
}

func (c *StakeRegistrationCertificate) UnmarshalCBOR(cborData []byte) error {
	credential, err := decodeStakeCredentialCertificate(
		cborData,
		CertificateTypeStakeRegistration,
	)
	if err != nil {
		return err
	}
	c.Credential = credential
	return nil
}

func (c *StakeRegistrationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeRegistration{
			StakeRegistration: keyHashCredential(c.Credential).Utxorpc(),
		},
	}, nil
}

type StakeDeregistrationCertificate struct {
	Credential []byte
}

func NewStakeDeregistrationCertificate(credential []byte) *StakeDeregistrationCertificate {
	return &StakeDeregistrationCertificate{
		Credential: bytes.Clone(credential),
	}
}

func (StakeDeregistrationCertificate) isCertificate() {}

func (c *StakeDeregistrationCertificate) Type() uint {
	return CertificateTypeStakeDeregistration
}

func (c *StakeDeregistrationCertificate) MarshalCBOR() ([]byte, error) {
	return encodeStakeCredentialCertificate(
		CertificateTypeStakeDeregistration,
		c.Credential,
	)
}

func (c *StakeDeregistrationCertificate) UnmarshalCBOR(cborData []byte) error {
	credential, err := decodeStakeCredentialCertificate(
		cborData,
		CertificateTypeStakeDeregistration,
	)
	if err != nil {
		return err
	}
	c.Credential = credential
	return nil
}

func (c *StakeDeregistrationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeDeregistration{
			StakeDeregistration: keyHashCredential(c.Credential).Utxorpc(),
		},
	}, nil
}

type StakeDelegationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential StakeCredential
	PoolKeyHash     PoolKeyHash
}

func NewStakeDelegationCertificate(
	stakeCredential StakeCredential,
	poolKeyHash PoolKeyHash,
) *StakeDelegationCertificate {
	return &StakeDelegationCertificate{
		CertType:        CertificateTypeStakeDelegation,
		StakeCredential: stakeCredential,
		PoolKeyHash:     poolKeyHash,
	}
}

func (StakeDelegationCertificate) isCertificate() {}

func (c *StakeDelegationCertificate) Type() uint {
	return CertificateTypeStakeDelegation
}

func (c *StakeDelegationCertificate) MarshalCBOR() ([]byte, error) {
	tmp := *c
	tmp.CertType = CertificateTypeStakeDelegation
	if tmp.StakeCredential.Credential == nil {
		tmp.StakeCredential.Credential = []byte{}
	}
	return cbor.EncodeGeneric(&tmp)
}

func (c *StakeDelegationCertificate) UnmarshalCBOR(cborData []byte) error {
	if err := c.UnmarshalCborGeneric(cborData, c); err != nil {
		return err
	}
	if c.CertType != CertificateTypeStakeDelegation {
		return fmt.Errorf(
			"unexpected certificate type %d, wanted %d",
			c.CertType,
			CertificateTypeStakeDelegation,
		)
	}
	return nil
}

func (c *StakeDelegationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeDelegation{
			StakeDelegation: &utxorpc.StakeDelegationCert{
				StakeCredential: c.StakeCredential.Utxorpc(),
				PoolKeyhash:     c.PoolKeyHash[:],
			},
		},
	}, nil
}

func keyHashCredential(credential []byte) *StakeCredential {
	return &StakeCredential{
		CredType:   StakeCredentialTypeAddrKeyHash,
		Credential: credential,
	}
}

// WireRecordList is the list of encoded certificate records as it appears on the wire
type WireRecordList []cbor.RawMessage

// Serialize returns the records wrapped in a CBOR list
func (w WireRecordList) Serialize() ([]byte, error) {
	if w == nil {
		w = WireRecordList{}
	}
	return cbor.Encode(w)
}

// Certificates is the set of certificates attached to a transaction
type Certificates []Certificate

// Canonical returns the certificates ordered by kind: registrations, then deregistrations, then
// delegations. Certificates of the same kind keep their relative order
func (c Certificates) Canonical() Certificates {
	ret := slices.Clone(c)
	slices.SortStableFunc(
		ret,
		func(a, b Certificate) int {
			return int(a.Type()) - int(b.Type())
		},
	)
	return ret
}

// Encode returns the wire records for the certificates in canonical order
func (c Certificates) Encode() (WireRecordList, error) {
	for idx, cert := range c {
		if isNilCertificate(cert) {
			return nil, InvalidArgumentError{
				Argument: "certificates",
				Reason:   fmt.Sprintf("nil certificate at index %d", idx),
			}
		}
	}
	ret := make(WireRecordList, 0, len(c))
	for _, cert := range c.Canonical() {
		record, err := cbor.Encode(cert)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to encode %T: %w",
				cert,
				err,
			)
		}
		ret = append(ret, record)
	}
	return ret, nil
}

// Serialize returns the CBOR encoding of the certificate list
func (c Certificates) Serialize() ([]byte, error) {
	records, err := c.Encode()
	if err != nil {
		return nil, err
	}
	return records.Serialize()
}

func (c Certificates) MarshalCBOR() ([]byte, error) {
	return c.Serialize()
}

func (c *Certificates) UnmarshalCBOR(cborData []byte) error {
	tmpCerts, err := DecodeCertificates(cborData)
	if err != nil {
		return err
	}
	*c = tmpCerts
	return nil
}

// StakeRegistration returns the last stake registration certificate in the list, if any
func (c Certificates) StakeRegistration() *StakeRegistrationCertificate {
	return lastCertificate[*StakeRegistrationCertificate](c)
}

// StakeDeregistration returns the last stake deregistration certificate in the list, if any
func (c Certificates) StakeDeregistration() *StakeDeregistrationCertificate {
	return lastCertificate[*StakeDeregistrationCertificate](c)
}

// StakeDelegation returns the last stake delegation certificate in the list, if any
func (c Certificates) StakeDelegation() *StakeDelegationCertificate {
	return lastCertificate[*StakeDelegationCertificate](c)
}

// lastCertificate returns the last non-nil certificate of type T, so later entries win
func lastCertificate[T Certificate](certs Certificates) T {
	var ret T
	for i := len(certs) - 1; i >= 0; i-- {
		if tmp, ok := certs[i].(T); ok && !isNilCertificate(tmp) {
			return tmp
		}
	}
	return ret
}

// isNilCertificate catches both a nil interface and a typed nil pointer
func isNilCertificate(cert Certificate) bool {
	if cert == nil {
		return true
	}
	v := reflect.ValueOf(cert)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// DecodeCertificates decodes a CBOR certificate list
func DecodeCertificates(cborData []byte) (Certificates, error) {
	if len(cborData) == 0 ||
		cborData[0]&cbor.CborTypeMask != cbor.CborTypeArray {
		return nil, MalformedWireError{Reason: "certificate list is not an array"}
	}
	var records WireRecordList
	bytesRead, err := cbor.Decode(cborData, &records)
	if err != nil {
		return nil, MalformedWireError{
			Reason: "certificate list is not an array",
			Err:    err,
		}
	}
	if bytesRead != len(cborData) {
		return nil, MalformedWireError{
			Reason: fmt.Sprintf(
				"%d trailing bytes after certificate list",
				len(cborData)-bytesRead,
			),
		}
	}
	return records.Decode()
}

// Decode decodes each wire record into its certificate
func (w WireRecordList) Decode() (Certificates, error) {
	ret := make(Certificates, 0, len(w))
	for idx, record := range w {
		if len(record) == 0 ||
			record[0]&cbor.CborTypeMask != cbor.CborTypeArray {
			return nil, MalformedWireError{
				Reason: fmt.Sprintf("certificate record %d is not an array", idx),
			}
		}
		tmpCert, err := cbor.DecodeById(
			record,
			map[int]any{
				CertificateTypeStakeRegistration:   &StakeRegistrationCertificate{},
				CertificateTypeStakeDeregistration: &StakeDeregistrationCertificate{},
				CertificateTypeStakeDelegation:     &StakeDelegationCertificate{},
			},
		)
		if err != nil {
			return nil, MalformedWireError{
				Reason: fmt.Sprintf(
					"certificate record %d could not be decoded",
					idx,
				),
				Err: err,
			}
		}
		ret = append(ret, tmpCert.(Certificate))
	}
	return ret, nil
}
