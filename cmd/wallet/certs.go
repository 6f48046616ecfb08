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

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blinklabs-io/wallet/ledger/common"
	"github.com/spf13/cobra"
)

var certsFlags = struct {
	register   []string
	deregister []string
	delegate   []string
}{}

func certsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "certs",
		Short: "Encode and decode stake certificate lists",
	}
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode stake certificates as a hex-encoded CBOR list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService(cmd)
			if err != nil {
				return err
			}
			certs, err := certificatesFromFlags()
			if err != nil {
				return err
			}
			cborData, err := s.SerializeCertificates(certs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(cborData))
			return nil
		},
	}
	encodeCmd.Flags().StringSliceVar(
		&certsFlags.register,
		"register",
		nil,
		"hex-encoded stake key hash to register",
	)
	encodeCmd.Flags().StringSliceVar(
		&certsFlags.deregister,
		"deregister",
		nil,
		"hex-encoded stake key hash to deregister",
	)
	encodeCmd.Flags().StringSliceVar(
		&certsFlags.delegate,
		"delegate",
		nil,
		"delegation in <stake-key-hash>:<pool-key-hash> format, both hex-encoded",
	)
	decodeCmd := &cobra.Command{
		Use:   "decode <cbor-hex>",
		Short: "Decode a hex-encoded CBOR certificate list and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService(cmd)
			if err != nil {
				return err
			}
			cborData, err := hex.DecodeString(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("failed to decode hex: %w", err)
			}
			certs, err := s.DecodeCertificates(cborData)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(certificatesInfo(certs))
		},
	}
	cmd.AddCommand(encodeCmd, decodeCmd)
	return cmd
}

func certificatesFromFlags() (common.Certificates, error) {
	var ret common.Certificates
	for _, tmpHex := range certsFlags.register {
		credential, err := hex.DecodeString(tmpHex)
		if err != nil {
			return nil, fmt.Errorf("bad registration credential: %w", err)
		}
		ret = append(ret, common.NewStakeRegistrationCertificate(credential))
	}
	for _, tmpHex := range certsFlags.deregister {
		credential, err := hex.DecodeString(tmpHex)
		if err != nil {
			return nil, fmt.Errorf("bad deregistration credential: %w", err)
		}
		ret = append(ret, common.NewStakeDeregistrationCertificate(credential))
	}
	for _, tmpDelegation := range certsFlags.delegate {
		credHex, poolHex, ok := strings.Cut(tmpDelegation, ":")
		if !ok {
			return nil, fmt.Errorf("bad delegation %q: expected <stake-key-hash>:<pool-key-hash>", tmpDelegation)
		}
		credential, err := hex.DecodeString(credHex)
		if err != nil {
			return nil, fmt.Errorf("bad delegation credential: %w", err)
		}
		poolKeyHash, err := hex.DecodeString(poolHex)
		if err != nil {
			return nil, fmt.Errorf("bad delegation pool key hash: %w", err)
		}
		if len(poolKeyHash) != common.Blake2b224Size {
			return nil, fmt.Errorf(
				"bad delegation pool key hash: expected %d bytes, got %d",
				common.Blake2b224Size,
				len(poolKeyHash),
			)
		}
		ret = append(
			ret,
			common.NewStakeDelegationCertificate(
				common.StakeCredential{
					CredType:   common.StakeCredentialTypeAddrKeyHash,
					Credential: credential,
				},
				common.NewBlake2b224(poolKeyHash),
			),
		)
	}
	return ret, nil
}

type certificateInfo struct {
	Type        string `json:"type"`
	Credential  string `json:"credential"`
	PoolKeyHash string `json:"poolKeyHash,omitempty"`
}

func certificatesInfo(certs common.Certificates) []certificateInfo {
	ret := make([]certificateInfo, 0, len(certs))
	for _, cert := range certs {
		switch c := cert.(type) {
		case *common.StakeRegistrationCertificate:
			ret = append(ret, certificateInfo{
				Type:       "stake_registration",
				Credential: hex.EncodeToString(c.Credential),
			})
		case *common.StakeDeregistrationCertificate:
			ret = append(ret, certificateInfo{
				Type:       "stake_deregistration",
				Credential: hex.EncodeToString(c.Credential),
			})
		case *common.StakeDelegationCertificate:
			ret = append(ret, certificateInfo{
				Type:        "stake_delegation",
				Credential:  hex.EncodeToString(c.StakeCredential.Credential),
				PoolKeyHash: c.PoolKeyHash.String(),
			})
		}
	}
	return ret
}
