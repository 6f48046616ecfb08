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

	"github.com/blinklabs-io/wallet/ledger/common"
	"github.com/spf13/cobra"
)

func parsePublicKey(name string, keyHex string) (common.PublicKey, error) {
	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s key: %w", name, err)
	}
	key, err := common.NewPublicKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("bad %s key: %w", name, err)
	}
	return key, nil
}

func addressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Build an address from hex-encoded public keys",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "base <payment-key> <stake-key>",
			Short: "Build a base address",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := newService(cmd)
				if err != nil {
					return err
				}
				paymentKey, err := parsePublicKey("payment", args[0])
				if err != nil {
					return err
				}
				stakeKey, err := parsePublicKey("stake", args[1])
				if err != nil {
					return err
				}
				addr, err := s.BaseAddress(paymentKey, stakeKey)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), addr.String())
				return nil
			},
		},
		&cobra.Command{
			Use:   "enterprise <payment-key>",
			Short: "Build an enterprise address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := newService(cmd)
				if err != nil {
					return err
				}
				paymentKey, err := parsePublicKey("payment", args[0])
				if err != nil {
					return err
				}
				addr, err := s.EnterpriseAddress(paymentKey)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), addr.String())
				return nil
			},
		},
		&cobra.Command{
			Use:   "reward <stake-key>",
			Short: "Build a reward address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := newService(cmd)
				if err != nil {
					return err
				}
				stakeKey, err := parsePublicKey("stake", args[0])
				if err != nil {
					return err
				}
				addr, err := s.RewardAddress(stakeKey)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), addr.String())
				return nil
			},
		},
	)
	return cmd
}

func rewardAddressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reward-address <base-address>",
		Short: "Print the reward address for the stake part of a base address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService(cmd)
			if err != nil {
				return err
			}
			baseAddr, err := s.ParseAddress(args[0])
			if err != nil {
				return err
			}
			rewardAddr, err := s.ExtractRewardAddress(baseAddr)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rewardAddr.String())
			return nil
		},
	}
}

type addressInfo struct {
	Address        string              `json:"address"`
	Type           string              `json:"type"`
	Network        string              `json:"network"`
	Header         string              `json:"header"`
	PaymentKeyHash *common.AddrKeyHash `json:"paymentKeyHash,omitempty"`
	StakeKeyHash   *common.AddrKeyHash `json:"stakeKeyHash,omitempty"`
}

func inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <address>",
		Short: "Decode an address and print its parts as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService(cmd)
			if err != nil {
				return err
			}
			addr, err := s.ParseAddress(args[0])
			if err != nil {
				return err
			}
			body, err := addr.Body()
			if err != nil {
				return err
			}
			info := addressInfo{
				Address:        addr.String(),
				Type:           body.Type.String(),
				Network:        body.Network.String(),
				Header:         fmt.Sprintf("%02x", addr.Header()),
				PaymentKeyHash: body.PaymentHash,
				StakeKeyHash:   body.StakeHash,
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
}
