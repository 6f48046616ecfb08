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
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <policy-id> [asset-name]",
		Short: "Print the CIP-14 fingerprint of a native asset",
		Long:  "Print the CIP-14 fingerprint of a native asset. The policy ID and asset name are hex-encoded. A single argument is treated as a token type ID (policy ID followed by asset name)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService(cmd)
			if err != nil {
				return err
			}
			var fp string
			if len(args) == 2 {
				fp, err = s.AssetFingerprint(args[0], args[1])
			} else {
				asset, parseErr := s.ParseTokenTypeId(args[0], 0)
				if parseErr != nil {
					return parseErr
				}
				fp, err = asset.Fingerprint()
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fp)
			return nil
		},
	}
}
