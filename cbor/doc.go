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

// Package cbor provides CBOR encoding/decoding utilities for ledger data structures.
//
// This package wraps github.com/fxamacker/cbor/v2 with a fixed set of encoder and
// decoder options so that every caller in this module produces the same bytes.
//
// Embeddable types for struct encoding:
//   - StructAsArray: Embed to encode struct fields as CBOR array instead of map
//   - DecodeStoreCbor: Embed to preserve original CBOR bytes
//
// Utility types:
//   - RawMessage: Deferred decoding (like json.RawMessage)
//   - ByteString: Bytestrings that can be used as map keys
//   - Value: Decodes arbitrary CBOR into plain Go values
//
// Types that store their original CBOR follow this pattern:
//
//	func (m *MyType) UnmarshalCBOR(data []byte) error {
//	    type tMyType MyType
//	    var tmp tMyType
//	    if _, err := cbor.Decode(data, &tmp); err != nil {
//	        return err
//	    }
//	    *m = MyType(tmp)
//	    m.SetCbor(data)
//	    return nil
//	}
package cbor
