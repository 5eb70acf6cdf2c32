// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package source

import (
	"errors"
	"fmt"
	"strings"
)

// ErrContractViolation is matched by every error returned by [Check].
var ErrContractViolation = errors.New("diff source contract violation")

// ContractError describes a segment list that violates the source contract.
type ContractError struct {
	Index  int    // Index of the offending segment, -1 if the list as a whole is wrong.
	Reason string // Human readable description.
}

func (e *ContractError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", ErrContractViolation, e.Reason)
	}
	return fmt.Sprintf("%v: segment %d: %s", ErrContractViolation, e.Index, e.Reason)
}

func (e *ContractError) Is(target error) bool { return target == ErrContractViolation }

// Check verifies that segs is a valid diff from x to y.
func Check(x, y string, segs []Segment) error {
	rx, ry := x, y
	for i, seg := range segs {
		if !seg.Op.Valid() {
			return &ContractError{Index: i, Reason: fmt.Sprintf("invalid operation %v", seg.Op)}
		}
		if seg.Op != Insert {
			var ok bool
			if rx, ok = strings.CutPrefix(rx, seg.Text); !ok {
				return &ContractError{Index: i, Reason: fmt.Sprintf("%v text %q does not match x", seg.Op, seg.Text)}
			}
		}
		if seg.Op != Delete {
			var ok bool
			if ry, ok = strings.CutPrefix(ry, seg.Text); !ok {
				return &ContractError{Index: i, Reason: fmt.Sprintf("%v text %q does not match y", seg.Op, seg.Text)}
			}
		}
	}
	switch {
	case rx != "":
		return &ContractError{Index: -1, Reason: fmt.Sprintf("%d bytes of x not covered", len(rx))}
	case ry != "":
		return &ContractError{Index: -1, Reason: fmt.Sprintf("%d bytes of y not covered", len(ry))}
	}
	return nil
}
