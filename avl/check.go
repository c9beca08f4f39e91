// Copyright 2025 Naren Yellavula
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

package avl

import "fmt"

// Check verifies the search order, the balance of every node and that
// every cached height is the true height. It returns the first violation
// found, wrapping ErrUnordered, ErrUnbalanced or ErrHeightMismatch.
func Check(n *Node) error {
	_, err := check(n, nil, nil)
	return err
}

// check returns the recomputed height of n. lo and hi are the exclusive
// bounds inherited from the ancestors, nil when unbounded.
func check(n *Node, lo, hi *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && n.value <= *lo {
		return 0, fmt.Errorf("%w: node %d is not greater than %d", ErrUnordered, n.value, *lo)
	}
	if hi != nil && n.value >= *hi {
		return 0, fmt.Errorf("%w: node %d is not less than %d", ErrUnordered, n.value, *hi)
	}

	lh, err := check(n.left, lo, &n.value)
	if err != nil {
		return 0, err
	}
	rh, err := check(n.right, &n.value, hi)
	if err != nil {
		return 0, err
	}

	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("%w: node %d has balance factor %d", ErrUnbalanced, n.value, bf)
	}
	h := max(lh, rh) + 1
	if n.height != h {
		return 0, fmt.Errorf("%w: node %d caches %d, actual %d", ErrHeightMismatch, n.value, n.height, h)
	}
	return h, nil
}
