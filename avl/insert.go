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

// Insert adds value to the subtree rooted at n and returns the new subtree
// root. Inserting a value that is already present returns n untouched.
func Insert(n *Node, value int, obs Observer) *Node {
	if n == nil {
		return newLeaf(value)
	}

	switch {
	case value < n.value:
		n.left = Insert(n.left, value, obs)
	case value > n.value:
		n.right = Insert(n.right, value, obs)
	default:
		return n
	}

	n.recomputeHeight()

	// The inserted value tells which grandchild grew; the balance factor
	// alone cannot separate the single and double rotation cases.
	balanceFactor := n.BalanceFactor()
	if balanceFactor > 1 {
		if value < n.left.value {
			return rotateRight(n, obs)
		}
		// Left-Right case
		n.left = rotateLeft(n.left, obs)
		return rotateRight(n, obs)
	}
	if balanceFactor < -1 {
		if value > n.right.value {
			return rotateLeft(n, obs)
		}
		// Right-Left case
		n.right = rotateRight(n.right, obs)
		return rotateLeft(n, obs)
	}

	return n
}
