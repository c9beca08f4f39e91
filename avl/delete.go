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

// Delete removes value from the subtree rooted at n and returns the new
// subtree root, which is nil once the subtree is empty. Deleting a value
// that is not present is a no-op.
func Delete(n *Node, value int, obs Observer) *Node {
	if n == nil {
		return nil
	}

	switch {
	case value < n.value:
		n.left = Delete(n.left, value, obs)
	case value > n.value:
		n.right = Delete(n.right, value, obs)
	default:
		// Zero or one child: the child (already balanced) takes n's place.
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// Two children: copy the in-order successor's value up and remove
		// the successor from the right subtree instead.
		successor := Minimum(n.right)
		n.value = successor.value
		n.right = Delete(n.right, successor.value, obs)
	}

	n.recomputeHeight()
	return rebalance(n, obs)
}

// Minimum returns the leftmost node of the subtree. n must not be nil.
func Minimum(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Maximum returns the rightmost node of the subtree. n must not be nil.
func Maximum(n *Node) *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// rebalance restores the balance of n after a removal below it. The
// deleted value is gone, so the case is chosen by the taller child's own
// balance factor.
func rebalance(n *Node, obs Observer) *Node {
	balanceFactor := n.BalanceFactor()

	// Left-heavy
	if balanceFactor > 1 {
		if n.left.BalanceFactor() >= 0 {
			return rotateRight(n, obs)
		}
		n.left = rotateLeft(n.left, obs)
		return rotateRight(n, obs)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if n.right.BalanceFactor() <= 0 {
			return rotateLeft(n, obs)
		}
		n.right = rotateRight(n.right, obs)
		return rotateLeft(n, obs)
	}

	return n
}
