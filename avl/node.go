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

// Node holds one value and the shape of the subtree below it.
// A node exclusively owns its children.
type Node struct {
	value  int
	height int // 1 for a leaf
	left   *Node
	right  *Node
}

func newLeaf(value int) *Node {
	return &Node{value: value, height: 1}
}

// Value returns the key stored in the node.
func (n *Node) Value() int {
	return n.value
}

// Height returns the cached height of the subtree rooted at n, or 0 for nil.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// BalanceFactor is the height of the left subtree minus the height of the
// right subtree. Positive means left-heavy. A nil node has balance 0.
func (n *Node) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// Left returns the left child, or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *Node) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// recomputeHeight must run on every node whose children changed,
// innermost first.
func (n *Node) recomputeHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}
