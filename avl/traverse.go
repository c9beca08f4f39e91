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

// InOrderValues returns every value in the subtree in ascending order.
// The result is never nil.
func InOrderValues(n *Node) []int {
	return appendInOrder([]int{}, n)
}

func appendInOrder(values []int, n *Node) []int {
	if n == nil {
		return values
	}
	values = appendInOrder(values, n.left)
	values = append(values, n.value)
	return appendInOrder(values, n.right)
}

// Search walks down from n looking for value.
func Search(n *Node, value int) *Node {
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Levels groups the nodes of the subtree by depth, left to right.
// Level 0 holds n itself.
func Levels(n *Node) [][]*Node {
	if n == nil {
		return nil
	}
	var levels [][]*Node
	current := []*Node{n}
	for len(current) > 0 {
		levels = append(levels, current)
		var next []*Node
		for _, node := range current {
			if node.left != nil {
				next = append(next, node.left)
			}
			if node.right != nil {
				next = append(next, node.right)
			}
		}
		current = next
	}
	return levels
}
