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

// Tree owns the root of a balanced search tree. The zero value is an
// empty tree ready to use.
type Tree struct {
	root  *Node
	count int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// FromValues builds a tree by inserting each value in order. Duplicates
// are ignored.
func FromValues(values []int) *Tree {
	tree := New()
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

// Root returns the root node, nil for an empty tree.
func (tree *Tree) Root() *Node {
	return tree.root
}

// Len returns the number of values stored.
func (tree *Tree) Len() int {
	return tree.count
}

func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the whole tree, 0 when empty.
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Insert adds value and returns the rotations performed to rebalance.
// Inserting a value already present changes nothing and returns nil.
func (tree *Tree) Insert(value int) []Rotation {
	var rec Recorder
	tree.InsertNotify(value, &rec)
	return rec.Rotations
}

// InsertNotify adds value, reporting rotations to obs as they happen. It
// reports whether the value was new.
func (tree *Tree) InsertNotify(value int, obs Observer) bool {
	if tree.Contains(value) {
		return false
	}
	tree.root = Insert(tree.root, value, obs)
	tree.count++
	return true
}

// Delete removes value and returns the rotations performed to rebalance.
// Deleting a value that is not present changes nothing and returns nil.
func (tree *Tree) Delete(value int) []Rotation {
	var rec Recorder
	tree.DeleteNotify(value, &rec)
	return rec.Rotations
}

// DeleteNotify removes value, reporting rotations to obs as they happen.
// It reports whether the value was present.
func (tree *Tree) DeleteNotify(value int, obs Observer) bool {
	if !tree.Contains(value) {
		return false
	}
	tree.root = Delete(tree.root, value, obs)
	tree.count--
	return true
}

func (tree *Tree) Contains(value int) bool {
	return Search(tree.root, value) != nil
}

// Search returns the node holding value, or nil.
func (tree *Tree) Search(value int) *Node {
	return Search(tree.root, value)
}

// Min returns the smallest value.
func (tree *Tree) Min() (int, error) {
	if tree.root == nil {
		return 0, ErrEmptyTree
	}
	return Minimum(tree.root).value, nil
}

// Max returns the largest value.
func (tree *Tree) Max() (int, error) {
	if tree.root == nil {
		return 0, ErrEmptyTree
	}
	return Maximum(tree.root).value, nil
}

// InOrderValues returns all values in ascending order. The slice is
// freshly allocated on each call.
func (tree *Tree) InOrderValues() []int {
	return appendInOrder(make([]int, 0, tree.count), tree.root)
}

// Levels returns the nodes grouped by depth, root first.
func (tree *Tree) Levels() [][]*Node {
	return Levels(tree.root)
}

// Check verifies every invariant of the tree, including the node count.
func (tree *Tree) Check() error {
	if err := Check(tree.root); err != nil {
		return err
	}
	if n := len(tree.InOrderValues()); n != tree.count {
		return fmt.Errorf("tree counts %d values, holds %d", tree.count, n)
	}
	return nil
}

// Clear drops every value.
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}
