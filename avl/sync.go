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

import "sync"

// SyncTree guards a Tree with a single read/write lock so that it can be
// shared between goroutines. Readers never observe a tree in the middle
// of a rebalance.
type SyncTree struct {
	mu   sync.RWMutex
	tree *Tree
}

// NewSyncTree wraps tree, which must not be used directly afterwards.
// A nil tree starts empty.
func NewSyncTree(tree *Tree) *SyncTree {
	if tree == nil {
		tree = New()
	}
	return &SyncTree{tree: tree}
}

func (s *SyncTree) Insert(value int) []Rotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Insert(value)
}

func (s *SyncTree) Delete(value int) []Rotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Delete(value)
}

func (s *SyncTree) Contains(value int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Contains(value)
}

func (s *SyncTree) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

func (s *SyncTree) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Height()
}

func (s *SyncTree) InOrderValues() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.InOrderValues()
}

func (s *SyncTree) Check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Check()
}

// View runs fn with the read lock held. fn must not keep references to
// nodes after it returns.
func (s *SyncTree) View(fn func(tree *Tree)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.tree)
}
