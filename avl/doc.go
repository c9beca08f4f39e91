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

// Package avl implements a height-balanced binary search tree of unique
// integers.
//
// Every node caches the height of its subtree so that rebalancing on the
// way back up from a mutation only costs the length of the search path.
// Insert and delete are written recursively and return the new root of
// the subtree they were given; the caller stores that result back into
// the parent link (or the tree's root slot).
//
// A tree is not safe for concurrent use. Either keep it inside a single
// goroutine or wrap it in a SyncTree.
package avl
