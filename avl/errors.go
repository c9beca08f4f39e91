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

import "errors"

// Lookup errors
var (
	// ErrEmptyTree is returned by Min and Max on a tree with no values.
	ErrEmptyTree = errors.New("tree is empty")
)

// Input errors
var (
	// ErrInvalidValue indicates a value that cannot be ordered against the
	// tree's integer keys.
	ErrInvalidValue = errors.New("invalid value")
)

// Invariant errors, reported by Check
var (
	// ErrUnordered indicates a node outside the range its ancestors allow.
	ErrUnordered = errors.New("search order violated")

	// ErrUnbalanced indicates a node whose subtree heights differ by more than one.
	ErrUnbalanced = errors.New("balance violated")

	// ErrHeightMismatch indicates a cached height that differs from the real one.
	ErrHeightMismatch = errors.New("cached height is stale")
)
