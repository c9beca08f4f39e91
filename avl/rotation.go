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

// Rotation identifies a single rotation performed while rebalancing.
// Double rotations are reported as two events, child first.
type Rotation int

const (
	// RotateRight fixes a left-left imbalance.
	RotateRight Rotation = iota
	// RotateLeft fixes a right-right imbalance.
	RotateLeft
)

func (r Rotation) String() string {
	switch r {
	case RotateRight:
		return "Right (LL)"
	case RotateLeft:
		return "Left (RR)"
	default:
		return "unknown"
	}
}

// Observer is notified of every rotation a mutation performs.
// It carries no data needed for correctness and may be nil.
type Observer interface {
	Rotated(r Rotation)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(r Rotation)

func (f ObserverFunc) Rotated(r Rotation) {
	f(r)
}

// Recorder collects rotations in the order they happened.
type Recorder struct {
	Rotations []Rotation
}

func (rec *Recorder) Rotated(r Rotation) {
	rec.Rotations = append(rec.Rotations, r)
}

func notify(obs Observer, r Rotation) {
	if obs != nil {
		obs.Rotated(r)
	}
}

// rotateRight lifts y.left into y's place.
//
//	    y            x
//	   / \          / \
//	  x   C  -->   A   y
//	 / \              / \
//	A   T            T   C
func rotateRight(y *Node, obs Observer) *Node {
	if y == nil || y.left == nil {
		return y
	}
	notify(obs, RotateRight)

	x := y.left
	y.left = x.right
	x.right = y

	// y is below x now, so it goes first
	y.recomputeHeight()
	x.recomputeHeight()

	return x
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft(x *Node, obs Observer) *Node {
	if x == nil || x.right == nil {
		return x
	}
	notify(obs, RotateLeft)

	y := x.right
	x.right = y.left
	y.left = x

	x.recomputeHeight()
	y.recomputeHeight()

	return y
}
