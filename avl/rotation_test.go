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

import (
	"reflect"
	"testing"
)

type rotationTestCase struct {
	Name     string
	Initial  []int
	Insert   []int
	Delete   []int
	Expected []Rotation // Rotations reported by the last operation
	Root     int
}

func TestRotationEvents(t *testing.T) {
	testCases := []rotationTestCase{
		{Name: "right-right", Initial: []int{10, 20}, Insert: []int{30}, Expected: []Rotation{RotateLeft}, Root: 20},
		{Name: "left-left", Initial: []int{30, 20}, Insert: []int{10}, Expected: []Rotation{RotateRight}, Root: 20},
		{Name: "left-right", Initial: []int{30, 10}, Insert: []int{20}, Expected: []Rotation{RotateLeft, RotateRight}, Root: 20},
		{Name: "right-left", Initial: []int{10, 30}, Insert: []int{20}, Expected: []Rotation{RotateRight, RotateLeft}, Root: 20},
		{Name: "no rotation", Initial: []int{20, 10}, Insert: []int{30}, Expected: nil, Root: 20},
		{Name: "delete single", Initial: []int{20, 10, 30, 40}, Delete: []int{10}, Expected: []Rotation{RotateLeft}, Root: 30},
		{Name: "delete double", Initial: []int{20, 10, 30, 25}, Delete: []int{10}, Expected: []Rotation{RotateRight, RotateLeft}, Root: 25},
		{Name: "delete mirrored double", Initial: []int{20, 10, 30, 15}, Delete: []int{30}, Expected: []Rotation{RotateLeft, RotateRight}, Root: 15},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := FromValues(tc.Initial)

			var got []Rotation
			for _, v := range tc.Insert {
				got = tree.Insert(v)
			}
			for _, v := range tc.Delete {
				got = tree.Delete(v)
			}

			if !reflect.DeepEqual(got, tc.Expected) {
				t.Errorf("rotations = %v; want %v", got, tc.Expected)
			}
			if root := tree.Root().Value(); root != tc.Root {
				t.Errorf("root = %d; want %d", root, tc.Root)
			}
		})
	}
}

func TestRotationLabels(t *testing.T) {
	if got := RotateRight.String(); got != "Right (LL)" {
		t.Errorf("RotateRight.String() = %q", got)
	}
	if got := RotateLeft.String(); got != "Left (RR)" {
		t.Errorf("RotateLeft.String() = %q", got)
	}
	if got := Rotation(7).String(); got != "unknown" {
		t.Errorf("Rotation(7).String() = %q", got)
	}
}

func TestObserverFuncStreamsEvents(t *testing.T) {
	tree := New()
	var labels []string
	obs := ObserverFunc(func(r Rotation) {
		labels = append(labels, r.String())
	})

	for _, v := range []int{30, 10} {
		if !tree.InsertNotify(v, obs) {
			t.Fatalf("InsertNotify(%d) reported duplicate", v)
		}
	}
	if !tree.InsertNotify(20, obs) {
		t.Fatalf("InsertNotify(20) reported duplicate")
	}
	if tree.InsertNotify(20, obs) {
		t.Errorf("second InsertNotify(20) reported a new value")
	}

	want := []string{"Left (RR)", "Right (LL)"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v; want %v", labels, want)
	}

	if tree.DeleteNotify(99, obs) {
		t.Errorf("DeleteNotify(99) reported a removal")
	}
	if !tree.DeleteNotify(20, obs) {
		t.Errorf("DeleteNotify(20) reported nothing removed")
	}
}

func TestNodeLevelFunctionsAcceptNilObserver(t *testing.T) {
	var root *Node
	for _, v := range []int{1, 2, 3, 4, 5} {
		root = Insert(root, v, nil)
	}
	root = Insert(root, 3, nil)
	root = Delete(root, 1, nil)
	root = Delete(root, 42, nil)

	if got, want := InOrderValues(root), []int{2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("InOrderValues() = %v; want %v", got, want)
	}
	if err := Check(root); err != nil {
		t.Errorf("Check() = %v", err)
	}
	if got := Minimum(root).Value(); got != 2 {
		t.Errorf("Minimum() = %d; want 2", got)
	}
	if got := InOrderValues(nil); got == nil || len(got) != 0 {
		t.Errorf("InOrderValues(nil) = %#v; want empty slice", got)
	}
}

func TestRotateFixesHeightsBottomUp(t *testing.T) {
	// 3 <- 2 <- 1 chain, heights deliberately correct before the rotation
	c := newLeaf(1)
	b := &Node{value: 2, height: 2, left: c}
	a := &Node{value: 3, height: 3, left: b}

	var rec Recorder
	root := rotateRight(a, &rec)

	if root != b {
		t.Fatalf("new root = %d; want 2", root.Value())
	}
	if a.Height() != 1 || b.Height() != 2 {
		t.Errorf("heights = %d, %d; want 1, 2", a.Height(), b.Height())
	}
	if !reflect.DeepEqual(rec.Rotations, []Rotation{RotateRight}) {
		t.Errorf("rotations = %v", rec.Rotations)
	}

	// rotating without the needed child is a no-op
	leaf := newLeaf(9)
	if rotateLeft(leaf, &rec) != leaf || len(rec.Rotations) != 1 {
		t.Errorf("rotateLeft on a leaf should not rotate")
	}
}
