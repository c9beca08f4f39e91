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

package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cybrota/avltree/avl"
)

func TestNewReport(t *testing.T) {
	tree := avl.New()
	var rotations []avl.Rotation
	for _, v := range []int{10, 20, 30} {
		rotations = append(rotations, tree.Insert(v)...)
	}

	r := NewReport(tree, rotations)

	if !reflect.DeepEqual(r.Values, []int{10, 20, 30}) {
		t.Errorf("Values = %v", r.Values)
	}
	if r.Nodes != 3 || r.Height != 2 {
		t.Errorf("Nodes, Height = %d, %d; want 3, 2", r.Nodes, r.Height)
	}
	want := [][]NodeInfo{
		{{Value: 20, Height: 2, BalanceFactor: 0}},
		{{Value: 10, Height: 1}, {Value: 30, Height: 1}},
	}
	if !reflect.DeepEqual(r.Levels, want) {
		t.Errorf("Levels = %v; want %v", r.Levels, want)
	}
}

func TestReportRender(t *testing.T) {
	tree := avl.FromValues([]int{30, 10})
	rotations := tree.Insert(20)
	r := NewReport(tree, rotations)

	out := r.Render(NewStyles(false), ReportConfig{ShowLevels: true, ShowRotations: true})

	for _, want := range []string{
		"In-order: [10, 20, 30]",
		"Nodes: 3  Height: 2",
		"Level 0: 20(h=2 bf=+0)",
		"Level 1: 10(h=1 bf=+0) 30(h=1 bf=+0)",
		"Rotations: 2 (Right (LL) x1, Left (RR) x1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q in:\n%s", want, out)
		}
	}

	quiet := r.Render(NewStyles(false), ReportConfig{})
	if strings.Contains(quiet, "Level") || strings.Contains(quiet, "Rotations") {
		t.Errorf("Render() with sections disabled:\n%s", quiet)
	}
}

func TestFormatValues(t *testing.T) {
	testCases := []struct {
		in   []int
		want string
	}{
		{in: nil, want: "[]"},
		{in: []int{7}, want: "[7]"},
		{in: []int{-1, 0, 5}, want: "[-1, 0, 5]"},
	}
	for _, tc := range testCases {
		if got := formatValues(tc.in); got != tc.want {
			t.Errorf("formatValues(%v) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestSummarizeRotations(t *testing.T) {
	if got := summarizeRotations(nil); got != "none" {
		t.Errorf("summarizeRotations(nil) = %q", got)
	}
	got := summarizeRotations([]avl.Rotation{avl.RotateLeft, avl.RotateLeft, avl.RotateRight})
	if want := "3 (Right (LL) x1, Left (RR) x2)"; got != want {
		t.Errorf("summarizeRotations() = %q; want %q", got, want)
	}
}
