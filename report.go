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
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/avltree/avl"
)

// NodeInfo is the introspection view of a single node.
type NodeInfo struct {
	Value         int
	Height        int
	BalanceFactor int
}

func (n NodeInfo) String() string {
	return fmt.Sprintf("%d(h=%d bf=%+d)", n.Value, n.Height, n.BalanceFactor)
}

// Report is a snapshot of a tree taken through its read and
// introspection surfaces.
type Report struct {
	Values    []int
	Nodes     int
	Height    int
	Levels    [][]NodeInfo
	Rotations []avl.Rotation
}

// NewReport captures the state of tree. rotations are the rebalancing
// events that led to it.
func NewReport(tree *avl.Tree, rotations []avl.Rotation) Report {
	r := Report{
		Values:    tree.InOrderValues(),
		Nodes:     tree.Len(),
		Height:    tree.Height(),
		Rotations: rotations,
	}
	for _, level := range tree.Levels() {
		infos := make([]NodeInfo, 0, len(level))
		for _, n := range level {
			infos = append(infos, NodeInfo{
				Value:         n.Value(),
				Height:        n.Height(),
				BalanceFactor: n.BalanceFactor(),
			})
		}
		r.Levels = append(r.Levels, infos)
	}
	return r
}

// Render formats the report as text.
func (r Report) Render(styles *Styles, config ReportConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", styles.Label.Render("In-order:"), styles.Value.Render(formatValues(r.Values)))
	fmt.Fprintf(&b, "%s %d  %s %d\n", styles.Label.Render("Nodes:"), r.Nodes, styles.Label.Render("Height:"), r.Height)

	if config.ShowLevels {
		for depth, level := range r.Levels {
			parts := make([]string, 0, len(level))
			for _, n := range level {
				parts = append(parts, n.String())
			}
			fmt.Fprintf(&b, "%s %s\n", styles.Muted.Render(fmt.Sprintf("Level %d:", depth)), strings.Join(parts, " "))
		}
	}

	if config.ShowRotations {
		fmt.Fprintf(&b, "%s %s\n", styles.Label.Render("Rotations:"), styles.Rotation.Render(summarizeRotations(r.Rotations)))
	}

	return b.String()
}

// formatValues renders values as "[1, 2, 3]".
func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// summarizeRotations renders "3 (Right (LL) x1, Left (RR) x2)" or "none".
func summarizeRotations(rotations []avl.Rotation) string {
	if len(rotations) == 0 {
		return "none"
	}
	counts := map[avl.Rotation]int{}
	for _, r := range rotations {
		counts[r]++
	}
	var parts []string
	for _, kind := range []avl.Rotation{avl.RotateRight, avl.RotateLeft} {
		if counts[kind] > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", kind, counts[kind]))
		}
	}
	return fmt.Sprintf("%d (%s)", len(rotations), strings.Join(parts, ", "))
}
