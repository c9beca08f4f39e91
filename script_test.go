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
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/cybrota/avltree/avl"
)

func TestParseScript(t *testing.T) {
	script := `
# build a small tree
insert 10 20 30
INSERT "40"   # quoted values are fine
delete 20
search 10 99

print
clear
`
	ops, err := ParseScript(strings.NewReader(script))
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}

	want := []Op{
		{Kind: OpInsert, Values: []int{10, 20, 30}, Line: 3},
		{Kind: OpInsert, Values: []int{40}, Line: 4},
		{Kind: OpDelete, Values: []int{20}, Line: 5},
		{Kind: OpSearch, Values: []int{10, 99}, Line: 6},
		{Kind: OpPrint, Line: 8},
		{Kind: OpClear, Line: 9},
	}
	if !reflect.DeepEqual(ops, want) {
		t.Errorf("ParseScript() = %+v; want %+v", ops, want)
	}
}

func TestParseScriptErrors(t *testing.T) {
	testCases := []struct {
		name   string
		script string
		want   error
		line   string
	}{
		{name: "unknown verb", script: "insert 1\nrotate 2\n", want: ErrScriptSyntax, line: "line 2"},
		{name: "missing value", script: "delete\n", want: ErrScriptSyntax, line: "line 1"},
		{name: "extra value", script: "print 3\n", want: ErrScriptSyntax, line: "line 1"},
		{name: "not an integer", script: "\n\ninsert 1 two\n", want: avl.ErrInvalidValue, line: "line 3"},
		{name: "unterminated quote", script: `insert "5`, want: ErrScriptSyntax, line: "line 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScript(strings.NewReader(tc.script))
			if !errors.Is(err, tc.want) {
				t.Fatalf("ParseScript() error = %v; want %v", err, tc.want)
			}
			if !strings.Contains(err.Error(), tc.line) {
				t.Errorf("error %q does not name %s", err, tc.line)
			}
		})
	}
}

func TestSessionRun(t *testing.T) {
	var out bytes.Buffer
	config := DefaultConfig()
	config.Report.Color = false
	session := NewSession(nil, &out, config)

	session.Run([]Op{
		{Kind: OpInsert, Values: []int{10, 20, 30, 20}},
		{Kind: OpDelete, Values: []int{5}},
		{Kind: OpSearch, Values: []int{30, 7}},
	})

	got := out.String()
	for _, want := range []string{
		"insert 30: added\n  rotation: Left (RR)\n",
		"insert 20: already present",
		"delete 5: not found",
		"search 30: found (h=1 bf=+0)",
		"search 7: not found",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q in:\n%s", want, got)
		}
	}

	if session.Revision() != 3 {
		t.Errorf("Revision() = %d; want 3", session.Revision())
	}
	if !reflect.DeepEqual(session.Rotations(), []avl.Rotation{avl.RotateLeft}) {
		t.Errorf("Rotations() = %v", session.Rotations())
	}
	if !reflect.DeepEqual(session.Tree().InOrderValues(), []int{10, 20, 30}) {
		t.Errorf("tree = %v", session.Tree().InOrderValues())
	}
}

func TestSessionReportIsCachedPerRevision(t *testing.T) {
	var out bytes.Buffer
	config := DefaultConfig()
	config.Report.Color = false
	session := NewSession(avl.FromValues([]int{2, 1, 3}), &out, config)

	first := session.Report()
	if !strings.Contains(first, "In-order: [1, 2, 3]") {
		t.Fatalf("Report() = %q", first)
	}

	// a no-op keeps the revision, so the cached text is reused
	session.Apply(Op{Kind: OpInsert, Values: []int{2}})
	if session.Report() != first {
		t.Errorf("Report() changed after a no-op insert")
	}

	session.Apply(Op{Kind: OpDelete, Values: []int{1}})
	if second := session.Report(); !strings.Contains(second, "In-order: [2, 3]") {
		t.Errorf("Report() after delete = %q", second)
	}

	session.Apply(Op{Kind: OpClear})
	if !session.Tree().IsEmpty() {
		t.Errorf("tree not empty after clear")
	}
	if !strings.Contains(out.String(), "clear: removed 2 values") {
		t.Errorf("clear output missing in:\n%s", out.String())
	}
}

func TestOpKindString(t *testing.T) {
	for name, kind := range opNames {
		if kind.String() != name {
			t.Errorf("%d.String() = %q; want %q", kind, kind.String(), name)
		}
	}
	if OpKind(42).String() != "unknown" {
		t.Errorf("OpKind(42).String() = %q", OpKind(42).String())
	}
}
