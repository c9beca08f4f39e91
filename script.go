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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avltree/avl"
)

// ErrScriptSyntax marks a malformed script line.
var ErrScriptSyntax = errors.New("script syntax error")

type OpKind int

const (
	OpInsert OpKind = iota
	OpDelete
	OpSearch
	OpClear
	OpPrint
)

var opNames = map[string]OpKind{
	"insert": OpInsert,
	"delete": OpDelete,
	"search": OpSearch,
	"clear":  OpClear,
	"print":  OpPrint,
}

func (k OpKind) String() string {
	for name, kind := range opNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// takesValues reports whether the operation needs at least one value.
func (k OpKind) takesValues() bool {
	return k == OpInsert || k == OpDelete || k == OpSearch
}

// Op is one parsed script line.
type Op struct {
	Kind   OpKind
	Values []int
	Line   int
}

// ParseScript reads one operation per line. Blank lines and text after
// '#' are ignored.
func ParseScript(r io.Reader) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		op, ok, err := parseLine(scanner.Text(), lineNo)
		if err != nil {
			return nil, err
		}
		if ok {
			ops = append(ops, op)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return ops, nil
}

func parseLine(line string, lineNo int) (Op, bool, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	words, err := shellwords.Parse(line)
	if err != nil {
		return Op{}, false, fmt.Errorf("line %d: %w: %v", lineNo, ErrScriptSyntax, err)
	}
	if len(words) == 0 {
		return Op{}, false, nil
	}

	verb := strings.ToLower(words[0])
	kind, ok := opNames[verb]
	if !ok {
		return Op{}, false, fmt.Errorf("line %d: %w: unknown operation %q", lineNo, ErrScriptSyntax, words[0])
	}

	args := words[1:]
	if kind.takesValues() && len(args) == 0 {
		return Op{}, false, fmt.Errorf("line %d: %w: %s needs at least one value", lineNo, ErrScriptSyntax, verb)
	}
	if !kind.takesValues() && len(args) > 0 {
		return Op{}, false, fmt.Errorf("line %d: %w: %s takes no values", lineNo, ErrScriptSyntax, verb)
	}

	var values []int
	if len(args) > 0 {
		if values, err = avl.ParseValues(args); err != nil {
			return Op{}, false, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	return Op{Kind: kind, Values: values, Line: lineNo}, true, nil
}

// Session applies operations to one tree and writes what happened.
type Session struct {
	tree      *avl.Tree
	out       io.Writer
	styles    *Styles
	config    ReportConfig
	reports   *cache.Cache
	revision  int // bumped whenever the tree changes
	rotations []avl.Rotation
}

func NewSession(tree *avl.Tree, out io.Writer, config *Config) *Session {
	if tree == nil {
		tree = avl.New()
	}
	return &Session{
		tree:    tree,
		out:     out,
		styles:  NewStyles(config.Report.Color),
		config:  config.Report,
		reports: NewReportCache(),
	}
}

func (s *Session) Tree() *avl.Tree {
	return s.tree
}

func (s *Session) Revision() int {
	return s.revision
}

// Rotations returns every rotation performed during the session.
func (s *Session) Rotations() []avl.Rotation {
	return s.rotations
}

// Run applies ops in order.
func (s *Session) Run(ops []Op) {
	for _, op := range ops {
		s.Apply(op)
	}
}

func (s *Session) Apply(op Op) {
	switch op.Kind {
	case OpInsert:
		for _, v := range op.Values {
			var rec avl.Recorder
			if s.tree.InsertNotify(v, &rec) {
				s.revision++
				s.printf("insert %d: %s\n", v, s.styles.Success.Render("added"))
			} else {
				s.printf("insert %d: %s\n", v, s.styles.Muted.Render("already present"))
			}
			s.noteRotations(rec.Rotations)
		}
	case OpDelete:
		for _, v := range op.Values {
			var rec avl.Recorder
			if s.tree.DeleteNotify(v, &rec) {
				s.revision++
				s.printf("delete %d: %s\n", v, s.styles.Success.Render("removed"))
			} else {
				s.printf("delete %d: %s\n", v, s.styles.Muted.Render("not found"))
			}
			s.noteRotations(rec.Rotations)
		}
	case OpSearch:
		for _, v := range op.Values {
			if n := s.tree.Search(v); n != nil {
				s.printf("search %d: %s (h=%d bf=%+d)\n", v, s.styles.Success.Render("found"), n.Height(), n.BalanceFactor())
			} else {
				s.printf("search %d: %s\n", v, s.styles.Muted.Render("not found"))
			}
		}
	case OpClear:
		n := s.tree.Len()
		if n > 0 {
			s.tree.Clear()
			s.revision++
		}
		s.printf("clear: removed %d values\n", n)
	case OpPrint:
		s.printf("%s", s.Report())
	}
}

// Report renders the current tree, reusing the text while the tree is
// unchanged.
func (s *Session) Report() string {
	if text, ok := GetReport(s.reports, s.revision); ok {
		return text
	}
	text := NewReport(s.tree, s.rotations).Render(s.styles, s.config)
	CacheReport(s.reports, s.revision, text)
	return text
}

func (s *Session) noteRotations(rotations []avl.Rotation) {
	s.rotations = append(s.rotations, rotations...)
	if !s.config.ShowRotations {
		return
	}
	for _, r := range rotations {
		s.printf("  rotation: %s\n", s.styles.Rotation.Render(r.String()))
	}
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
