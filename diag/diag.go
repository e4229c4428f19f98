// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package diag defines the errors and warnings
// produced while reading data
// and running a migration analysis.
package diag

import (
	"fmt"
	"strings"
)

// A ParseError is returned when an input
// (a tree,
// or a table)
// is malformed.
type ParseError struct {
	// Input is the name of the offending input,
	// usually a file name.
	Input string

	// Line is the line of the error,
	// if known.
	Line int

	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s: on line %d: %v", e.Input, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error: %s: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// A StructuralError is returned when a tree
// violates a topology invariant.
type StructuralError struct {
	// Node is the name of the offending node,
	// if any.
	Node string

	Reason string
}

func (e *StructuralError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("structural error: node %q: %s", e.Node, e.Reason)
	}
	return "structural error: " + e.Reason
}

// Kind is the kind of a warning.
type Kind string

// Valid warning kinds.
const (
	// A region is not a column of the confidence table.
	MissingRegion Kind = "missing-region"

	// A node is not a row of the confidence table.
	MissingNode Kind = "missing-node"

	// An annotated name is not a node of the tree.
	UnmatchedName Kind = "unmatched-name"
)

// A Warning is a non-fatal lookup miss
// in which a default value was used.
type Warning struct {
	Kind   Kind
	Node   string
	Region string
}

func (w Warning) String() string {
	switch w.Kind {
	case MissingRegion:
		return fmt.Sprintf("region %q not found in confidence table: using default confidence", w.Region)
	case MissingNode:
		return fmt.Sprintf("node %q not found for region %q: using default confidence", w.Node, w.Region)
	case UnmatchedName:
		return fmt.Sprintf("annotated node %q not found in tree", w.Node)
	}
	return fmt.Sprintf("%s: node %q region %q", w.Kind, w.Node, w.Region)
}

// A Log collects warnings.
// Each distinct warning is stored only once,
// in the order it was first seen.
//
// A nil Log discards all warnings.
type Log struct {
	ws   []Warning
	seen map[Warning]bool
}

// NewLog creates a new empty log.
func NewLog() *Log {
	return &Log{
		seen: make(map[Warning]bool),
	}
}

// Warn adds a warning to the log.
func (l *Log) Warn(w Warning) {
	if l == nil {
		return
	}
	if l.seen == nil {
		l.seen = make(map[Warning]bool)
	}
	if l.seen[w] {
		return
	}
	l.seen[w] = true
	l.ws = append(l.ws, w)
}

// Len returns the number of distinct warnings.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.ws)
}

// Warnings returns the stored warnings.
func (l *Log) Warnings() []Warning {
	if l == nil {
		return nil
	}
	ws := make([]Warning, len(l.ws))
	copy(ws, l.ws)
	return ws
}

// String returns the warnings,
// one per line.
func (l *Log) String() string {
	var b strings.Builder
	for _, w := range l.Warnings() {
		fmt.Fprintf(&b, "WARNING: %s\n", w)
	}
	return b.String()
}
