// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package annotation

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/evolbioinfo/gotree/io/nexus"
	gtree "github.com/evolbioinfo/gotree/tree"
	"github.com/js-arias/mlm/diag"
)

// StateKey is the key of the node comments
// that stores the ancestral state.
const StateKey = "state"

// quotedSpace matches a translate block
// with a quoted label that contains spaces.
var quotedSpace = regexp.MustCompile(`(?is)\btranslate\b[^;]*'[^']*\s[^']*'`)

// ReadNexus reads the trees of an annotated nexus file
// (for example, the annotated tree produced by TreeTime mugration)
// and returns the region stored in each node.
// Nodes are added in pre-order,
// and labels of a translate block are expanded.
//
// Each node is expected to be in the form:
//
//	name:branch-length[&state="value"]
//
// Nodes without a state annotation
// are assigned to the blank value.
// Unnamed nodes are ignored.
//
// The input name is used to identify the input
// in error messages.
func ReadNexus(r io.Reader, input, blank string) (*Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &diag.ParseError{Input: input, Err: err}
	}
	if quotedSpace.Match(data) {
		return nil, &diag.ParseError{Input: input, Err: errors.New("translate block with quoted labels containing spaces is not supported")}
	}

	nx, err := nexus.NewParser(bytes.NewReader(data)).Parse()
	if err != nil {
		return nil, &diag.ParseError{Input: input, Err: err}
	}

	m := New()
	trees := 0
	nx.IterateTrees(func(name string, t *gtree.Tree) {
		trees++
		t.PreOrder(func(cur, prev *gtree.Node, e *gtree.Edge) bool {
			n := cur.Name()
			if n == "" {
				return true
			}
			comments := append([]string(nil), cur.Comments()...)
			if e != nil {
				comments = append(comments, e.Comments()...)
			}
			if v, ok := nodeState(comments); ok {
				m.Set(n, v)
				return true
			}
			m.Set(n, blank)
			return true
		})
	})
	if trees == 0 {
		return nil, &diag.ParseError{Input: input, Err: errors.New("no tree found")}
	}
	return m, nil
}

func nodeState(comments []string) (string, bool) {
	for _, c := range comments {
		if v, ok := commentState(c); ok {
			return v, true
		}
	}
	return "", false
}

// CommentState returns the state
// from a node comment in the form &key=value,key=value.
func commentState(c string) (string, bool) {
	c = strings.TrimSpace(c)
	c = strings.TrimSuffix(strings.TrimPrefix(c, "["), "]")
	c, ok := strings.CutPrefix(strings.TrimSpace(c), "&")
	if !ok {
		return "", false
	}

	braces := 0
	start := 0
	for i := 0; i <= len(c); i++ {
		if i < len(c) {
			switch c[i] {
			case '{':
				braces++
				continue
			case '}':
				braces--
				continue
			case ',':
				if braces > 0 {
					continue
				}
			default:
				continue
			}
		}
		kv := c[start:i]
		start = i + 1
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(k), StateKey) {
			continue
		}
		return strings.Trim(strings.TrimSpace(v), `"'`), true
	}
	return "", false
}
