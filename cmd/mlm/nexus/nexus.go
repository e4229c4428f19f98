// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package nexus implements a command to extract
// the node annotations of an annotated nexus tree.
package nexus

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/mlm/annotation"
	"github.com/js-arias/mlm/tree"
)

var Command = &command.Command{
	Usage: `nexus [--blank <value>] [-o|--output <file>]
	<nexus-file>`,
	Short: "extract node annotations from an annotated nexus tree",
	Long: `
Command nexus reads an annotated nexus tree file, for example the result of an
ancestral state reconstruction with TreeTime mugration, and writes the state
of each node as an annotation file.

In an annotated nexus tree each node is in the form:

	name:branch-length[&state="value"]

The argument of the command is the name of the nexus file.

By default, nodes without a state annotation will be assigned to 'Unknown'.
Use the flag --blank to define a different value.

By default, the annotations will be written in a file with the name of the
input file with the extension '.meta'. Use the flag --output, or -o, to define
a different output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var blank string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&blank, "blank", tree.Unknown, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting nexus file")
	}
	name := args[0]

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := annotation.ReadNexus(f, name, blank)
	if err != nil {
		return err
	}

	if output == "" {
		output = name + ".meta"
	}
	if err := writeAnnotations(m); err != nil {
		return err
	}
	return nil
}

func writeAnnotations(m *annotation.Map) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := m.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
