// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to edit
// and print the basic information of a project.
package prj

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/mlm/project"
	"github.com/js-arias/mlm/tree"
)

var Command = &command.Command{
	Usage: `prj [--newick <file>] [--timetrees <file>]
	[--annotations <file>] [--nexus <file>]
	[--confidence <file>] [--tree <name>]
	<project-file>`,
	Short: "edit and print information about a project",
	Long: `
Command prj reads an MLM project and prints the information of the different
project elements into the standard output.

The argument of the command is the name of the project file.

The flags --newick, --timetrees, --annotations, --nexus, and --confidence,
set the file used for the given dataset. If any of these flags is used, the
project file will be updated (or created if it does not exist). See 'mlm help
projects' for a description of each dataset.

If the project uses a time tree collection, use the flag --tree to indicate
the tree to be read.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var paths = make(map[project.Dataset]*string)

func setFlags(c *command.Command) {
	for _, s := range []project.Dataset{
		project.Annotations,
		project.Confidence,
		project.Newick,
		project.Nexus,
		project.TimeTrees,
	} {
		v := new(string)
		paths[s] = v
		c.Flags().StringVar(v, string(s), "", "")
	}
	c.Flags().StringVar(&treeName, "tree", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	changed := false
	for s, v := range paths {
		if *v == "" {
			continue
		}
		p.Add(s, *v)
		changed = true
	}
	if changed {
		if err := p.Write(); err != nil {
			return err
		}
	}

	if p.Path(project.Newick) != "" || p.Path(project.TimeTrees) != "" {
		if err := readTree(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.Annotations) != "" || p.Path(project.Nexus) != "" {
		if err := readAnnotations(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.Confidence) != "" {
		if err := readConfidence(c.Stdout(), p); err != nil {
			return err
		}
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readTree(w io.Writer, p *project.Project) error {
	t, err := p.Tree(treeName)
	if err != nil {
		return err
	}

	name := p.Path(project.Newick)
	if name == "" {
		name = p.Path(project.TimeTrees)
	}
	terms := 0
	for _, n := range t.Nodes() {
		if t.IsTerm(n) {
			terms++
		}
	}
	root, _ := t.Root()

	fmt.Fprintf(w, "Tree:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\troot: %s\n", root)
	fmt.Fprintf(w, "\tnodes: %d\n", t.Len())
	fmt.Fprintf(w, "\tterminals: %d\n", terms)
	fmt.Fprintf(w, "\n")
	return nil
}

func readAnnotations(w io.Writer, p *project.Project) error {
	m, err := p.Annotations(tree.Unknown)
	if err != nil {
		return err
	}

	name := p.Path(project.Annotations)
	if name == "" {
		name = p.Path(project.Nexus)
	}
	fmt.Fprintf(w, "Annotations:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tannotated nodes: %d\n", m.Len())
	fmt.Fprintf(w, "\tregions: %d\n", len(m.Regions()))
	fmt.Fprintf(w, "\n")
	return nil
}

func readConfidence(w io.Writer, p *project.Project) error {
	conf, err := p.Confidence()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Confidence:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Confidence))
	fmt.Fprintf(w, "\tnodes: %d\n", len(conf.Nodes()))
	fmt.Fprintf(w, "\tregions: %d\n", len(conf.Regions()))
	fmt.Fprintf(w, "\n")
	return nil
}
