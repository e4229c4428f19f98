// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// MLM is a tool for multi-level migration analysis
// of phylogenetic trees with ancestral region annotations.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/mlm/cmd/mlm/nexus"
	"github.com/js-arias/mlm/cmd/mlm/prj"
	"github.com/js-arias/mlm/cmd/mlm/spread"
)

var app = &command.Command{
	Usage: "mlm <command> [<argument>...]",
	Short: "a tool for multi-level migration analysis",
}

func init() {
	app.Add(nexus.Command)
	app.Add(prj.Command)
	app.Add(spread.Command)
}

func main() {
	app.Main()
}
