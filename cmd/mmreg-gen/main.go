// This file is part of MMReg.
//
// MMReg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MMReg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MMReg.  If not, see <https://www.gnu.org/licenses/>.

// mmreg-gen turns a chip description file into a Go source file of static
// register tables.
//
//	mmreg-gen -f soc.svd -pkg pac -o pac/tables.go
//
// The input format is chosen by file extension: .svd and .xml are read as
// CMSIS-SVD, .yaml and .yml as the YAML schema described in the chipdesc
// package.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/polder-io/mmreg/chipdesc"
	"github.com/polder-io/mmreg/chipdesc/codegen"
	"github.com/polder-io/mmreg/logger"
)

func run() error {
	input := flag.String("f", "", "chip description file to process (svd/xml or yaml/yml)")
	output := flag.String("o", "", "output file (default stdout)")
	pkg := flag.String("pkg", "pac", "package name for the generated file")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		return fmt.Errorf("no input file")
	}

	f, err := os.Open(*input)
	if err != nil {
		return err
	}
	defer f.Close()

	var d *chipdesc.Description

	switch strings.ToLower(filepath.Ext(*input)) {
	case ".svd", ".xml":
		d, err = chipdesc.ReadSVD(f)
	case ".yaml", ".yml":
		d, err = chipdesc.ReadYAML(f)
	default:
		return fmt.Errorf("unrecognised file extension: %s", *input)
	}
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		o, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer o.Close()
		w = o
	}

	return codegen.Generate(w, d, *pkg, filepath.Base(*input))
}

func main() {
	// anything the loaders have to say goes to stderr as it happens
	logger.SetEcho(os.Stderr)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mmreg-gen: %v\n", err)
		os.Exit(10)
	}
}
