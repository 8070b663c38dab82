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

package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"unicode"

	"github.com/polder-io/mmreg/chipdesc"
	"github.com/polder-io/mmreg/curated"
)

// InternalError is the error pattern for generated source that does not
// parse. It indicates a bug in the generator, not in the input.
const InternalError = "codegen: generated source does not parse: %v"

// Generate writes a chip description as a Go source file of static
// descriptor tables. The emitted names follow the PERIPHERAL_REGISTER and
// PERIPHERAL_REGISTER_FIELD convention, upper-cased, so that a constant's
// name says exactly which bits it is about.
//
// The output is gofmt formatted. A later formatting pass over the generated
// file is a no-op.
//
// source appears in the generated-code header and should name the input
// file.
func Generate(w io.Writer, d *chipdesc.Description, pkg string, source string) error {
	buf := &bytes.Buffer{}

	p := func(format string, args ...interface{}) {
		fmt.Fprintf(buf, format, args...)
	}

	p("// Code generated by mmreg-gen from %s. DO NOT EDIT.\n\n", source)
	p("package %s\n\n", pkg)
	p("import \"github.com/polder-io/mmreg/regmap\"\n")

	if len(d.Regions) > 0 {
		p("\n// physical base addresses of memory regions\n")
		p("const (\n")
		for _, rg := range d.Regions {
			p("\t%s_MEM = %#x\n", symbol(rg.Name), rg.Base)
			p("\t%s_MEM_LEN = %#x\n", symbol(rg.Name), rg.Size)
		}
		p(")\n")
	}

	if len(d.Peripherals) > 0 {
		p("\n// physical base addresses of peripherals\n")
		p("const (\n")
		for _, pr := range d.Peripherals {
			p("\t%s_BASE = %#x\n", symbol(pr.Name), pr.Base)
		}
		p(")\n")
	}

	for _, pr := range d.Peripherals {
		p("\n// %s registers\n", pr.Name)
		p("var (\n")
		for _, nr := range pr.Registers {
			reg := symbol(pr.Name) + "_" + symbol(nr.Name)

			fields := make([]string, 0, len(nr.Fields))
			for _, nf := range nr.Fields {
				fields = append(fields, reg+"_"+symbol(nf.Name))
			}

			p("\t%s = regmap.MustRegister(%#x, regmap.W%d", reg,
				nr.Register.Address, uint(nr.Register.Width))
			for _, f := range fields {
				p(", %s", f)
			}
			p(")\n")

			for i, nf := range nr.Fields {
				p("\t%s = regmap.MustField(%d, %d)\n", fields[i],
					nf.Field.Offset, nf.Field.Width)
			}
		}
		p(")\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return curated.Errorf(InternalError, err)
	}

	_, err = w.Write(src)
	return err
}

// symbol turns a description name into a Go identifier part. runs of
// characters that cannot appear in an identifier become a single
// underscore.
func symbol(name string) string {
	var s strings.Builder
	us := false
	for _, r := range strings.ToUpper(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			s.WriteRune(r)
			us = false
		} else if !us {
			s.WriteRune('_')
			us = true
		}
	}
	return strings.Trim(s.String(), "_")
}
