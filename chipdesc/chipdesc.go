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

package chipdesc

import (
	"fmt"

	"github.com/polder-io/mmreg/curated"
	"github.com/polder-io/mmreg/logger"
	"github.com/polder-io/mmreg/regmap"
)

// Error patterns for chip description loading and lookup.
const (
	BadDescription = "chip description: %s: %v"
	NotFound       = "chip description: not found (%s)"
)

// Description is a chip's register map: its memory regions and peripherals,
// loaded from an external description file and validated through the regmap
// constructors. Built once, immutable thereafter.
type Description struct {
	Name        string
	Regions     []Region
	Peripherals []Peripheral

	idx map[string]int
}

// Region is a named area of physical memory, as opposed to a peripheral's
// register block. Carried through from the description for the benefit of
// code generation; the access engine has no use for it.
type Region struct {
	Name string
	Base uint64
	Size uint64
}

// Peripheral is a named block of registers at a base address.
type Peripheral struct {
	Name string
	Base uint64

	Registers []NamedRegister

	idx map[string]int
}

// NamedRegister attaches the description's register name to the regmap
// descriptor. The descriptor's address is absolute: peripheral base plus
// register offset.
type NamedRegister struct {
	Name     string
	Register regmap.Register

	Fields []NamedField

	idx map[string]int
}

// NamedField attaches the description's field name to the regmap
// descriptor.
type NamedField struct {
	Name  string
	Field regmap.Field
}

// Peripheral returns the named peripheral. Names are matched exactly.
func (d *Description) Peripheral(name string) (*Peripheral, error) {
	i, ok := d.idx[name]
	if !ok {
		return nil, curated.Errorf(NotFound, name)
	}
	return &d.Peripherals[i], nil
}

// Register returns the regmap descriptor for the named register.
func (p *Peripheral) Register(name string) (regmap.Register, error) {
	i, ok := p.idx[name]
	if !ok {
		return regmap.Register{}, curated.Errorf(NotFound, fmt.Sprintf("%s.%s", p.Name, name))
	}
	return p.Registers[i].Register, nil
}

// Field returns the regmap descriptor for the named field of the named
// register.
func (p *Peripheral) Field(register string, field string) (regmap.Field, error) {
	i, ok := p.idx[register]
	if !ok {
		return regmap.Field{}, curated.Errorf(NotFound, fmt.Sprintf("%s.%s", p.Name, register))
	}

	r := p.Registers[i]
	j, ok := r.idx[field]
	if !ok {
		return regmap.Field{}, curated.Errorf(NotFound, fmt.Sprintf("%s.%s.%s", p.Name, register, field))
	}

	return r.Fields[j].Field, nil
}

// the intermediate form produced by the file format parsers. compile()
// turns it into a validated Description.
type definition struct {
	name        string
	regions     []Region
	peripherals []periphDef
}

type periphDef struct {
	name      string
	base      uint64
	registers []registerDef
}

type registerDef struct {
	name   string
	offset uint64
	width  uint
	fields []fieldDef
}

type fieldDef struct {
	name string
	lsb  uint
	msb  uint
}

// compile validates a parsed definition and builds the lookup indexes. all
// descriptor invariants are checked here, once, through the regmap
// constructors.
func (def definition) compile() (*Description, error) {
	d := &Description{
		Name:    def.name,
		Regions: def.regions,
		idx:     make(map[string]int),
	}

	for _, pd := range def.peripherals {
		p := Peripheral{
			Name: pd.name,
			Base: pd.base,
			idx:  make(map[string]int),
		}

		for _, rd := range pd.registers {
			width := regmap.Width(rd.width)
			if rd.width == 0 {
				// the common case for descriptions that do not state a
				// register size
				width = regmap.W32
			}

			nr := NamedRegister{
				Name: rd.name,
				idx:  make(map[string]int),
			}

			fields := make([]regmap.Field, 0, len(rd.fields))
			for _, fd := range rd.fields {
				if fd.msb < fd.lsb {
					return nil, curated.Errorf(BadDescription,
						fmt.Sprintf("%s.%s.%s", pd.name, rd.name, fd.name),
						fmt.Errorf("msb %d is below lsb %d", fd.msb, fd.lsb))
				}

				f, err := regmap.NewField(fd.lsb, fd.msb-fd.lsb+1)
				if err != nil {
					return nil, curated.Errorf(BadDescription,
						fmt.Sprintf("%s.%s.%s", pd.name, rd.name, fd.name), err)
				}

				if _, ok := nr.idx[fd.name]; ok {
					return nil, curated.Errorf(BadDescription,
						fmt.Sprintf("%s.%s.%s", pd.name, rd.name, fd.name),
						fmt.Errorf("duplicate name"))
				}
				nr.idx[fd.name] = len(nr.Fields)
				nr.Fields = append(nr.Fields, NamedField{Name: fd.name, Field: f})
				fields = append(fields, f)
			}

			reg, err := regmap.NewRegister(pd.base+rd.offset, width, fields...)
			if err != nil {
				return nil, curated.Errorf(BadDescription,
					fmt.Sprintf("%s.%s", pd.name, rd.name), err)
			}
			nr.Register = reg

			if len(nr.Fields) == 0 {
				logger.Logf("chipdesc", "register %s.%s has no fields", pd.name, rd.name)
			}

			if _, ok := p.idx[rd.name]; ok {
				return nil, curated.Errorf(BadDescription,
					fmt.Sprintf("%s.%s", pd.name, rd.name), fmt.Errorf("duplicate name"))
			}
			p.idx[rd.name] = len(p.Registers)
			p.Registers = append(p.Registers, nr)
		}

		if _, ok := d.idx[pd.name]; ok {
			return nil, curated.Errorf(BadDescription, pd.name, fmt.Errorf("duplicate name"))
		}
		d.idx[pd.name] = len(d.Peripherals)
		d.Peripherals = append(d.Peripherals, p)
	}

	return d, nil
}
