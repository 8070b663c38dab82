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
	"io"

	"gopkg.in/yaml.v3"

	"github.com/polder-io/mmreg/curated"
)

// the YAML chip description schema. it is a direct transliteration of the
// SVD subset, for projects that keep their register map in something
// friendlier than XML.
type yamlDevice struct {
	Name        string           `yaml:"name"`
	Regions     []yamlRegion     `yaml:"regions"`
	Peripherals []yamlPeripheral `yaml:"peripherals"`
}

type yamlRegion struct {
	Name string `yaml:"name"`
	Base uint64 `yaml:"base"`
	Size uint64 `yaml:"size"`
}

type yamlPeripheral struct {
	Name      string         `yaml:"name"`
	Base      uint64         `yaml:"base"`
	Registers []yamlRegister `yaml:"registers"`
}

type yamlRegister struct {
	Name   string      `yaml:"name"`
	Offset uint64      `yaml:"offset"`
	Width  uint        `yaml:"width"`
	Fields []yamlField `yaml:"fields"`
}

type yamlField struct {
	Name string `yaml:"name"`
	Lsb  uint   `yaml:"lsb"`
	Msb  uint   `yaml:"msb"`
}

// ReadYAML loads a chip description from a YAML document and validates it.
// The schema mirrors the SVD subset: regions, peripherals, registers with
// offset/width, fields with lsb/msb. Register widths default to 32 bits.
func ReadYAML(r io.Reader) (*Description, error) {
	var dev yamlDevice

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&dev); err != nil {
		return nil, curated.Errorf(BadDescription, "yaml", err)
	}

	def := definition{
		name: dev.Name,
	}

	for _, rg := range dev.Regions {
		def.regions = append(def.regions, Region{Name: rg.Name, Base: rg.Base, Size: rg.Size})
	}

	for _, yp := range dev.Peripherals {
		pd := periphDef{
			name: yp.Name,
			base: yp.Base,
		}

		for _, yr := range yp.Registers {
			rd := registerDef{
				name:   yr.Name,
				offset: yr.Offset,
				width:  yr.Width,
			}

			for _, yf := range yr.Fields {
				rd.fields = append(rd.fields, fieldDef{
					name: yf.Name,
					lsb:  yf.Lsb,
					msb:  yf.Msb,
				})
			}

			pd.registers = append(pd.registers, rd)
		}

		def.peripherals = append(def.peripherals, pd)
	}

	return def.compile()
}
