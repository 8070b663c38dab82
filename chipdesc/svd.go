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
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/polder-io/mmreg/curated"
)

// the subset of a CMSIS-SVD document that describes the register map.
// everything else in the file is ignored.
type svdDevice struct {
	XMLName     xml.Name        `xml:"device"`
	Name        string          `xml:"name"`
	Regions     []svdRegion     `xml:"vendorExtensions>memoryRegions>memoryRegion"`
	Peripherals []svdPeripheral `xml:"peripherals>peripheral"`
}

type svdRegion struct {
	Name string `xml:"name"`
	Base string `xml:"baseAddress"`
	Size string `xml:"size"`
}

type svdPeripheral struct {
	Name      string        `xml:"name"`
	Base      string        `xml:"baseAddress"`
	Registers []svdRegister `xml:"registers>register"`
}

type svdRegister struct {
	Name   string     `xml:"name"`
	Offset string     `xml:"addressOffset"`
	Size   string     `xml:"size"`
	Fields []svdField `xml:"fields>field"`
}

type svdField struct {
	Name string `xml:"name"`
	Lsb  string `xml:"lsb"`
	Msb  string `xml:"msb"`
}

// ReadSVD loads a chip description from a CMSIS-SVD document and validates
// it. Register sizes default to 32 bits when the document does not state
// one. Register addresses in the resulting description are absolute.
func ReadSVD(r io.Reader) (*Description, error) {
	var dev svdDevice

	if err := xml.NewDecoder(r).Decode(&dev); err != nil {
		return nil, curated.Errorf(BadDescription, "svd", err)
	}

	def := definition{
		name: dev.Name,
	}

	for _, rg := range dev.Regions {
		base, err := svdNumber(rg.Base)
		if err != nil {
			return nil, curated.Errorf(BadDescription, rg.Name, err)
		}
		size, err := svdNumber(rg.Size)
		if err != nil {
			return nil, curated.Errorf(BadDescription, rg.Name, err)
		}
		def.regions = append(def.regions, Region{Name: rg.Name, Base: base, Size: size})
	}

	for _, sp := range dev.Peripherals {
		base, err := svdNumber(sp.Base)
		if err != nil {
			return nil, curated.Errorf(BadDescription, sp.Name, err)
		}

		pd := periphDef{
			name: sp.Name,
			base: base,
		}

		for _, sr := range sp.Registers {
			offset, err := svdNumber(sr.Offset)
			if err != nil {
				return nil, curated.Errorf(BadDescription,
					fmt.Sprintf("%s.%s", sp.Name, sr.Name), err)
			}

			rd := registerDef{
				name:   sr.Name,
				offset: offset,
			}

			if sr.Size != "" {
				size, err := svdNumber(sr.Size)
				if err != nil {
					return nil, curated.Errorf(BadDescription,
						fmt.Sprintf("%s.%s", sp.Name, sr.Name), err)
				}
				rd.width = uint(size)
			}

			for _, sf := range sr.Fields {
				lsb, err := svdNumber(sf.Lsb)
				if err != nil {
					return nil, curated.Errorf(BadDescription,
						fmt.Sprintf("%s.%s.%s", sp.Name, sr.Name, sf.Name), err)
				}
				msb, err := svdNumber(sf.Msb)
				if err != nil {
					return nil, curated.Errorf(BadDescription,
						fmt.Sprintf("%s.%s.%s", sp.Name, sr.Name, sf.Name), err)
				}

				rd.fields = append(rd.fields, fieldDef{
					name: sf.Name,
					lsb:  uint(lsb),
					msb:  uint(msb),
				})
			}

			pd.registers = append(pd.registers, rd)
		}

		def.peripherals = append(def.peripherals, pd)
	}

	return def.compile()
}

// svdNumber parses the numeric notations found in SVD files: decimal,
// 0x hexadecimal and the occasional binary with a # prefix.
func svdNumber(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("missing number")
	}
	if strings.HasPrefix(s, "#") {
		return strconv.ParseUint(s[1:], 2, 64)
	}
	return strconv.ParseUint(s, 0, 64)
}
