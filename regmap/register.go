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

package regmap

import (
	"fmt"

	"github.com/polder-io/mmreg/curated"
)

// UnsupportedWidth is the error pattern for register widths other than 8,
// 16, 32 or 64 bits.
const UnsupportedWidth = "unsupported register width: %d bits"

// Width is the size of a register in bits.
type Width uint

// The supported register widths. A register is always accessed as a single
// transaction of its full width.
const (
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
)

// Valid returns true if the width is one of the supported register widths.
func (w Width) Valid() bool {
	switch w {
	case W8, W16, W32, W64:
		return true
	}
	return false
}

// Mask returns the bitmask covering every bit of a register of this width.
func (w Width) Mask() uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}

// Bytes returns the width in bytes.
func (w Width) Bytes() int {
	return int(w) / 8
}

// Register describes one addressable register: its absolute address, its
// width and the fields attached to it. The field set exists so that a chip
// description can be validated once, at construction time. Access to the
// register afterwards is by Field value and does not consult the set.
type Register struct {
	Address uint64
	Width   Width

	fields []Field
}

// NewRegister is the checked constructor for Register. Every attached field
// must fit the register width (DescriptorOverflow) and no two attached
// fields may share a bit position (DescriptorOverlap).
//
// This validation runs once per descriptor, keeping the access path free of
// everything except the value range check.
func NewRegister(address uint64, width Width, fields ...Field) (Register, error) {
	if !width.Valid() {
		return Register{}, curated.Errorf(UnsupportedWidth, uint(width))
	}

	for _, f := range fields {
		// comparisons ordered so the arithmetic cannot wrap
		if f.Width == 0 || f.Offset >= uint(width) || f.Width > uint(width)-f.Offset {
			return Register{}, curated.Errorf(DescriptorOverflow, f.Offset, f.Width, uint(width))
		}
	}

	for i := 0; i < len(fields); i++ {
		for j := i + 1; j < len(fields); j++ {
			if fields[i].Overlaps(fields[j]) {
				return Register{}, curated.Errorf(DescriptorOverlap, fields[i].Mask()&fields[j].Mask())
			}
		}
	}

	r := Register{
		Address: address,
		Width:   width,
	}
	r.fields = append(r.fields, fields...)

	return r, nil
}

// MustRegister is like NewRegister but panics on error. For use in static
// chip description tables.
func MustRegister(address uint64, width Width, fields ...Field) Register {
	r, err := NewRegister(address, width, fields...)
	if err != nil {
		panic(err)
	}
	return r
}

// Fields returns a copy of the fields attached to the register at
// construction time. The copy preserves the immutability of the descriptor.
func (r Register) Fields() []Field {
	fields := make([]Field, len(r.fields))
	copy(fields, r.fields)
	return fields
}

func (r Register) String() string {
	return fmt.Sprintf("%#08x (%d bits)", r.Address, uint(r.Width))
}
