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

// Error patterns for descriptor construction and field value encoding.
const (
	DescriptorOverflow = "descriptor overflow: field (offset %d, width %d) does not fit in %d bits"
	DescriptorOverlap  = "descriptor overlap: fields share bits (mask %#x)"
	ValueOutOfRange    = "value out of range: %#x does not fit in %d bits"
)

// Field describes one named bitfield inside a register. Offset is the bit
// position of the field's least significant bit, counting from zero. Width
// is the number of bits in the field.
//
// Field carries no register identity. It is valid to apply a Field to any
// register wide enough to contain it.
type Field struct {
	Offset uint
	Width  uint
}

// NewField is the checked constructor for Field. The field must have a width
// of at least one bit and must fit in the widest supported register (64
// bits). Fails with DescriptorOverflow otherwise.
//
// Note that whether the field fits the register it is eventually attached to
// is checked by NewRegister(), not here.
func NewField(offset uint, width uint) (Field, error) {
	// comparisons ordered so the arithmetic cannot wrap
	if width == 0 || offset >= 64 || width > 64-offset {
		return Field{}, curated.Errorf(DescriptorOverflow, offset, width, 64)
	}
	return Field{Offset: offset, Width: width}, nil
}

// MustField is like NewField but panics on error. For use in static chip
// description tables.
func MustField(offset uint, width uint) Field {
	f, err := NewField(offset, width)
	if err != nil {
		panic(err)
	}
	return f
}

// Mask returns the field's bitmask in register position. For a field of
// offset 4 and width 3 the mask is 0b1110000. Total, no failure mode.
func (f Field) Mask() uint64 {
	if f.Width >= 64 {
		return ^uint64(0) << f.Offset
	}
	return ((uint64(1) << f.Width) - 1) << f.Offset
}

// Encode shifts value into the field's register position. Fails with
// ValueOutOfRange if the value requires more bits than the field has. On
// success the result has bits only inside Mask().
func (f Field) Encode(value uint64) (uint64, error) {
	if f.Width < 64 && value>>f.Width != 0 {
		return 0, curated.Errorf(ValueOutOfRange, value, f.Width)
	}
	return value << f.Offset, nil
}

// Decode extracts the field's value from a full width register value. Total,
// no failure mode. Any raw value is decodable.
func (f Field) Decode(raw uint64) uint64 {
	if f.Width >= 64 {
		return raw >> f.Offset
	}
	return (raw >> f.Offset) & ((uint64(1) << f.Width) - 1)
}

// Clear returns raw with the field's bits set to zero. The other bits are
// untouched.
func (f Field) Clear(raw uint64) uint64 {
	return raw &^ f.Mask()
}

// Overlaps returns true if the two fields share any bit position.
func (f Field) Overlaps(other Field) bool {
	return f.Mask()&other.Mask() != 0
}

func (f Field) String() string {
	return fmt.Sprintf("bits [%d:%d]", f.Offset+f.Width-1, f.Offset)
}
