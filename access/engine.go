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

package access

import (
	"github.com/polder-io/mmreg/bus"
	"github.com/polder-io/mmreg/curated"
	"github.com/polder-io/mmreg/regmap"
)

// FieldValue pairs a field with the value destined for it. Used by
// ModifyBatch().
type FieldValue struct {
	Field regmap.Field
	Value uint64
}

// Engine translates field operations into raw bus transactions. It is a
// thin, stateless translation layer: one method call is at most one raw
// read followed by at most one raw write, always in that order.
type Engine struct {
	bus bus.Accessor
}

// NewEngine creates an Engine on top of the given bus Accessor. The Accessor
// is externally owned; the engine only holds the reference.
func NewEngine(b bus.Accessor) *Engine {
	return &Engine{bus: b}
}

// Read returns the full raw value of the register. One raw read, no write.
func (e *Engine) Read(reg regmap.Register) (uint64, error) {
	return e.bus.ReadRaw(reg.Address, reg.Width)
}

// ReadField returns the decoded value of the field. One raw read, no write.
func (e *Engine) ReadField(reg regmap.Register, f regmap.Field) (uint64, error) {
	if err := fits(reg, f); err != nil {
		return 0, err
	}

	raw, err := e.bus.ReadRaw(reg.Address, reg.Width)
	if err != nil {
		return 0, err
	}

	return f.Decode(raw), nil
}

// Write commits the caller's value to the register verbatim. One raw write,
// no read. Every bit the caller did not set in value is written as zero.
//
// Fails with ValueOutOfRange, before touching the bus, if value has bits
// above the register width.
func (e *Engine) Write(reg regmap.Register, value uint64) error {
	if value&^reg.Width.Mask() != 0 {
		return curated.Errorf(regmap.ValueOutOfRange, value, uint(reg.Width))
	}
	return e.bus.WriteRaw(reg.Address, reg.Width, value)
}

// WriteField commits a register value in which the named field carries the
// encoded value and every other bit is zero. One raw write, no read.
//
// This is a full register overwrite. It is the correct operation for
// registers whose unnamed bits are documented as write-zero-safe or
// don't-care. For registers where the other bits matter, use ModifyField.
func (e *Engine) WriteField(reg regmap.Register, f regmap.Field, value uint64) error {
	if err := fits(reg, f); err != nil {
		return err
	}

	enc, err := f.Encode(value)
	if err != nil {
		return err
	}

	return e.bus.WriteRaw(reg.Address, reg.Width, enc)
}

// ModifyField reads the register, replaces the bits of the named field with
// the encoded value, preserves every other bit exactly as read, and writes
// the combination back. One raw read then one raw write.
//
// This is the only single-field operation that preserves unrelated bits.
func (e *Engine) ModifyField(reg regmap.Register, f regmap.Field, value uint64) error {
	if err := fits(reg, f); err != nil {
		return err
	}

	// encode before the read so that a value range failure leaves the bus
	// untouched
	enc, err := f.Encode(value)
	if err != nil {
		return err
	}

	raw, err := e.bus.ReadRaw(reg.Address, reg.Width)
	if err != nil {
		return err
	}

	return e.bus.WriteRaw(reg.Address, reg.Width, f.Clear(raw)|enc)
}

// ModifyBatch reads the register once, applies every field/value pair to
// the single in-memory copy and writes the combined result once. The
// transaction count is one read and one write no matter how many pairs are
// supplied, including none.
//
// Pairs are applied in the order given. If two pairs overlap, the later
// pair wins for the shared bits. Overlap is discouraged but not forbidden:
// this operation is an escape valve for audits, not a type-enforced API.
//
// All pairs are validated before the read. A ValueOutOfRange in any pair
// means no bus transaction at all.
func (e *Engine) ModifyBatch(reg regmap.Register, batch []FieldValue) error {
	enc := make([]uint64, len(batch))
	for i, fv := range batch {
		if err := fits(reg, fv.Field); err != nil {
			return err
		}

		var err error
		enc[i], err = fv.Field.Encode(fv.Value)
		if err != nil {
			return err
		}
	}

	raw, err := e.bus.ReadRaw(reg.Address, reg.Width)
	if err != nil {
		return err
	}

	for i, fv := range batch {
		raw = fv.Field.Clear(raw) | enc[i]
	}

	return e.bus.WriteRaw(reg.Address, reg.Width, raw)
}

// fits asserts that the field lies inside the register width. Fields
// attached to the register at construction time have already passed this
// check but a Field is applicable to any register, so the engine asserts
// the invariant for the pairing it is actually given.
func fits(reg regmap.Register, f regmap.Field) error {
	// comparisons ordered so the arithmetic cannot wrap
	if f.Width == 0 || f.Offset >= uint(reg.Width) || f.Width > uint(reg.Width)-f.Offset {
		return curated.Errorf(regmap.DescriptorOverflow, f.Offset, f.Width, uint(reg.Width))
	}
	return nil
}
