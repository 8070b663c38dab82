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

package busmem_test

import (
	"testing"

	"github.com/polder-io/mmreg/bus"
	"github.com/polder-io/mmreg/bus/busmem"
	"github.com/polder-io/mmreg/curated"
	"github.com/polder-io/mmreg/regmap"
	"github.com/polder-io/mmreg/test"
)

func TestWidths(t *testing.T) {
	m := busmem.New(0x1000, 64)

	test.ExpectSuccess(t, m.WriteRaw(0x1000, regmap.W8, 0xa5))
	v, err := m.ReadRaw(0x1000, regmap.W8)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xa5)

	test.ExpectSuccess(t, m.WriteRaw(0x1010, regmap.W16, 0xbeef))
	v, err = m.ReadRaw(0x1010, regmap.W16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xbeef)

	test.ExpectSuccess(t, m.WriteRaw(0x1020, regmap.W32, 0xdeadbeef))
	v, err = m.ReadRaw(0x1020, regmap.W32)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xdeadbeef)

	test.ExpectSuccess(t, m.WriteRaw(0x1030, regmap.W64, 0x0123456789abcdef))
	v, err = m.ReadRaw(0x1030, regmap.W64)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x0123456789abcdef)
}

func TestLittleEndianLayout(t *testing.T) {
	m := busmem.New(0x1000, 8)

	test.ExpectSuccess(t, m.WriteRaw(0x1000, regmap.W32, 0x11223344))

	// byte level layout is little-endian
	for i, want := range []uint64{0x44, 0x33, 0x22, 0x11} {
		v, err := m.Peek(0x1000+uint64(i), regmap.W8)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, want)
	}
}

func TestWindowBounds(t *testing.T) {
	m := busmem.New(0x1000, 16)

	_, err := m.ReadRaw(0x0ff8, regmap.W32)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bus.AccessFault))

	// the last word of the window is accessible, one past it is not
	_, err = m.ReadRaw(0x100c, regmap.W32)
	test.ExpectSuccess(t, err)
	_, err = m.ReadRaw(0x1010, regmap.W32)
	test.ExpectFailure(t, err)

	// a wide access must fit entirely inside the window
	_, err = m.ReadRaw(0x100c, regmap.W64)
	test.ExpectFailure(t, err)
}

func TestWindowBoundsExtremeAddress(t *testing.T) {
	m := busmem.New(0, 16)

	// an address near the top of the 64 bit space must fault. the
	// address+width sum would wrap to a small number and slip past a naive
	// bounds comparison
	_, err := m.ReadRaw(0xfffffffffffffff8, regmap.W64)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bus.AccessFault))

	err = m.WriteRaw(0xfffffffffffffff8, regmap.W64, 1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bus.AccessFault))

	// a window at the top of the address space is still usable
	m = busmem.New(0xfffffffffffffff0, 16)
	test.ExpectSuccess(t, m.WriteRaw(0xfffffffffffffff8, regmap.W64, 0xa5))
	v, err := m.ReadRaw(0xfffffffffffffff8, regmap.W64)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xa5)
}

func TestAlignment(t *testing.T) {
	m := busmem.New(0x1000, 16)

	_, err := m.ReadRaw(0x1002, regmap.W32)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bus.AccessFault))

	// byte access has no alignment requirement
	_, err = m.ReadRaw(0x1003, regmap.W8)
	test.ExpectSuccess(t, err)
}

func TestHooks(t *testing.T) {
	m := busmem.New(0x1000, 16)

	// bit 0 of the status register reads as busy until the hooked write
	// clears it
	busy := uint64(1)
	m.MapRange(0x1000, 0x1004,
		func(_ uint64, stored uint64) uint64 {
			return stored | busy
		},
		func(_ uint64, value uint64) uint64 {
			busy = 0
			return value
		},
	)

	v, err := m.ReadRaw(0x1000, regmap.W32)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 1)

	test.ExpectSuccess(t, m.WriteRaw(0x1000, regmap.W32, 0x10))
	v, err = m.ReadRaw(0x1000, regmap.W32)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x10)

	// Peek bypasses the read hook
	v, err = m.Peek(0x1000, regmap.W32)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x10)
}

func TestPoke(t *testing.T) {
	m := busmem.New(0x1000, 16)

	// Poke bypasses the write hook
	m.MapRange(0x1000, 0x1010, nil,
		func(_ uint64, _ uint64) uint64 {
			return 0
		},
	)

	test.ExpectSuccess(t, m.Poke(0x1008, regmap.W16, 0x1234))
	v, err := m.ReadRaw(0x1008, regmap.W16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x1234)
}
