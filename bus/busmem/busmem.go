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

package busmem

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/polder-io/mmreg/bus"
	"github.com/polder-io/mmreg/curated"
	"github.com/polder-io/mmreg/regmap"
)

// Mem is a simulated register window backed by ordinary memory. It
// implements bus.Accessor. Values are stored little-endian, matching the
// contract in the bus package.
//
// Mem is safe for concurrent use at the level of individual raw
// transactions. It provides no mutual exclusion between the read and write
// halves of a caller's read-modify-write; that remains the caller's
// responsibility, as it is on real hardware.
type Mem struct {
	crit sync.RWMutex

	base uint64
	mem  []byte

	hooks []hook
}

// hook intercepts raw transactions in an address range. either function may
// be nil. the transform result is what the transaction proceeds with.
type hook struct {
	start   uint64
	end     uint64
	onRead  func(address uint64, stored uint64) uint64
	onWrite func(address uint64, value uint64) uint64
}

// New creates a simulated register window of the given size in bytes,
// starting at the given base address.
func New(base uint64, size int) *Mem {
	return &Mem{
		base: base,
		mem:  make([]byte, size),
	}
}

// MapRange attaches transform functions to the address range from start up
// to but not including end. onRead receives the stored value and returns
// the value the transaction will see. onWrite receives the written value
// and returns the value that will be stored. Either function can be nil.
//
// Hooks simulate device behaviour behind a register, status bits that
// change on their own, write-one-to-clear bits and the like.
func (m *Mem) MapRange(start uint64, end uint64,
	onRead func(address uint64, stored uint64) uint64,
	onWrite func(address uint64, value uint64) uint64) {
	m.crit.Lock()
	defer m.crit.Unlock()

	m.hooks = append(m.hooks, hook{
		start:   start,
		end:     end,
		onRead:  onRead,
		onWrite: onWrite,
	})
}

// ReadRaw implements bus.Accessor.
func (m *Mem) ReadRaw(address uint64, width regmap.Width) (uint64, error) {
	m.crit.RLock()
	defer m.crit.RUnlock()

	o, err := m.offset(address, width)
	if err != nil {
		return 0, err
	}

	v := m.load(o, width)

	for _, h := range m.hooks {
		if h.onRead != nil && address >= h.start && address < h.end {
			v = h.onRead(address, v) & width.Mask()
		}
	}

	return v, nil
}

// WriteRaw implements bus.Accessor.
func (m *Mem) WriteRaw(address uint64, width regmap.Width, value uint64) error {
	m.crit.Lock()
	defer m.crit.Unlock()

	o, err := m.offset(address, width)
	if err != nil {
		return err
	}

	for _, h := range m.hooks {
		if h.onWrite != nil && address >= h.start && address < h.end {
			value = h.onWrite(address, value) & width.Mask()
		}
	}

	m.store(o, width, value)

	return nil
}

// Peek reads the stored value directly, bypassing any hooks. For test setup
// and inspection.
func (m *Mem) Peek(address uint64, width regmap.Width) (uint64, error) {
	m.crit.RLock()
	defer m.crit.RUnlock()

	o, err := m.offset(address, width)
	if err != nil {
		return 0, err
	}

	return m.load(o, width), nil
}

// Poke stores a value directly, bypassing any hooks. For test setup.
func (m *Mem) Poke(address uint64, width regmap.Width, value uint64) error {
	m.crit.Lock()
	defer m.crit.Unlock()

	o, err := m.offset(address, width)
	if err != nil {
		return err
	}

	m.store(o, width, value)

	return nil
}

// offset translates an absolute address to an offset into the backing
// slice, checking the window bounds and the natural alignment of the
// access.
func (m *Mem) offset(address uint64, width regmap.Width) (int, error) {
	n := uint64(width.Bytes())
	win := uint64(len(m.mem))

	// comparisons ordered so the arithmetic cannot wrap, even for
	// addresses near the top of the 64 bit space
	if address < m.base || address-m.base >= win || n > win-(address-m.base) {
		return 0, curated.Errorf(bus.AccessFault,
			fmt.Sprintf("address %#x is outside the window", address))
	}
	if address%n != 0 {
		return 0, curated.Errorf(bus.AccessFault,
			fmt.Sprintf("address %#x is not aligned for a %d bit access", address, uint(width)))
	}

	return int(address - m.base), nil
}

func (m *Mem) load(o int, width regmap.Width) uint64 {
	switch width {
	case regmap.W8:
		return uint64(m.mem[o])
	case regmap.W16:
		return uint64(binary.LittleEndian.Uint16(m.mem[o:]))
	case regmap.W32:
		return uint64(binary.LittleEndian.Uint32(m.mem[o:]))
	}
	return binary.LittleEndian.Uint64(m.mem[o:])
}

func (m *Mem) store(o int, width regmap.Width, value uint64) {
	switch width {
	case regmap.W8:
		m.mem[o] = uint8(value)
	case regmap.W16:
		binary.LittleEndian.PutUint16(m.mem[o:], uint16(value))
	case regmap.W32:
		binary.LittleEndian.PutUint32(m.mem[o:], uint32(value))
	default:
		binary.LittleEndian.PutUint64(m.mem[o:], value)
	}
}
