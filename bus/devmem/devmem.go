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

//go:build linux

package devmem

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/polder-io/mmreg/bus"
	"github.com/polder-io/mmreg/curated"
	"github.com/polder-io/mmreg/logger"
	"github.com/polder-io/mmreg/regmap"
)

// Mem is a register window mapped from physical memory through /dev/mem.
// It implements bus.Accessor.
//
// Every raw transaction is a single naturally aligned load or store of the
// register width, which on common architectures is a single bus cycle. The
// file is opened with O_SYNC so the mapping is uncached.
type Mem struct {
	base uint64
	size int

	// the mapping is page aligned. skew is the distance from the start of
	// the mapping to base
	mapping []byte
	skew    int
}

// New maps size bytes of physical memory starting at the given base
// address. Requires a kernel that exposes /dev/mem and the privilege to
// open it.
func New(base uint64, size int) (*Mem, error) {
	f, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, curated.Errorf(bus.AccessFault, err)
	}
	defer f.Close()

	// mmap offsets must be page aligned
	page := uint64(unix.Getpagesize())
	aligned := base &^ (page - 1)
	skew := int(base - aligned)

	mapping, err := unix.Mmap(int(f.Fd()), int64(aligned), size+skew,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, curated.Errorf(bus.AccessFault, err)
	}

	logger.Logf("devmem", "mapped %d bytes at %#x", size, base)

	return &Mem{
		base:    base,
		size:    size,
		mapping: mapping,
		skew:    skew,
	}, nil
}

// Close releases the mapping. The Mem must not be used afterwards.
func (m *Mem) Close() error {
	logger.Logf("devmem", "unmapping %d bytes at %#x", m.size, m.base)
	err := unix.Munmap(m.mapping)
	m.mapping = nil
	if err != nil {
		return curated.Errorf(bus.AccessFault, err)
	}
	return nil
}

// ReadRaw implements bus.Accessor.
func (m *Mem) ReadRaw(address uint64, width regmap.Width) (uint64, error) {
	p, err := m.pointer(address, width)
	if err != nil {
		return 0, err
	}

	switch width {
	case regmap.W8:
		return uint64(*(*uint8)(p)), nil
	case regmap.W16:
		return uint64(*(*uint16)(p)), nil
	case regmap.W32:
		return uint64(*(*uint32)(p)), nil
	}
	return *(*uint64)(p), nil
}

// WriteRaw implements bus.Accessor.
func (m *Mem) WriteRaw(address uint64, width regmap.Width, value uint64) error {
	p, err := m.pointer(address, width)
	if err != nil {
		return err
	}

	switch width {
	case regmap.W8:
		*(*uint8)(p) = uint8(value)
	case regmap.W16:
		*(*uint16)(p) = uint16(value)
	case regmap.W32:
		*(*uint32)(p) = uint32(value)
	default:
		*(*uint64)(p) = value
	}

	return nil
}

// pointer checks window bounds and natural alignment and returns the
// address of the register inside the mapping. the checks run before the
// mapping is touched.
func (m *Mem) pointer(address uint64, width regmap.Width) (unsafe.Pointer, error) {
	n := uint64(width.Bytes())
	win := uint64(m.size)

	// comparisons ordered so the arithmetic cannot wrap, even for
	// addresses near the top of the 64 bit space
	if address < m.base || address-m.base >= win || n > win-(address-m.base) {
		return nil, curated.Errorf(bus.AccessFault,
			fmt.Sprintf("address %#x is outside the window", address))
	}
	if address%n != 0 {
		return nil, curated.Errorf(bus.AccessFault,
			fmt.Sprintf("address %#x is not aligned for a %d bit access", address, uint(width)))
	}

	return unsafe.Pointer(&m.mapping[m.skew+int(address-m.base)]), nil
}
