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

package chipdesc_test

import (
	"strings"
	"testing"

	"github.com/polder-io/mmreg/access"
	"github.com/polder-io/mmreg/bus/busmem"
	"github.com/polder-io/mmreg/chipdesc"
	"github.com/polder-io/mmreg/curated"
	"github.com/polder-io/mmreg/regmap"
	"github.com/polder-io/mmreg/test"
)

const validSVD = `<?xml version="1.0" encoding="utf-8"?>
<device>
  <name>SOC</name>
  <peripherals>
    <peripheral>
      <name>UART</name>
      <baseAddress>0xF0001000</baseAddress>
      <registers>
        <register>
          <name>RXTX</name>
          <addressOffset>0x00</addressOffset>
          <fields>
            <field><name>RXTX</name><lsb>0</lsb><msb>7</msb></field>
          </fields>
        </register>
        <register>
          <name>TXFULL</name>
          <addressOffset>0x04</addressOffset>
          <fields>
            <field><name>TXFULL</name><lsb>0</lsb><msb>0</msb></field>
          </fields>
        </register>
      </registers>
    </peripheral>
    <peripheral>
      <name>AUDIO</name>
      <baseAddress>0xF0002000</baseAddress>
      <registers>
        <register>
          <name>RX_CTL</name>
          <addressOffset>0x0C</addressOffset>
          <fields>
            <field><name>ENABLE</name><lsb>0</lsb><msb>0</msb></field>
            <field><name>RESET</name><lsb>1</lsb><msb>1</msb></field>
          </fields>
        </register>
      </registers>
    </peripheral>
  </peripherals>
  <vendorExtensions>
    <memoryRegions>
      <memoryRegion>
        <name>SRAM</name>
        <baseAddress>0x10000000</baseAddress>
        <size>0x20000</size>
      </memoryRegion>
    </memoryRegions>
  </vendorExtensions>
</device>
`

func TestReadSVD(t *testing.T) {
	d, err := chipdesc.ReadSVD(strings.NewReader(validSVD))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d.Name, "SOC")
	test.ExpectEquality(t, len(d.Regions), 1)
	test.ExpectEquality(t, d.Regions[0].Base, 0x10000000)
	test.ExpectEquality(t, len(d.Peripherals), 2)

	uart, err := d.Peripheral("UART")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, uart.Base, 0xf0001000)

	// register addresses are absolute and the width has defaulted to 32
	rxtx, err := uart.Register("RXTX")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rxtx.Address, 0xf0001000)
	test.ExpectEquality(t, rxtx.Width, regmap.W32)

	txfull, err := uart.Register("TXFULL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, txfull.Address, 0xf0001004)

	f, err := uart.Field("RXTX", "RXTX")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, regmap.MustField(0, 8))

	audio, err := d.Peripheral("AUDIO")
	test.ExpectSuccess(t, err)
	f, err = audio.Field("RX_CTL", "RESET")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, regmap.MustField(1, 1))
}

func TestLookupNotFound(t *testing.T) {
	d, err := chipdesc.ReadSVD(strings.NewReader(validSVD))
	test.ExpectSuccess(t, err)

	_, err = d.Peripheral("GPIO")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, chipdesc.NotFound))

	uart, _ := d.Peripheral("UART")
	_, err = uart.Register("CTRL")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, chipdesc.NotFound))

	_, err = uart.Field("RXTX", "PARITY")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, chipdesc.NotFound))
}

const overlapSVD = `<device>
  <name>SOC</name>
  <peripherals>
    <peripheral>
      <name>TIMER</name>
      <baseAddress>0x1000</baseAddress>
      <registers>
        <register>
          <name>CTRL</name>
          <addressOffset>0x00</addressOffset>
          <fields>
            <field><name>A</name><lsb>0</lsb><msb>3</msb></field>
            <field><name>B</name><lsb>2</lsb><msb>5</msb></field>
          </fields>
        </register>
      </registers>
    </peripheral>
  </peripherals>
</device>
`

func TestOverlapRejected(t *testing.T) {
	_, err := chipdesc.ReadSVD(strings.NewReader(overlapSVD))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, regmap.DescriptorOverlap))
}

const overflowSVD = `<device>
  <name>SOC</name>
  <peripherals>
    <peripheral>
      <name>TIMER</name>
      <baseAddress>0x1000</baseAddress>
      <registers>
        <register>
          <name>CTRL</name>
          <addressOffset>0x00</addressOffset>
          <size>8</size>
          <fields>
            <field><name>A</name><lsb>4</lsb><msb>8</msb></field>
          </fields>
        </register>
      </registers>
    </peripheral>
  </peripherals>
</device>
`

func TestOverflowRejected(t *testing.T) {
	_, err := chipdesc.ReadSVD(strings.NewReader(overflowSVD))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, regmap.DescriptorOverflow))
}

const validYAML = `name: SOC
regions:
  - name: sram
    base: 0x10000000
    size: 0x20000
peripherals:
  - name: uart
    base: 0xf0001000
    registers:
      - name: rxtx
        offset: 0x00
        fields:
          - name: rxtx
            lsb: 0
            msb: 7
      - name: ctrl
        offset: 0x08
        width: 8
        fields:
          - name: enable
            lsb: 0
            msb: 0
          - name: baud
            lsb: 4
            msb: 6
`

func TestReadYAML(t *testing.T) {
	d, err := chipdesc.ReadYAML(strings.NewReader(validYAML))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d.Name, "SOC")

	uart, err := d.Peripheral("uart")
	test.ExpectSuccess(t, err)

	ctrl, err := uart.Register("ctrl")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ctrl.Address, 0xf0001008)
	test.ExpectEquality(t, ctrl.Width, regmap.W8)

	baud, err := uart.Field("ctrl", "baud")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, baud, regmap.MustField(4, 3))
}

func TestYAMLUnknownField(t *testing.T) {
	// the decoder is strict about the schema
	_, err := chipdesc.ReadYAML(strings.NewReader("name: SOC\nbogus: 1\n"))
	test.ExpectFailure(t, err)
}

// a description driven end to end: load, point an engine at a simulated
// window, modify a field.
func TestDescriptionWithEngine(t *testing.T) {
	d, err := chipdesc.ReadYAML(strings.NewReader(validYAML))
	test.ExpectSuccess(t, err)

	uart, err := d.Peripheral("uart")
	test.ExpectSuccess(t, err)
	ctrl, err := uart.Register("ctrl")
	test.ExpectSuccess(t, err)
	baud, err := uart.Field("ctrl", "baud")
	test.ExpectSuccess(t, err)

	m := busmem.New(0xf0001000, 0x100)
	e := access.NewEngine(m)

	test.ExpectSuccess(t, m.Poke(ctrl.Address, ctrl.Width, 0x01))
	test.ExpectSuccess(t, e.ModifyField(ctrl, baud, 0b101))

	v, err := m.Peek(ctrl.Address, ctrl.Width)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x51)
}
