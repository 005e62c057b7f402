// Package pd1990ac implements the NEC PD1990AC serial real-time clock used
// by the PC-1500 for its built-in calendar/clock function.
package pd1990ac

import "time"

// Frequency is the RTC's reference clock, half the CPU's nominal rate.
const Frequency = 2600000 / 2

// Clock holds the six BCD time/date counters and the mode/shift protocol
// state of a PD1990AC.
type Clock struct {
	seconds, minutes, hours, days, weekday, month uint16

	c0, c1, c2   bool
	stb          bool
	cs           bool
	dataIn       bool
	clk          bool
	dataOut      bool
	tp           bool
	outEnable    bool

	mode             byte
	bitNo            byte
	newMode          bool
	prevMode         byte
	prevClk          bool
	flipClk          bool
	tpFrequency      uint64

	previousState   uint64
	previousStateTP uint64
}

// New seeds the clock from the host's wall-clock time, once, the way
// pd1990ac.rs::new does via SystemTime::now().
func New() *Clock {
	now := time.Now().UTC()
	return &Clock{
		seconds: hex2bcd(uint32(now.Second())),
		minutes: hex2bcd(uint32(now.Minute())),
		hours:   hex2bcd(uint32(now.Hour())),
		days:    hex2bcd(uint32(now.Day())),
		weekday: hex2bcd(uint32(now.Weekday())),
		month:   uint16(now.Month()),

		prevMode:    0x10,
		tpFrequency: 1,
	}
}

func hex2bcd(d uint32) uint16 {
	a := d / 100
	b := d - a*100
	c := b / 10
	return uint16(a)<<8 | uint16(c)<<4 | (uint16(b) - uint16(c)*10)
}

func readBit(value uint16, position byte) bool { return (value>>position)&0x01 != 0 }

func setBit(value *uint16, position byte)   { *value |= 1 << position }
func unsetBit(value *uint16, position byte) { *value &^= 1 << position }

func putBit(value *uint16, position byte, bit bool) {
	if bit {
		setBit(value, position)
	} else {
		unsetBit(value, position)
	}
}

// Step advances the shift-register protocol state machine.
//
// Mode:
//
//	0 - Register Hold: bit index held at 0, DATA OUT = seconds bit 0
//	1 - Register Shift, DATA OUT = next counter bit, LSB first
//	2 - Time Set, DATA IN written into the addressed counter bit
//	3 - Time Read: no action
//	4 - Test: TP frequency set to 64 Hz
//
// No separate 1 Hz DATA OUT signal is generated, and the counters do not
// advance with timerState.
func (c *Clock) Step(timerState uint64) {
	if c.previousState == 0 {
		c.previousState = timerState
	}
	for timerState-c.previousState >= Frequency {
		c.previousState += Frequency
	}

	if c.stb {
		c.mode = b2u(c.c0) | b2u(c.c1)<<1 | b2u(c.c2)<<2
		if c.mode != c.prevMode {
			c.newMode = true
			c.prevMode = c.mode
		} else {
			c.newMode = false
		}
	}

	if c.clk != c.prevClk {
		c.flipClk = true
		c.prevClk = c.clk
	} else {
		c.flipClk = false
	}

	if c.mode == 4 {
		c.tpFrequency = 64
	}
	if c.mode == 0 {
		c.clk = true
		c.flipClk = true
		c.bitNo = 0
	}

	if c.clk && c.flipClk {
		switch c.mode {
		case 0x00, 0x01:
			switch {
			case c.bitNo <= 0x07:
				c.dataOut = readBit(c.seconds, c.bitNo)
			case c.bitNo <= 0x0F:
				c.dataOut = readBit(c.minutes, c.bitNo-0x08)
			case c.bitNo <= 0x17:
				c.dataOut = readBit(c.hours, c.bitNo-0x10)
			case c.bitNo <= 0x1F:
				c.dataOut = readBit(c.days, c.bitNo-0x18)
			case c.bitNo <= 0x23:
				c.dataOut = readBit(c.weekday, c.bitNo-0x20)
			case c.bitNo <= 0x27:
				c.dataOut = readBit(c.month, c.bitNo-0x24)
			}
			c.bitNo++
		case 0x02:
			switch {
			case c.bitNo <= 0x07:
				putBit(&c.seconds, c.bitNo, c.dataIn)
			case c.bitNo <= 0x0F:
				putBit(&c.minutes, c.bitNo-0x08, c.dataIn)
			case c.bitNo <= 0x17:
				putBit(&c.hours, c.bitNo-0x10, c.dataIn)
			case c.bitNo <= 0x1F:
				putBit(&c.days, c.bitNo-0x18, c.dataIn)
			case c.bitNo <= 0x23:
				putBit(&c.weekday, c.bitNo-0x20, c.dataIn)
			case c.bitNo <= 0x27:
				putBit(&c.month, c.bitNo-0x24, c.dataIn)
			}
			c.bitNo++
		}
	}
}

func b2u(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func (c *Clock) GetData() bool { return c.dataOut }

// GetTP returns the current state of the square-wave TP output line,
// flipping it at half the configured tp-frequency period.
func (c *Clock) GetTP(timerState uint64) bool {
	tpState := Frequency / c.tpFrequency

	for timerState-c.previousStateTP >= tpState/2 {
		c.tp = !c.tp
		c.previousStateTP += tpState / 2
	}
	return c.tp
}

func (c *Clock) SetC0(v bool)        { c.c0 = v }
func (c *Clock) SetC1(v bool)        { c.c1 = v }
func (c *Clock) SetC2(v bool)        { c.c2 = v }
func (c *Clock) SetSTB(v bool)       { c.stb = v }
func (c *Clock) SetCS(v bool)        { c.cs = v }
func (c *Clock) SetData(v bool)      { c.dataIn = v }
func (c *Clock) SetClk(v bool)       { c.clk = v }
func (c *Clock) SetOutEnable(v bool) { c.outEnable = v }
