/*
Copyright 2024 Tim St. Pierre
Controls a chain of MAX7219 LED display drivers over SPI
*/
package max7219

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Dev is a chain of MAX7219 driving 8x8 matrices or 8 digit seven
// segment displays. Device 0 is the first pair of bytes in each frame.
//
// Dev is not safe for concurrent use.
type Dev struct {
	c Connector
}

// NewSPI returns a chain that relies on the SPI controller's chip select.
//
// Use default options if nil is used.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	c, devices, err := connect(p, opts)
	if err != nil {
		return nil, err
	}
	sc, err := NewConnector(c, devices)
	if err != nil {
		return nil, err
	}
	return New(sc)
}

// NewSPICS returns a chain whose LOAD line is driven through cs around
// every frame. Use it when the controller toggles chip select per byte.
//
// Use default options if nil is used.
func NewSPICS(p spi.Port, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	c, devices, err := connect(p, opts)
	if err != nil {
		return nil, err
	}
	sc, err := NewCSConnector(c, cs, devices)
	if err != nil {
		return nil, err
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("max7219: %w: %s high: %w", ErrPin, cs, err)
	}
	return New(sc)
}

// New returns a device using an existing connector and runs the
// initialization sequence. The displays are left blank and powered off.
func New(c Connector) (*Dev, error) {
	d := &Dev{c: c}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func connect(p spi.Port, opts *Opts) (conn.Conn, int, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	devices, err := opts.devices()
	if err != nil {
		return nil, 0, fmt.Errorf("max7219: %v", err)
	}
	f, err := opts.freq()
	if err != nil {
		return nil, 0, fmt.Errorf("max7219: %v", err)
	}
	c, err := p.Connect(f, opts.Mode, 8)
	if err != nil {
		return nil, 0, fmt.Errorf("max7219: %w: %w", ErrTransport, err)
	}
	return c, devices, nil
}

// init must turn display test off first, otherwise the other registers
// don't show. Power goes off last.
func (d *Dev) init() error {
	for i := 0; i < d.c.Devices(); i++ {
		log.WithFields(log.Fields{"device": i, "devices": d.c.Devices()}).Debug("max7219: initializing")
		if err := d.SetDisplayTestMode(i, NormalMode); err != nil {
			return err
		}
		if err := d.SetDecodeMode(i, NoDecode); err != nil {
			return err
		}
		if err := d.SetScanLimit(i, Display0To7); err != nil {
			return err
		}
		if err := d.ClearDisplay(i); err != nil {
			return err
		}
	}
	return d.PowerOff()
}

func (d *Dev) String() string {
	return fmt.Sprintf("max7219{%v}", d.c)
}

// Devices returns the number of chained devices.
func (d *Dev) Devices() int {
	return d.c.Devices()
}

// Halt powers off all the displays.
func (d *Dev) Halt() error {
	return d.PowerOff()
}

// PowerOn takes every device out of shutdown.
func (d *Dev) PowerOn() error {
	return d.SetShutdownMode(NormalOperation)
}

// PowerOff puts every device in shutdown. Register contents are kept.
func (d *Dev) PowerOff() error {
	return d.SetShutdownMode(ShutdownMode)
}

func (d *Dev) SetShutdownMode(mode Power) error {
	return d.c.WriteAll(RegShutdown, byte(mode))
}

func (d *Dev) SetDecodeMode(device int, mode DecodeMode) error {
	return d.c.WriteRegister(device, RegDecodeMode, byte(mode))
}

func (d *Dev) SetDecodeModeAll(mode DecodeMode) error {
	return d.c.WriteAll(RegDecodeMode, byte(mode))
}

func (d *Dev) SetIntensity(device int, level Intensity) error {
	return d.c.WriteRegister(device, RegIntensity, byte(level))
}

func (d *Dev) SetIntensityAll(level Intensity) error {
	return d.c.WriteAll(RegIntensity, byte(level))
}

// SetScanLimit limits the digits refreshed on a device. Mostly useful for
// seven segment displays with fewer than 8 digits fitted.
func (d *Dev) SetScanLimit(device int, limit ScanLimit) error {
	return d.c.WriteRegister(device, RegScanLimit, byte(limit))
}

func (d *Dev) SetScanLimitAll(limit ScanLimit) error {
	return d.c.WriteAll(RegScanLimit, byte(limit))
}

// SetDisplayTestMode lights every LED of a device while mode is TestMode.
// Set it back to NormalMode when done.
func (d *Dev) SetDisplayTestMode(device int, mode DisplayTest) error {
	return d.c.WriteRegister(device, RegDisplayTest, byte(mode))
}

func (d *Dev) SetDisplayTestModeAll(mode DisplayTest) error {
	return d.c.WriteAll(RegDisplayTest, byte(mode))
}

// ClearDisplay blanks digits 0 to 7 of a device, one frame per digit.
func (d *Dev) ClearDisplay(device int) error {
	for r := RegDigit0; r <= RegDigit7; r++ {
		if err := d.c.WriteRegister(device, r, 0x00); err != nil {
			return err
		}
	}
	return nil
}

// ClearDisplayAll blanks every device in chain order.
func (d *Dev) ClearDisplayAll() error {
	for i := 0; i < d.c.Devices(); i++ {
		if err := d.ClearDisplay(i); err != nil {
			return err
		}
	}
	return nil
}

// WriteRaw writes data to any register of a device. Nothing is checked.
func (d *Dev) WriteRaw(device int, r Register, data byte) error {
	return d.c.WriteRegister(device, r, data)
}

// WriteRawAll writes raw[0] to digit 0 through raw[7] to digit 7. On a
// matrix each byte is one row of pixels.
func (d *Dev) WriteRawAll(device int, raw [Digits]byte) error {
	for i, b := range raw {
		if err := d.c.WriteRaw(device, byte(RegDigit0)+byte(i), b); err != nil {
			return err
		}
	}
	return nil
}

// WriteStr shows an ASCII string on a seven segment display. The first
// character goes to the leftmost digit (digit 7). Bit 7 of dots is the
// decimal point of the first character, bit 0 that of the last.
// Characters that can't be shown are replaced by a question mark.
func (d *Dev) WriteStr(device int, s [Digits]byte, dots byte) error {
	if err := d.SetDecodeMode(device, NoDecode); err != nil {
		return err
	}
	mask := byte(0b1000_0000)
	digit := byte(RegDigit7)
	for _, ch := range s {
		if err := d.c.WriteRaw(device, digit, SegmentByte(ch, dots&mask != 0)); err != nil {
			return err
		}
		mask >>= 1
		digit--
	}
	return nil
}

// WriteBCD shows a string through the Code B decoder, in the same digit
// order as WriteStr. Valid input is the digit values 0-9 and the
// characters " -eEhHlLpP", upper case letters adding the decimal point.
func (d *Dev) WriteBCD(device int, s [Digits]byte) error {
	if err := d.SetDecodeMode(device, CodeBDigits7_0); err != nil {
		return err
	}
	digit := byte(RegDigit7)
	for _, ch := range s {
		if err := d.c.WriteRaw(device, digit, BCDByte(ch)); err != nil {
			return err
		}
		digit--
	}
	return nil
}
