/*
Copyright 2024 Tim St. Pierre
Single MAX7219 driving one 8x8 matrix or 8 digit display
*/
package max7219

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Single is a lone MAX7219 that is drawn a row or digit at a time.
// Unlike Dev it does not configure the device until InitDisplay is called.
type Single struct {
	c Connector
}

// NewSingle returns a single device. If cs is nil the SPI controller's
// chip select is used.
//
// Use default options if nil is used. opts.Devices is ignored.
func NewSingle(p spi.Port, cs gpio.PinOut, opts *Opts) (*Single, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	o.Devices = 1
	c, _, err := connect(p, &o)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		sc, err := NewConnector(c, 1)
		if err != nil {
			return nil, err
		}
		return &Single{c: sc}, nil
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("max7219: %w: %s high: %w", ErrPin, cs, err)
	}
	sc, err := NewCSConnector(c, cs, 1)
	if err != nil {
		return nil, err
	}
	return &Single{c: sc}, nil
}

func (s *Single) String() string {
	return fmt.Sprintf("max7219.Single{%v}", s.c)
}

// InitDisplay sets the device up for raw drawing and powers it on. The
// digits are blanked if clear is set.
func (s *Single) InitDisplay(clear bool) error {
	log.Debug("max7219: initializing single display")
	cmds := []struct {
		r    Register
		data byte
	}{
		{RegDisplayTest, byte(NormalMode)},
		{RegScanLimit, byte(Display0To7)},
		{RegDecodeMode, byte(NoDecode)},
		{RegShutdown, byte(NormalOperation)},
	}
	for _, cmd := range cmds {
		if err := s.c.WriteRegister(0, cmd.r, cmd.data); err != nil {
			return err
		}
	}
	if clear {
		return s.Clear()
	}
	return nil
}

// DrawRowOrDigit writes one row of a matrix or one digit of a display.
func (s *Single) DrawRowOrDigit(d Digit, data byte) error {
	return s.c.WriteRegister(0, d.Register(), data)
}

// Clear blanks all 8 digits.
func (s *Single) Clear() error {
	for d := Digit0; d <= Digit7; d++ {
		if err := s.DrawRowOrDigit(d, 0x00); err != nil {
			return err
		}
	}
	return nil
}

// Halt puts the device in shutdown.
func (s *Single) Halt() error {
	return s.c.WriteRegister(0, RegShutdown, byte(ShutdownMode))
}
