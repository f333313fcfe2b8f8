/*
Copyright 2024 Tim St. Pierre
Options for MAX7219 LED display drivers
*/
package max7219

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// MaxFreq is the fastest clock the MAX7219 accepts.
const MaxFreq = 10 * physic.MegaHertz

type Opts struct {
	// How many devices are daisy-chained, 1 to MaxDevices
	Devices int
	// SPI clock, at most MaxFreq
	Freq physic.Frequency
	// SPI mode. The device samples DIN on the rising edge of CLK.
	Mode spi.Mode
}

var DefaultOpts = Opts{
	Devices: 1,
	Freq:    MaxFreq,
	Mode:    spi.Mode0,
}

func (o *Opts) devices() (int, error) {
	switch {
	case o.Devices == 0:
		return DefaultOpts.Devices, nil
	case o.Devices < 0 || o.Devices > MaxDevices:
		return 0, fmt.Errorf("%d devices not supported, want 1 to %d", o.Devices, MaxDevices)
	default:
		return o.Devices, nil
	}
}

func (o *Opts) freq() (physic.Frequency, error) {
	switch {
	case o.Freq == 0:
		return DefaultOpts.Freq, nil
	case o.Freq < 0 || o.Freq > MaxFreq:
		return 0, errors.New("given frequency not supported by device")
	default:
		return o.Freq, nil
	}
}
