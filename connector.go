/*
Copyright 2024 Tim St. Pierre
Frames register writes for a chain of MAX7219 over SPI
*/
package max7219

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

var (
	// ErrTransport is returned when the SPI write failed.
	ErrTransport = errors.New("transport error")
	// ErrPin is returned when the chip select pin could not be driven.
	ErrPin = errors.New("pin error")
	// ErrDeviceIndex is returned for a device index outside the chain.
	ErrDeviceIndex = errors.New("device index out of range")
	// ErrDigit is returned for a byte that is not a digit/row address.
	ErrDigit = errors.New("not a digit register")
)

// Connector places register writes into the frame shifted through the
// whole chain. Every device latches its pair on the rising edge of LOAD,
// so devices that are not addressed get a NoOp.
type Connector interface {
	// Devices is the number of chained devices.
	Devices() int
	// FrameLen is the number of bytes in one frame, two per device.
	FrameLen() int
	// WriteRaw writes data to register on one device and NoOp to the
	// others.
	WriteRaw(device int, register, data byte) error
	// WriteRegister is WriteRaw with a typed register.
	WriteRegister(device int, r Register, data byte) error
	// WriteAll writes the same register and data to every device in a
	// single frame.
	WriteAll(r Register, data byte) error
}

// SPIConnector relies on the SPI controller to drive chip select around
// each transfer.
type SPIConnector struct {
	c       conn.Conn
	devices int
	buf     [MaxFrameBytes]byte
}

// NewConnector returns a hardware chip select connector for devices
// chained on c.
func NewConnector(c conn.Conn, devices int) (*SPIConnector, error) {
	if devices < 1 || devices > MaxDevices {
		return nil, fmt.Errorf("max7219: %d devices not supported, want 1 to %d", devices, MaxDevices)
	}
	return &SPIConnector{c: c, devices: devices}, nil
}

func (s *SPIConnector) String() string {
	return fmt.Sprintf("spi{%s, %d devices}", s.c, s.devices)
}

// Devices implements Connector.
func (s *SPIConnector) Devices() int {
	return s.devices
}

// FrameLen implements Connector.
func (s *SPIConnector) FrameLen() int {
	return s.devices * 2
}

// WriteRegister implements Connector.
func (s *SPIConnector) WriteRegister(device int, r Register, data byte) error {
	return s.WriteRaw(device, byte(r), data)
}

// WriteRaw implements Connector.
func (s *SPIConnector) WriteRaw(device int, register, data byte) error {
	if device < 0 || device >= s.devices {
		return fmt.Errorf("max7219: %w: %d of %d", ErrDeviceIndex, device, s.devices)
	}
	s.buf = [MaxFrameBytes]byte{}
	s.buf[device*2] = register
	s.buf[device*2+1] = data
	log.Debugf("max7219: device %d %s <- %#010b", device, Register(register), data)
	return s.tx()
}

// WriteAll implements Connector.
func (s *SPIConnector) WriteAll(r Register, data byte) error {
	s.buf = [MaxFrameBytes]byte{}
	for i := 0; i < s.devices; i++ {
		s.buf[i*2] = byte(r)
		s.buf[i*2+1] = data
	}
	log.Debugf("max7219: all devices %s <- %#010b", r, data)
	return s.tx()
}

func (s *SPIConnector) tx() error {
	if err := s.c.Tx(s.buf[:s.FrameLen()], nil); err != nil {
		return fmt.Errorf("max7219: %w: %w", ErrTransport, err)
	}
	return nil
}

// CSConnector drives the chip select (LOAD) pin itself, for SPI
// controllers whose hardware chip select doesn't frame the whole transfer.
type CSConnector struct {
	spi *SPIConnector
	cs  gpio.PinOut
}

// NewCSConnector returns a software chip select connector. cs must
// already be an output.
func NewCSConnector(c conn.Conn, cs gpio.PinOut, devices int) (*CSConnector, error) {
	if cs == nil {
		return nil, errors.New("max7219: chip select pin is required")
	}
	s, err := NewConnector(c, devices)
	if err != nil {
		return nil, err
	}
	return &CSConnector{spi: s, cs: cs}, nil
}

func (s *CSConnector) String() string {
	return fmt.Sprintf("spi{%s, cs %s, %d devices}", s.spi.c, s.cs, s.spi.devices)
}

// Devices implements Connector.
func (s *CSConnector) Devices() int {
	return s.spi.Devices()
}

// FrameLen implements Connector.
func (s *CSConnector) FrameLen() int {
	return s.spi.FrameLen()
}

// WriteRegister implements Connector.
func (s *CSConnector) WriteRegister(device int, r Register, data byte) error {
	return s.WriteRaw(device, byte(r), data)
}

// WriteRaw implements Connector.
func (s *CSConnector) WriteRaw(device int, register, data byte) error {
	if device < 0 || device >= s.spi.devices {
		return fmt.Errorf("max7219: %w: %d of %d", ErrDeviceIndex, device, s.spi.devices)
	}
	return s.selected(func() error {
		return s.spi.WriteRaw(device, register, data)
	})
}

// WriteAll implements Connector.
func (s *CSConnector) WriteAll(r Register, data byte) error {
	return s.selected(func() error {
		return s.spi.WriteAll(r, data)
	})
}

// selected runs tx with chip select low. The pin is always driven back
// high, and a failure to do so wins over the error from tx.
func (s *CSConnector) selected(tx func() error) (err error) {
	defer func() {
		if herr := s.cs.Out(gpio.High); herr != nil {
			err = fmt.Errorf("max7219: %w: %s high: %w", ErrPin, s.cs, herr)
		}
	}()
	if err := s.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("max7219: %w: %s low: %w", ErrPin, s.cs, err)
	}
	return tx()
}
