/*
Copyright 2024 Tim St. Pierre
Exercises a chain of MAX7219 displays on a Raspberry Pi
*/
package main

import (
	"flag"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/tstpierre-tc/max7219"
)

var (
	spiBus  = flag.String("spi", "", "SPI bus name (empty for default)")
	csPin   = flag.String("cs", "", "LOAD/CS pin name, empty to use the controller chip select")
	devices = flag.Int("devices", 1, "Number of daisy-chained MAX7219")
	hz      = flag.Int64("hz", 1000000, "SPI frequency in Hz")
	mode    = flag.Int("mode", 0, "SPI mode, 0 to 3")
	demo    = flag.String("demo", "text", "Demo to run: text, bcd, matrix, single")
	verbose = flag.Bool("v", false, "Log every frame")
)

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := mainImpl(); err != nil {
		log.Fatal(err)
	}
}

// mainImpl returns instead of exiting so the deferred cleanups run.
func mainImpl() error {
	m, err := parseMode(*mode)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph.io: %w", err)
	}

	b, err := spireg.Open(*spiBus)
	if err != nil {
		return fmt.Errorf("failed to open SPI bus: %w", err)
	}
	defer b.Close()

	var cs gpio.PinOut
	if *csPin != "" {
		p := gpioreg.ByName(*csPin)
		if p == nil {
			return fmt.Errorf("GPIO pin %s not found", *csPin)
		}
		cs = p
	}

	opts := &max7219.Opts{
		Devices: *devices,
		Freq:    physic.Frequency(*hz) * physic.Hertz,
		Mode:    m,
	}

	if *demo == "single" {
		s, err := max7219.NewSingle(b, cs, opts)
		if err != nil {
			return fmt.Errorf("failed to create display: %w", err)
		}
		return runSingle(s)
	}

	var dev *max7219.Dev
	if cs != nil {
		dev, err = max7219.NewSPICS(b, cs, opts)
	} else {
		dev, err = max7219.NewSPI(b, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to create display: %w", err)
	}
	log.Infof("Display initialized: %v", dev)
	return runChain(dev, *demo)
}

func parseMode(m int) (spi.Mode, error) {
	switch spi.Mode(m) {
	case spi.Mode0, spi.Mode1, spi.Mode2, spi.Mode3:
		return spi.Mode(m), nil
	default:
		return 0, fmt.Errorf("unsupported SPI mode %d", m)
	}
}

// runChain runs a demo on the chain and always powers it off afterwards.
func runChain(dev *max7219.Dev, name string) (err error) {
	defer func() {
		if herr := dev.Halt(); herr != nil && err == nil {
			err = herr
		}
	}()

	if err := dev.SetIntensityAll(max7219.Ratio9_32); err != nil {
		return err
	}
	if err := dev.PowerOn(); err != nil {
		return err
	}

	switch name {
	case "text":
		return runText(dev)
	case "bcd":
		return runBCD(dev)
	case "matrix":
		return runMatrix(dev)
	default:
		return fmt.Errorf("unknown demo: %s", name)
	}
}

func runText(dev *max7219.Dev) error {
	words := [][max7219.Digits]byte{
		[max7219.Digits]byte([]byte("HELLO   ")),
		[max7219.Digits]byte([]byte("12345678")),
		[max7219.Digits]byte([]byte("-PLAY_GO")),
	}
	for _, w := range words {
		for i := 0; i < dev.Devices(); i++ {
			if err := dev.WriteStr(i, w, 0b0000_0001); err != nil {
				return err
			}
		}
		time.Sleep(2 * time.Second)
	}
	return nil
}

func runBCD(dev *max7219.Dev) error {
	s := [max7219.Digits]byte{'H', '-', 'e', 'l', 'P', ' ', 4, 2}
	for i := 0; i < dev.Devices(); i++ {
		if err := dev.WriteBCD(i, s); err != nil {
			return err
		}
	}
	time.Sleep(5 * time.Second)
	return nil
}

func runMatrix(dev *max7219.Dev) error {
	for i := 0; i < dev.Devices(); i++ {
		var raw [max7219.Digits]byte
		for row := range raw {
			raw[row] = 1 << ((row + i) % 8)
		}
		if err := dev.WriteRawAll(i, raw); err != nil {
			return err
		}
	}
	time.Sleep(5 * time.Second)
	return dev.ClearDisplayAll()
}

// runSingle walks a lit pixel down the rows, then fills them. The device
// is put in shutdown on every exit path.
func runSingle(s *max7219.Single) (err error) {
	defer func() {
		if herr := s.Halt(); herr != nil && err == nil {
			err = herr
		}
	}()
	if err := s.InitDisplay(true); err != nil {
		return err
	}

	data := byte(1)
	for d := max7219.Digit0; d <= max7219.Digit7; d++ {
		if err := s.DrawRowOrDigit(d, data); err != nil {
			return err
		}
		data <<= 1
		time.Sleep(500 * time.Millisecond)
	}
	for d := max7219.Digit0; d <= max7219.Digit7; d++ {
		if err := s.DrawRowOrDigit(d, 0xFF); err != nil {
			return err
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil
}
