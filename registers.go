/*
Copyright 2024 Tim St. Pierre
Register map and configuration values of the MAX7219
*/
package max7219

import (
	"fmt"
)

const (
	// MaxDevices is the longest daisy chain supported.
	MaxDevices = 8
	// MaxFrameBytes is the size of a frame for a full chain, one
	// register/data pair per device.
	MaxFrameBytes = MaxDevices * 2
	// Digits per device. On a matrix these are the rows.
	Digits = 8
)

// Register is a MAX7219 register address. Only the low nibble is
// significant on the wire.
type Register byte

const (
	RegNoOp        Register = 0x00
	RegDigit0      Register = 0x01
	RegDigit1      Register = 0x02
	RegDigit2      Register = 0x03
	RegDigit3      Register = 0x04
	RegDigit4      Register = 0x05
	RegDigit5      Register = 0x06
	RegDigit6      Register = 0x07
	RegDigit7      Register = 0x08
	RegDecodeMode  Register = 0x09
	RegIntensity   Register = 0x0A
	RegScanLimit   Register = 0x0B
	RegShutdown    Register = 0x0C
	RegDisplayTest Register = 0x0F
)

func (r Register) String() string {
	switch r {
	case RegNoOp:
		return "NoOp"
	case RegDigit0, RegDigit1, RegDigit2, RegDigit3, RegDigit4, RegDigit5, RegDigit6, RegDigit7:
		return fmt.Sprintf("Digit%d", byte(r)-1)
	case RegDecodeMode:
		return "DecodeMode"
	case RegIntensity:
		return "Intensity"
	case RegScanLimit:
		return "ScanLimit"
	case RegShutdown:
		return "Shutdown"
	case RegDisplayTest:
		return "DisplayTest"
	default:
		return fmt.Sprintf("Register(0x%02x)", byte(r))
	}
}

// Digit addresses one digit of a seven segment display, or one row of a
// matrix.
type Digit byte

const (
	Digit0 = Digit(RegDigit0)
	Digit1 = Digit(RegDigit1)
	Digit2 = Digit(RegDigit2)
	Digit3 = Digit(RegDigit3)
	Digit4 = Digit(RegDigit4)
	Digit5 = Digit(RegDigit5)
	Digit6 = Digit(RegDigit6)
	Digit7 = Digit(RegDigit7)
)

// DigitFromAddr converts a raw register address (1-8) to a Digit.
func DigitFromAddr(addr byte) (Digit, error) {
	switch Register(addr) {
	case RegDigit0, RegDigit1, RegDigit2, RegDigit3, RegDigit4, RegDigit5, RegDigit6, RegDigit7:
		return Digit(addr), nil
	default:
		return 0, fmt.Errorf("max7219: %w: 0x%02x", ErrDigit, addr)
	}
}

// Register returns the register address of the digit.
func (d Digit) Register() Register {
	return Register(d)
}

// Power is the value of the Shutdown register.
type Power byte

const (
	ShutdownMode    Power = 0x00
	NormalOperation Power = 0x01
)

// DecodeMode selects which digits go through the Code B decoder.
type DecodeMode byte

const (
	NoDecode       DecodeMode = 0x00
	CodeBDigit0    DecodeMode = 0x01
	CodeBDigits3_0 DecodeMode = 0x0F
	CodeBDigits7_0 DecodeMode = 0xFF
)

// Intensity is the LED duty cycle, in 16 steps from 1/32 to 31/32.
type Intensity byte

const (
	IntensityMin Intensity = 0x00
	Ratio3_32    Intensity = 0x01
	Ratio5_32    Intensity = 0x02
	Ratio7_32    Intensity = 0x03
	Ratio9_32    Intensity = 0x04
	Ratio11_32   Intensity = 0x05
	Ratio13_32   Intensity = 0x06
	Ratio15_32   Intensity = 0x07
	Ratio17_32   Intensity = 0x08
	Ratio19_32   Intensity = 0x09
	Ratio21_32   Intensity = 0x0A
	Ratio23_32   Intensity = 0x0B
	Ratio25_32   Intensity = 0x0C
	Ratio27_32   Intensity = 0x0D
	Ratio29_32   Intensity = 0x0E
	IntensityMax Intensity = 0x0F
)

// ScanLimit sets how many digits are refreshed, starting from digit 0.
type ScanLimit byte

const (
	Display0Only ScanLimit = 0x00
	Display0And1 ScanLimit = 0x01
	Display0To2  ScanLimit = 0x02
	Display0To3  ScanLimit = 0x03
	Display0To4  ScanLimit = 0x04
	Display0To5  ScanLimit = 0x05
	Display0To6  ScanLimit = 0x06
	Display0To7  ScanLimit = 0x07
)

// DisplayTest turns every LED on when set to TestMode, overriding all
// other registers except Shutdown.
type DisplayTest byte

const (
	NormalMode DisplayTest = 0x00
	TestMode   DisplayTest = 0x01
)
