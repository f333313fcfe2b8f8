/*
Copyright 2024 Tim St. Pierre
ASCII to seven segment and Code B translation tables
*/
package max7219

const (
	// DecimalPoint is the DP segment in both no-decode and Code B data.
	DecimalPoint byte = 0b1000_0000
	// Unknown is the pattern shown for characters that have no seven
	// segment rendering. It looks like a question mark.
	Unknown byte = 0b1110_0101
)

// SegmentByte returns the no-decode segment pattern for an ASCII
// character. Bits are DP,A,B,C,D,E,F,G from most to least significant.
// Characters that can't be drawn on seven segments (K, M, R, T, V, W, X,
// Y, Z, ...) come back as Unknown. dot turns the decimal point on.
func SegmentByte(ch byte, dot bool) byte {
	var b byte
	switch ch {
	case ' ':
		b = 0b0000_0000
	case '.':
		b = 0b1000_0000
	case '-':
		b = 0b0000_0001
	case '_':
		b = 0b0000_1000
	case '0':
		b = 0b0111_1110
	case '1':
		b = 0b0011_0000
	case '2':
		b = 0b0110_1101
	case '3':
		b = 0b0111_1001
	case '4':
		b = 0b0011_0011
	case '5':
		b = 0b0101_1011
	case '6':
		b = 0b0101_1111
	case '7':
		b = 0b0111_0000
	case '8':
		b = 0b0111_1111
	case '9':
		b = 0b0111_1011
	case 'a', 'A':
		b = 0b0111_0111
	case 'b', 'B':
		b = 0b0001_1111
	case 'c', 'C':
		b = 0b0100_1110
	case 'd', 'D':
		b = 0b0011_1101
	case 'e', 'E':
		b = 0b0100_1111
	case 'f', 'F':
		b = 0b0100_0111
	case 'g', 'G':
		b = 0b0101_1110
	case 'h', 'H':
		b = 0b0011_0111
	case 'i', 'I':
		b = 0b0011_0000
	case 'j', 'J':
		b = 0b0011_1100
	case 'l', 'L':
		b = 0b0000_1110
	case 'n', 'N':
		b = 0b0001_0101
	case 'o', 'O':
		b = 0b0111_1110
	case 'p', 'P':
		b = 0b0110_0111
	case 'q', 'Q':
		b = 0b0111_0011
	case 's', 'S':
		b = 0b0101_1011
	case 'u', 'U':
		b = 0b0011_1110
	default:
		b = Unknown
	}
	if dot {
		b |= DecimalPoint
	}
	return b
}

// BCDByte returns the Code B value for the letters the decoder knows.
// Lower case is drawn without the decimal point, upper case with it.
// Anything else, including the raw digit values 0-9, is passed through.
func BCDByte(ch byte) byte {
	switch ch {
	case ' ':
		return 0b0000_1111
	case '-':
		return 0b0000_1010
	case 'e':
		return 0b0000_1011
	case 'E':
		return 0b1000_1011
	case 'h':
		return 0b0000_1100
	case 'H':
		return 0b1000_1100
	case 'l':
		return 0b0000_1101
	case 'L':
		return 0b1000_1101
	case 'p':
		return 0b0000_1110
	case 'P':
		return 0b1000_1110
	default:
		return ch
	}
}
