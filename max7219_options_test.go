package max7219

import (
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestOptsDevices(t *testing.T) {
	tests := []struct {
		devices int
		want    int
		wantErr bool
	}{
		{0, 1, false},
		{1, 1, false},
		{8, 8, false},
		{9, 0, true},
		{-3, 0, true},
	}
	for _, tt := range tests {
		o := Opts{Devices: tt.devices}
		got, err := o.devices()
		if (err != nil) != tt.wantErr {
			t.Errorf("devices() for %d error = %v, wantErr %v", tt.devices, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("devices() for %d = %d, want %d", tt.devices, got, tt.want)
		}
	}
}

func TestOptsFreq(t *testing.T) {
	tests := []struct {
		freq    physic.Frequency
		want    physic.Frequency
		wantErr bool
	}{
		{0, MaxFreq, false},
		{800 * physic.Hertz, 800 * physic.Hertz, false},
		{MaxFreq, MaxFreq, false},
		{MaxFreq + 1, 0, true},
		{-1, 0, true},
	}
	for _, tt := range tests {
		o := Opts{Freq: tt.freq}
		got, err := o.freq()
		if (err != nil) != tt.wantErr {
			t.Errorf("freq() for %s error = %v, wantErr %v", tt.freq, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("freq() for %s = %s, want %s", tt.freq, got, tt.want)
		}
	}
}
