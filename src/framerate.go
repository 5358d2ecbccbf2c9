package ltcgen

/*------------------------------------------------------------------
 *
 * Purpose:	Frame rate descriptors for SMPTE timecode generation.
 *
 * Description:	A frame rate is an exact rational (numerator /
 *		denominator) plus a drop-frame flag.  Only the ten
 *		rates in the table below are recognized; drop-frame
 *		counting exists solely for the two NTSC-derived rates.
 *
 *		The nominal integer rate (24, 25, 30, 50 or 60) drives
 *		frame-field rollover and BCD encoding.  The exact
 *		rational drives the audio sample count per frame.
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
)

var ErrInvalidRate = errors.New("invalid frame rate")

// FrameRate is an immutable frame rate descriptor.  The zero value is
// not a valid rate; obtain one from NewFrameRate or FrameRateByLabel.
type FrameRate struct {
	Num  int
	Den  int
	Drop bool
}

// RateOption pairs a canonical label with its display string, for
// hosts that enumerate the supported rates.
type RateOption struct {
	Label   string
	Display string
}

type rateEntry struct {
	label   string
	display string
	num     int
	den     int
	drop    bool
}

// The ten recognized rates.  Order matters only for display.
var rateTable = []rateEntry{
	{"23.976", "23.976 NDF", 24000, 1001, false},
	{"24", "24 NDF", 24, 1, false},
	{"25", "25 NDF", 25, 1, false},
	{"29.97", "29.97 NDF", 30000, 1001, false},
	{"30", "30 NDF", 30, 1, false},
	{"50", "50 NDF", 50, 1, false},
	{"59.94", "59.94 NDF", 60000, 1001, false},
	{"60", "60 NDF", 60, 1, false},
	{"29.97df", "29.97 DF", 30000, 1001, true},
	{"59.94df", "59.94 DF", 60000, 1001, true},
}

// NewFrameRate validates a (numerator, denominator, drop) triple
// against the table of recognized rates.
func NewFrameRate(num int, den int, drop bool) (FrameRate, error) {
	for _, e := range rateTable {
		if e.num == num && e.den == den && e.drop == drop {
			return FrameRate{Num: num, Den: den, Drop: drop}, nil
		}
	}

	return FrameRate{}, fmt.Errorf("%w: %d/%d drop=%v", ErrInvalidRate, num, den, drop)
}

// FrameRateByLabel looks up a rate by its canonical label ("29.97df")
// or its display string ("29.97 DF").
func FrameRateByLabel(label string) (FrameRate, error) {
	for _, e := range rateTable {
		if e.label == label || e.display == label {
			return FrameRate{Num: e.num, Den: e.den, Drop: e.drop}, nil
		}
	}

	return FrameRate{}, fmt.Errorf("%w: %q", ErrInvalidRate, label)
}

// FrameRateLabels enumerates the supported rates for a host UI.
func FrameRateLabels() []RateOption {
	var options = make([]RateOption, 0, len(rateTable))
	for _, e := range rateTable {
		options = append(options, RateOption{Label: e.label, Display: e.display})
	}

	return options
}

// NominalFPS is the integer frame count used for frame-field rollover
// and BCD encoding: ceil(num/den), e.g. 24 for 24000/1001.
func (r FrameRate) NominalFPS() int {
	return (r.Num + r.Den - 1) / r.Den
}

// SamplesPerFrame is the whole-sample budget for one frame of audio:
// floor(sampleRate / (num/den)).
func (r FrameRate) SamplesPerFrame(sampleRate int) int {
	return sampleRate * r.Den / r.Num
}

func (r FrameRate) String() string {
	for _, e := range rateTable {
		if e.num == r.Num && e.den == r.Den && e.drop == r.Drop {
			return e.display
		}
	}

	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
