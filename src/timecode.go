package ltcgen

/*------------------------------------------------------------------
 *
 * Purpose:	Timecode counter with SMPTE drop-frame arithmetic.
 *
 * Description:	Holds hours, minutes, seconds and frames, and advances
 *		one frame at a time.  Drop-frame counting never skips
 *		real frames; it skips the timecode values 00 and 01 of
 *		the first second of each minute, except every tenth
 *		minute, so that displayed time tracks wall-clock time
 *		at the 30000/1001 rates.
 *
 *		The skip check runs after the rollover cascade.  The
 *		drop-frame cadence tests depend on this ordering.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"strconv"
	"strings"
)

// Timecode is an (H,M,S,F) counter value.  It is a plain value; the
// generation driver owns the single mutable copy during a run.
type Timecode struct {
	Hour   int
	Minute int
	Second int
	Frame  int
}

// Advance increments the counter by one frame under the given rate,
// wrapping from 23:59:59:(fps-1) back to zero.
func (tc *Timecode) Advance(rate FrameRate) {
	tc.Frame++

	if tc.Frame >= rate.NominalFPS() {
		tc.Frame = 0
		tc.Second++
	}
	if tc.Second >= 60 {
		tc.Second = 0
		tc.Minute++
	}
	if tc.Minute >= 60 {
		tc.Minute = 0
		tc.Hour++
	}
	if tc.Hour >= 24 {
		tc.Hour = 0
	}

	// Drop-frame skip, applied after the cascade.
	if rate.Drop && tc.Second == 0 && tc.Frame <= 1 && tc.Minute%10 != 0 {
		tc.Frame += 2
	}
}

// Rewind returns the timecode the given number of whole seconds
// earlier, wrapping modulo 24 hours.  The frame field is unchanged.
// Used to back the start time up for preroll.
func (tc Timecode) Rewind(seconds int) Timecode {
	var total = tc.Hour*3600 + tc.Minute*60 + tc.Second - seconds

	total %= 86400
	if total < 0 {
		total += 86400
	}

	return Timecode{
		Hour:   total / 3600,
		Minute: total / 60 % 60,
		Second: total % 60,
		Frame:  tc.Frame,
	}
}

// CheckRange reports whether the counter value is valid under the
// given rate, including the drop-frame exclusion of frames 00 and 01
// in the first second of a non-tenth minute.
func (tc Timecode) CheckRange(rate FrameRate) bool {
	if tc.Hour < 0 || tc.Hour > 23 {
		return false
	}
	if tc.Minute < 0 || tc.Minute > 59 {
		return false
	}
	if tc.Second < 0 || tc.Second > 59 {
		return false
	}
	if tc.Frame < 0 || tc.Frame >= rate.NominalFPS() {
		return false
	}
	if rate.Drop && tc.Second == 0 && tc.Frame <= 1 && tc.Minute%10 != 0 {
		return false
	}

	return true
}

func (tc Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", tc.Hour, tc.Minute, tc.Second, tc.Frame)
}

// ParseTimecode parses "HH:MM:SS:FF".  A semicolon is accepted in
// place of any separator, as commonly written for drop-frame times.
// Range checking against a rate is the caller's concern; only the
// shape and the 0-59 / 0-23 clock fields are validated here.
func ParseTimecode(s string) (Timecode, error) {
	var parts = strings.FieldsFunc(s, func(r rune) bool {
		return r == ':' || r == ';'
	})

	if len(parts) != 4 {
		return Timecode{}, fmt.Errorf("timecode %q: want HH:MM:SS:FF", s)
	}

	var fields [4]int
	for i, part := range parts {
		var v, err = strconv.Atoi(part)
		if err != nil {
			return Timecode{}, fmt.Errorf("timecode %q: %w", s, err)
		}
		fields[i] = v
	}

	var tc = Timecode{Hour: fields[0], Minute: fields[1], Second: fields[2], Frame: fields[3]}

	if tc.Hour > 23 || tc.Minute > 59 || tc.Second > 59 || tc.Hour < 0 || tc.Minute < 0 || tc.Second < 0 || tc.Frame < 0 {
		return Timecode{}, fmt.Errorf("timecode %q out of range", s)
	}

	return tc, nil
}
