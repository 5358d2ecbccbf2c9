package ltcgen

/*------------------------------------------------------------------
 *
 * Purpose:	Assemble the 80-bit LTC codeword for one frame.
 *
 * Description:	Every numeric field is BCD with the units nibble
 *		transmitted before the tens nibble, each nibble LSB
 *		first.  Because placement is LSB first, dropping a
 *		value into the word is a plain shift to its starting
 *		bit position.
 *
 *		Layout (bit positions in transmission order):
 *
 *		  0-3	frame units	 4-7	user group 1
 *		  8-9	frame tens	10	drop-frame flag
 *		 11	color-frame	12-15	seconds units
 *		 16-19	user group 2	20-22	seconds tens
 *		 23	binary group	24-27	minutes units
 *		 28-31	user group 3	32-34	minutes tens
 *		 35	binary group	36-39	hours units
 *		 40-43	user group 4	44-45	hours tens
 *		 46	binary group	47	polarity correction
 *		 48-63	sync word	64-79	unused, zero
 *
 *		User bit groups are zero filled.  The polarity
 *		correction bit is left zero rather than computed;
 *		permissive decoders do not require it.
 *
 *------------------------------------------------------------------*/

import "math/bits"

// SyncWord is the fixed pattern decoders align on, written LSB first
// into bits 48-63.  Its 12-bit run of ones cannot occur in the BCD
// fields, which is what makes resynchronization possible.
const SyncWord = 0x3FFD

const codewordBits = 80

// Codeword is one 80-bit LTC word.  Bit i of the transmission order
// is bit i of lo for i < 64, otherwise bit i-64 of hi.
type Codeword struct {
	lo uint64
	hi uint64
}

// AssembleCodeword builds the LTC word for one counter value.
// Every digit is masked to its field width, so no field can bleed
// into a neighbouring flag bit.  The frame tens field is only two
// bits wide: at the 50 and 60 fps rates, frame numbers 40 and above
// lose the high bit of the tens digit on the wire (40-49 carry tens
// digit 0, 50-59 carry 1).  Inputs outside the counter invariants
// otherwise produce garbage, not errors.
func AssembleCodeword(tc Timecode, rate FrameRate) Codeword {
	var lo uint64

	lo |= uint64(tc.Frame%10&0xF) << 0
	lo |= uint64(tc.Frame/10&0x3) << 8
	if rate.Drop {
		lo |= 1 << 10
	}
	lo |= uint64(tc.Second%10&0xF) << 12
	lo |= uint64(tc.Second/10&0x7) << 20
	lo |= uint64(tc.Minute%10&0xF) << 24
	lo |= uint64(tc.Minute/10&0x7) << 32
	lo |= uint64(tc.Hour%10&0xF) << 36
	lo |= uint64(tc.Hour/10&0x3) << 44
	lo |= uint64(SyncWord) << 48

	return Codeword{lo: lo, hi: 0}
}

// Bit returns bit i (0-79) in transmission order.
func (w Codeword) Bit(i int) int {
	if i < 64 {
		return int(w.lo >> i & 1)
	}

	return int(w.hi >> (i - 64) & 1)
}

// OnesCount is the number of one bits in the word.  Each one bit adds
// a waveform transition beyond the 80 mid-cell clock ticks.
func (w Codeword) OnesCount() int {
	return bits.OnesCount64(w.lo) + bits.OnesCount64(w.hi)
}

// Timecode decodes the BCD fields back out of the word.
func (w Codeword) Timecode() Timecode {
	return Timecode{
		Frame:  int(w.lo>>0&0xF) + 10*int(w.lo>>8&0x3),
		Second: int(w.lo>>12&0xF) + 10*int(w.lo>>20&0x7),
		Minute: int(w.lo>>24&0xF) + 10*int(w.lo>>32&0x7),
		Hour:   int(w.lo>>36&0xF) + 10*int(w.lo>>44&0x3),
	}
}

// DropFrame reports the drop-frame flag (bit 10).
func (w Codeword) DropFrame() bool {
	return w.lo>>10&1 == 1
}

// Sync returns bits 48-63 read LSB first.
func (w Codeword) Sync() uint16 {
	return uint16(w.lo >> 48)
}
