package ltcgen

/*------------------------------------------------------------------
 *
 * Purpose:	Quantize float samples and write a RIFF/WAVE file.
 *
 * Description:	Canonical 44 byte header, PCM format 1, one channel,
 *		all multi-byte integers little endian.  The sample
 *		count is known up front so the header is written with
 *		final sizes; no seek-back fixup is needed.
 *
 *		24 bit packing: quantize to a signed 32 bit integer
 *		first, then emit its low three little-endian bytes.
 *		The sign bit of the 24 bit field lands in the third
 *		byte, which is what makes this correct for negative
 *		values.  Never truncate the float and slice bytes.
 *
 *------------------------------------------------------------------*/

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

const wavHeaderBytes = 44

// quantize rounds a [-1,+1] float to an integer sample and clamps to
// the signed range for the scale.
func quantize(x float32, scale int32) int32 {
	var v = math.Round(float64(x) * float64(scale))

	if v > float64(scale) {
		return scale
	}
	if v < float64(-scale-1) {
		return -scale - 1
	}

	return int32(v)
}

func writeWAV(w *bufio.Writer, samples []float32, sampleRate int, bitDepth int) error {
	var bytesPerSample = bitDepth / 8
	var dataBytes = len(samples) * bytesPerSample

	var header [wavHeaderBytes]byte
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataBytes))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], 1) // mono
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*bytesPerSample))
	binary.LittleEndian.PutUint16(header[32:34], uint16(bytesPerSample))
	binary.LittleEndian.PutUint16(header[34:36], uint16(bitDepth))
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataBytes))

	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	switch bitDepth {
	case 16:
		for _, x := range samples {
			var v = quantize(x, 32767)
			if err := w.WriteByte(byte(v)); err != nil {
				return err
			}
			if err := w.WriteByte(byte(v >> 8)); err != nil {
				return err
			}
		}
	case 24:
		for _, x := range samples {
			var v = quantize(x, 8388607)
			if err := w.WriteByte(byte(v)); err != nil {
				return err
			}
			if err := w.WriteByte(byte(v >> 8)); err != nil {
				return err
			}
			if err := w.WriteByte(byte(v >> 16)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: bit depth %d", ErrInvalidConfig, bitDepth)
	}

	return w.Flush()
}

// WriteWAVFile quantizes the sample buffer and writes it to path.
// The file is written to a temporary name in the same directory and
// renamed into place, so a failed run leaves no partial file.
func WriteWAVFile(path string, samples []float32, sampleRate int, bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("%w: bit depth %d", ErrInvalidConfig, bitDepth)
	}

	var dir = filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}

	if err := writeWAV(bufio.NewWriter(tmp), samples, sampleRate, bitDepth); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return nil
}
