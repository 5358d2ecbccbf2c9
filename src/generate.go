package ltcgen

/*------------------------------------------------------------------
 *
 * Purpose:	Drive a complete generation run: timecode counter to
 *		codewords to waveform to WAVE file.
 *
 * Description:	Single threaded, single pass.  One codeword is
 *		synthesized per frame; the final frame is truncated to
 *		the buffer end when the duration is not a whole number
 *		of frames.  Decoders resynchronize on the next sync
 *		word, so a cut mid-codeword is harmless.
 *
 *		Two runs with the same configuration produce identical
 *		files; no state survives a call.
 *
 *------------------------------------------------------------------*/

import "math"

// Generate validates the configuration, synthesizes the audio and
// writes the WAVE file.  It returns the path actually written, which
// is DefaultOutputPath() when the configuration leaves OutputPath
// empty.  On error no file is left behind.
func Generate(config Config) (string, error) {
	var rate, err = config.Validate()
	if err != nil {
		return "", err
	}

	var start = config.Start
	var duration = config.DurationSeconds
	if config.Preroll {
		start = start.Rewind(PrerollSeconds)
		duration += PrerollSeconds
	}

	var total = int(math.Round(duration * float64(config.SampleRate)))
	var samplesPerFrame = rate.SamplesPerFrame(config.SampleRate)

	var buffer = make([]float32, total)
	var modulator = NewModulator(samplesPerFrame)
	var tc = start

	for pos := 0; pos < total; pos += samplesPerFrame {
		var frame = modulator.Frame(AssembleCodeword(tc, rate))
		copy(buffer[pos:], frame)
		tc.Advance(rate)
	}

	var path = config.OutputPath
	if path == "" {
		path = DefaultOutputPath()
	}

	if err := WriteWAVFile(path, buffer, config.SampleRate, config.BitDepth); err != nil {
		return "", err
	}

	return path, nil
}
