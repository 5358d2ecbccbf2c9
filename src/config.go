package ltcgen

/*------------------------------------------------------------------
 *
 * Purpose:	Generation configuration: validation, option
 *		enumeration, and YAML job files.
 *
 * Description:	A Config fully describes one generation run.  Hosts
 *		either build one programmatically, or describe the run
 *		in a small YAML document:
 *
 *			frame_rate: "29.97df"
 *			sample_rate: 48000
 *			bit_depth: 16
 *			start: "00:58:00:00"
 *			duration_seconds: 120
 *			preroll: true
 *			output: slate.wav
 *
 *		All validation happens here, before any samples are
 *		synthesized.
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/lestrrat-go/strftime"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")
var ErrInvalidDuration = errors.New("invalid duration")

// PrerollSeconds is the fixed preroll length: the effective start
// moves this many wall-clock seconds earlier and the duration grows
// by the same amount.
const PrerollSeconds = 10

// Sample counts are kept within int32, and the data size within what
// the 32 bit RIFF size fields can hold; at 48 kHz that is around 12
// hours of 16 bit or 8 hours of 24 bit audio.
const maxTotalSamples = math.MaxInt32
const maxDataBytes = math.MaxUint32 - (wavHeaderBytes - 8)

type Config struct {
	FrameRate       string
	SampleRate      int
	BitDepth        int
	Start           Timecode
	DurationSeconds float64
	Preroll         bool
	OutputPath      string
}

// SampleRates enumerates the supported output sample rates.
func SampleRates() []int {
	return []int{44100, 48000, 96000, 192000}
}

// BitDepths enumerates the supported PCM bit depths.
func BitDepths() []int {
	return []int{16, 24}
}

// DefaultOutputPath names an output file after the current time,
// e.g. "ltc_20260801_143000.wav".
func DefaultOutputPath() string {
	var name, err = strftime.Format("ltc_%Y%m%d_%H%M%S.wav", time.Now())
	if err != nil {
		return "ltc.wav"
	}

	return name
}

// Validate checks every field against the supported sets and returns
// the resolved frame rate.  Nothing is synthesized for an invalid
// configuration.
func (c Config) Validate() (FrameRate, error) {
	var rate, err = FrameRateByLabel(c.FrameRate)
	if err != nil {
		return FrameRate{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	var rateOK = false
	for _, r := range SampleRates() {
		if c.SampleRate == r {
			rateOK = true
		}
	}
	if !rateOK {
		return FrameRate{}, fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}

	if c.BitDepth != 16 && c.BitDepth != 24 {
		return FrameRate{}, fmt.Errorf("%w: bit depth %d", ErrInvalidConfig, c.BitDepth)
	}

	if !c.Start.CheckRange(rate) {
		return FrameRate{}, fmt.Errorf("%w: start %s at %s", ErrInvalidConfig, c.Start, rate)
	}

	if math.IsNaN(c.DurationSeconds) || math.IsInf(c.DurationSeconds, 0) || c.DurationSeconds <= 0 {
		return FrameRate{}, fmt.Errorf("%w: %v seconds", ErrInvalidDuration, c.DurationSeconds)
	}

	var effective = c.DurationSeconds
	if c.Preroll {
		effective += PrerollSeconds
	}
	var samples = effective * float64(c.SampleRate)
	if samples > maxTotalSamples || samples*float64(c.BitDepth/8) > maxDataBytes {
		return FrameRate{}, fmt.Errorf("%w: %v seconds at %d Hz overflows the sample counter",
			ErrInvalidDuration, c.DurationSeconds, c.SampleRate)
	}

	return rate, nil
}

type jobFile struct {
	FrameRate       string  `yaml:"frame_rate"`
	SampleRate      int     `yaml:"sample_rate"`
	BitDepth        int     `yaml:"bit_depth"`
	Start           string  `yaml:"start"`
	DurationSeconds float64 `yaml:"duration_seconds"`
	Preroll         bool    `yaml:"preroll"`
	Output          string  `yaml:"output"`
}

// LoadConfig reads a YAML job file.  Omitted fields fall back to the
// same defaults the command line uses: 30 NDF, 48 kHz, 16 bit,
// start at zero, 60 seconds.
func LoadConfig(path string) (Config, error) {
	var data, err = os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var job = jobFile{
		FrameRate:       "30",
		SampleRate:      48000,
		BitDepth:        16,
		DurationSeconds: 60,
	}
	if err := yaml.Unmarshal(data, &job); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %s", ErrInvalidConfig, path, err)
	}

	var start Timecode
	if job.Start != "" {
		start, err = ParseTimecode(job.Start)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %s", ErrInvalidConfig, path, err)
		}
	}

	return Config{
		FrameRate:       job.FrameRate,
		SampleRate:      job.SampleRate,
		BitDepth:        job.BitDepth,
		Start:           start,
		DurationSeconds: job.DurationSeconds,
		Preroll:         job.Preroll,
		OutputPath:      job.Output,
	}, nil
}
