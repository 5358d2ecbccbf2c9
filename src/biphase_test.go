package ltcgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// countTransitions counts sign changes across the sample sequence,
// including the change from the level preceding the first sample.
func countTransitions(prev float32, samples []float32) int {
	var n = 0
	for _, s := range samples {
		if s != prev {
			n++
		}
		prev = s
	}

	return n
}

func TestModulatorCellTooSmallPanics(t *testing.T) {
	assert.Panics(t, func() { NewModulator(100) }) // cell would be 1
	assert.NotPanics(t, func() { NewModulator(160) })
}

func TestModulatorMidCellClock(t *testing.T) {
	// Every one of the 80 cells carries its mid-cell transition,
	// whatever the data.
	rapid.Check(t, func(t *rapid.T) {
		var rate = mustRate(t, rapid.SampledFrom(allRateLabels).Draw(t, "rate"))
		var tc = drawTimecode(t, rate)
		var samplesPerFrame = rate.SamplesPerFrame(48000)
		var cell = samplesPerFrame / 80
		var half = cell / 2

		var m = NewModulator(samplesPerFrame)
		var frame = m.Frame(AssembleCodeword(tc, rate))

		for bit := 0; bit < 80; bit++ {
			assert.NotEqual(t,
				frame[bit*cell+half-1], frame[bit*cell+half],
				"missing mid-cell transition in cell %d", bit)
		}
	})
}

func TestModulatorBoundaryTransitions(t *testing.T) {
	// A cell boundary carries a transition exactly when the incoming
	// data bit is one.
	rapid.Check(t, func(t *rapid.T) {
		var rate = mustRate(t, rapid.SampledFrom(allRateLabels).Draw(t, "rate"))
		var tc = drawTimecode(t, rate)
		var samplesPerFrame = rate.SamplesPerFrame(48000)
		var cell = samplesPerFrame / 80

		var m = NewModulator(samplesPerFrame)
		var w = AssembleCodeword(tc, rate)
		var frame = m.Frame(w)

		for bit := 1; bit < 80; bit++ {
			var changed = frame[bit*cell-1] != frame[bit*cell]
			assert.Equal(t, w.Bit(bit) == 1, changed, "cell %d boundary", bit)
		}
	})
}

func TestModulatorTransitionCount(t *testing.T) {
	// 80 mid-cell clock ticks plus one boundary transition per one
	// bit, counting from the idle +1 level before the first sample.
	var rate, err = FrameRateByLabel("25")
	require.NoError(t, err)

	var w = AssembleCodeword(Timecode{Hour: 10, Minute: 30, Second: 15}, rate)
	var samplesPerFrame = rate.SamplesPerFrame(48000)
	require.Equal(t, 1920, samplesPerFrame)

	var m = NewModulator(samplesPerFrame)
	var frame = m.Frame(w)

	assert.Equal(t, 80+w.OnesCount(), countTransitions(1.0, frame))
}

func TestModulatorPhaseCoherence(t *testing.T) {
	// The first sample of frame N+1 continues from the last level of
	// frame N: inverted when the new word opens with a one bit,
	// unchanged otherwise.  No reset between frames.
	rapid.Check(t, func(t *rapid.T) {
		var rate = mustRate(t, rapid.SampledFrom(allRateLabels).Draw(t, "rate"))
		var tc = drawTimecode(t, rate)
		var samplesPerFrame = rate.SamplesPerFrame(48000)

		var m = NewModulator(samplesPerFrame)

		var first = make([]float32, samplesPerFrame)
		copy(first, m.Frame(AssembleCodeword(tc, rate)))

		tc.Advance(rate)
		var w = AssembleCodeword(tc, rate)
		var second = m.Frame(w)

		var last = first[samplesPerFrame-1]
		if w.Bit(0) == 1 {
			assert.Equal(t, -last, second[0])
		} else {
			assert.Equal(t, last, second[0])
		}
	})
}

func TestModulatorDCBalance(t *testing.T) {
	// With an even cell the two half-cells are the same length and
	// the signed levels cancel exactly; only the trailing remainder
	// samples can leave an imbalance.  An odd cell (e.g. 24 fps at
	// 48 kHz, 25 samples per cell) has halves one sample apart, a net
	// one-sample imbalance per cell by construction, so the even-cell
	// combinations are checked.
	var cases = []struct {
		label      string
		sampleRate int
	}{
		{"25", 48000},
		{"29.97", 48000},
		{"29.97df", 48000},
		{"30", 48000},
		{"50", 48000},
		{"59.94", 48000},
		{"59.94df", 48000},
		{"60", 48000},
		{"23.976", 96000},
		{"24", 96000},
	}

	rapid.Check(t, func(t *rapid.T) {
		var c = rapid.SampledFrom(cases).Draw(t, "case")
		var rate = mustRate(t, c.label)
		var tc = drawTimecode(t, rate)
		var samplesPerFrame = rate.SamplesPerFrame(c.sampleRate)
		var remainder = samplesPerFrame % 80

		var m = NewModulator(samplesPerFrame)
		var frame = m.Frame(AssembleCodeword(tc, rate))

		var sum = 0
		for _, s := range frame {
			if s > 0 {
				sum++
			} else {
				sum--
			}
		}

		assert.LessOrEqual(t, sum, remainder)
		assert.GreaterOrEqual(t, sum, -remainder)
	})
}

func TestModulatorFullScale(t *testing.T) {
	var rate, err = FrameRateByLabel("30")
	require.NoError(t, err)

	var m = NewModulator(rate.SamplesPerFrame(48000))
	for _, s := range m.Frame(AssembleCodeword(Timecode{}, rate)) {
		assert.True(t, s == 1.0 || s == -1.0, "sample %v not full scale", s)
	}
}
