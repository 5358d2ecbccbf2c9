// Generate a SMPTE 12M linear timecode audio file.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	ltcgen "github.com/doismellburning/ltcgen/src"
)

func main() {
	var frameRate = pflag.StringP("frame-rate", "F", "30", "Frame rate label.  See --list-rates.")
	var sampleRate = pflag.IntP("sample-rate", "r", 48000, "Audio sample rate.")
	var bitDepth = pflag.IntP("bit-depth", "b", 16, "PCM bit depth, 16 or 24.")
	var start = pflag.StringP("start", "t", "00:00:00:00", "Start timecode, HH:MM:SS:FF.")
	var duration = pflag.Float64P("duration", "d", 60, "Duration in seconds.")
	var preroll = pflag.BoolP("preroll", "P", false, "Prepend a 10 second preroll, starting the timecode 10 seconds earlier.")
	var output = pflag.StringP("output", "o", "", "Output .wav file.  Defaults to a timestamped name.")
	var configFile = pflag.StringP("config", "c", "", "Read the run description from a YAML job file.  Flags given as well take precedence.")
	var listRates = pflag.Bool("list-rates", false, "List supported frame rates, sample rates and bit depths.")
	var verbose = pflag.BoolP("verbose", "v", false, "Debug logging.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Generate a SMPTE LTC audio file.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Example:  %s -F 29.97df -t 00:58:00:00 -d 3600 -o slate.wav\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "    One hour of drop-frame timecode starting at 00:58:00;00.\n")
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(1)
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *listRates {
		fmt.Printf("Frame rates:\n")
		for _, option := range ltcgen.FrameRateLabels() {
			fmt.Printf("    %-8s  %s\n", option.Label, option.Display)
		}
		fmt.Printf("Sample rates: ")
		for _, r := range ltcgen.SampleRates() {
			fmt.Printf(" %d", r)
		}
		fmt.Printf("\nBit depths:   ")
		for _, b := range ltcgen.BitDepths() {
			fmt.Printf(" %d", b)
		}
		fmt.Printf("\n")
		return
	}

	var config = ltcgen.Config{
		FrameRate:       *frameRate,
		SampleRate:      *sampleRate,
		BitDepth:        *bitDepth,
		DurationSeconds: *duration,
		Preroll:         *preroll,
		OutputPath:      *output,
	}

	if *configFile != "" {
		var loaded, err = ltcgen.LoadConfig(*configFile)
		if err != nil {
			log.Fatal("Couldn't read job file", "path", *configFile, "error", err)
		}
		config = loaded

		// Flags set explicitly on the command line win over the file.
		pflag.Visit(func(f *pflag.Flag) {
			switch f.Name {
			case "frame-rate":
				config.FrameRate = *frameRate
			case "sample-rate":
				config.SampleRate = *sampleRate
			case "bit-depth":
				config.BitDepth = *bitDepth
			case "duration":
				config.DurationSeconds = *duration
			case "preroll":
				config.Preroll = *preroll
			case "output":
				config.OutputPath = *output
			}
		})
	}

	if *configFile == "" || isFlagSet("start") {
		var tc, err = ltcgen.ParseTimecode(*start)
		if err != nil {
			log.Fatal("Bad start timecode", "error", err)
		}
		config.Start = tc
	}

	log.Debug("Generating",
		"rate", config.FrameRate,
		"sample_rate", config.SampleRate,
		"bit_depth", config.BitDepth,
		"start", config.Start,
		"duration", config.DurationSeconds,
		"preroll", config.Preroll)

	var path, err = ltcgen.Generate(config)
	if err != nil {
		log.Fatal("Generation failed", "error", err)
	}

	log.Info("Wrote timecode audio", "path", path)
}

func isFlagSet(name string) bool {
	var set = false
	pflag.Visit(func(f *pflag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}
