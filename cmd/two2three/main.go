// Command two2three upmixes a stereo WAV file into a three-channel WAV
// file: left minus center, right minus center, and an extracted center
// channel.
//
// Usage:
//
//	two2three [flags] <input.wav> <output.wav>
//
// Examples:
//
//	two2three mix.wav mix-3ch.wav
//	two2three -window 8192 -overlap 256 mix.wav mix-3ch.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/szabadka/tabuli/audio/wavio"
	"github.com/szabadka/tabuli/dsp/upmix"
	"github.com/szabadka/tabuli/internal/logging"
)

const outputBitDepth = 24

func main() {
	log := logging.New()
	if err := run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(log *logrus.Logger) error {
	windowSize := flag.Int("window", 4096, "analysis window size in samples")
	overlap := flag.Int("overlap", 128, "number of overlapping frames per window")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: two2three [flags] <input.wav> <output.wav>\n\n")
		fmt.Fprintf(os.Stderr, "Extracts a center channel from a stereo WAV file and writes a\n")
		fmt.Fprintf(os.Stderr, "three-channel WAV file (L-C, R-C, C) at the input's sample rate.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		return errors.New("expected exactly two arguments: <input.wav> <output.wav>")
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	var written int64
	extractor, err := upmix.New(
		upmix.WithWindowSize(*windowSize),
		upmix.WithOverlap(*overlap),
		upmix.WithStartFunc(func() {
			log.Debugf("processing %s: window %d, overlap %d, hop %d",
				inPath, *windowSize, *overlap, *windowSize / *overlap)
		}),
		upmix.WithProgressFunc(func(w int64) {
			written = w
		}),
	)
	if err != nil {
		return err
	}

	in, err := wavio.OpenReader(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	if in.Channels() != 2 {
		return fmt.Errorf("input must have exactly 2 channels: %s has %d", inPath, in.Channels())
	}

	out, err := wavio.CreateWriter(outPath, in.SampleRate(), 3, outputBitDepth)
	if err != nil {
		return err
	}

	if err := extractor.Process(in, out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	log.Infof("wrote %d frames to %s", written, outPath)

	return nil
}
