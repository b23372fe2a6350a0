// Command wahrender applies the swept band-pass wah effect to a WAV file.
//
// Usage:
//
//	wahrender [flags] input.wav output.wav
//	wahrender -response [-rate 44100] [-taps 101] [-params preset.env]
//
// Parameters come from a dotenv preset (WAH_GAIN, WAH_LFO_FREQ, ...); keys
// that are absent keep their defaults. Audio is processed in blocks of
// -block frames, each block re-modulating the pass-band.
//
// Examples:
//
//	wahrender guitar.wav guitar-wah.wav
//	wahrender -params slow.env -block 256 in.wav out.wav
//	wahrender -response -rate 48000
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/cwbudde/algo-wah/dsp/filter/design/sinc"
)

const (
	defaultBlockSize    = 64
	defaultNumTaps      = 101
	defaultResponseRate = 44100
	responseFFTSize     = 4096
	minRequiredArgs     = 2
)

func main() {
	ctx := logger.WithContext(context.Background())

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.Ef(ctx, "wahrender err %+v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("wahrender", flag.ContinueOnError)
	paramsFile := fs.String("params", "", "dotenv preset with WAH_* parameters")
	blockSize := fs.Int("block", defaultBlockSize, "frames per processing block")
	numTaps := fs.Int("taps", defaultNumTaps, "FIR length (odd, >= 3)")
	verbose := fs.Bool("v", false, "verbose output")
	response := fs.Bool("response", false, "print the magnitude response of the base band and exit")
	rate := fs.Int("rate", defaultResponseRate, "sample rate used by -response")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: wahrender [flags] input.wav output.wav\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return errors.Wrapf(err, "parse flags")
	}

	params, err := loadParams(*paramsFile)
	if err != nil {
		return err
	}

	if *response {
		return printResponse(stdout, *numTaps, params.BaseLowCutoff, params.BaseHighCutoff, float64(*rate))
	}

	if fs.NArg() < minRequiredArgs {
		fs.Usage()
		return errors.New("input and output paths are required")
	}

	if *blockSize <= 0 {
		return errors.Errorf("block size must be > 0: %v", *blockSize)
	}

	runID := uuid.NewString()
	inputPath, outputPath := fs.Arg(0), fs.Arg(1)

	if *verbose {
		logger.Tf(ctx, "render %v: input=%v, output=%v, block=%v, taps=%v, params=%+v",
			runID, inputPath, outputPath, *blockSize, *numTaps, params)
	}

	start := time.Now()

	track, err := readWAV(inputPath)
	if err != nil {
		return errors.Wrapf(err, "render %v", runID)
	}

	if *verbose {
		logger.Tf(ctx, "render %v: %v Hz, %v channels, %v-bit, %v frames",
			runID, track.sampleRate, len(track.channels), track.bitDepth, track.frames())
	}

	stats, err := render(ctx, track, renderConfig{
		blockSize: *blockSize,
		numTaps:   *numTaps,
		params:    params,
	})
	if err != nil {
		return errors.Wrapf(err, "render %v", runID)
	}

	if err := writeWAV(outputPath, track); err != nil {
		return errors.Wrapf(err, "render %v", runID)
	}

	elapsed := time.Since(start)

	fmt.Fprintf(stdout, "Rendered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Fprintf(stdout, "  %d frames in %d blocks, %d with an invalid band\n", stats.frames, stats.blocks, stats.rangeErrors)
	fmt.Fprintf(stdout, "  peak %.2f dBFS -> %.2f dBFS\n", dBFS(stats.peakIn), dBFS(stats.peakOut))

	logger.Tf(ctx, "render %v ok, cost=%v", runID, elapsed)

	return nil
}

// printResponse writes a table of the base band magnitude response.
func printResponse(out io.Writer, numTaps int, low, high, sampleRate float64) error {
	taps, err := sinc.Bandpass(numTaps, low, high, sampleRate)
	if err != nil {
		return errors.Wrapf(err, "design %v-%v Hz", low, high)
	}

	mag, err := sinc.MagnitudeResponse(taps, responseFFTSize)
	if err != nil {
		return errors.Wrapf(err, "response")
	}

	fmt.Fprintf(out, "Band-pass %.0f-%.0f Hz, %d taps, %.0f Hz\n\n", low, high, numTaps, sampleRate)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Hz\tdB\t")

	for _, hz := range []float64{0, low / 2, low, (low + high) / 2, high, high * 2, sampleRate / 4, sampleRate / 2} {
		if hz > sampleRate/2 {
			continue
		}
		bin := int(hz/sampleRate*responseFFTSize + 0.5)
		fmt.Fprintf(tw, "%.0f\t%.2f\t\n", hz, dBFS(mag[bin]))
	}

	return tw.Flush()
}
