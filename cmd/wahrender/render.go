package main

import (
	"context"
	stderrors "errors"
	"math"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-wah/dsp/core"
	"github.com/cwbudde/algo-wah/dsp/effects/wah"
	"github.com/cwbudde/algo-wah/dsp/filter/design/sinc"
)

type renderConfig struct {
	blockSize int
	numTaps   int
	params    wah.Params
}

type renderStats struct {
	frames      int
	blocks      int
	rangeErrors int
	peakIn      float64
	peakOut     float64
}

// render runs the effect over t in place, one block of cfg.blockSize frames
// at a time. Blocks whose modulated band is invalid are counted and keep
// the previous filter.
func render(ctx context.Context, t *pcmTrack, cfg renderConfig) (*renderStats, error) {
	nch := len(t.channels)

	w, err := wah.New(float64(t.sampleRate),
		wah.WithChannels(nch),
		wah.WithMaxBlockSize(cfg.blockSize),
		wah.WithNumTaps(cfg.numTaps),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "create effect")
	}

	if err := w.SetParams(cfg.params); err != nil {
		if !stderrors.Is(err, core.ErrParamClamped) {
			return nil, errors.Wrapf(err, "set params")
		}
		logger.Wf(ctx, "params clamped: %v", err)
	}

	stats := &renderStats{frames: t.frames(), peakIn: peak(t.channels)}

	block := make([][]float32, nch)
	for start := 0; start < stats.frames; start += cfg.blockSize {
		end := min(start+cfg.blockSize, stats.frames)
		for ch := range block {
			block[ch] = t.channels[ch][start:end]
		}

		err := w.ProcessBlock(block)
		stats.blocks++

		if stderrors.Is(err, sinc.ErrInvalidFilterRange) {
			if stats.rangeErrors == 0 {
				logger.Wf(ctx, "block %v at frame %v: %v", stats.blocks, start, err)
			}
			stats.rangeErrors++
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "process block at frame %v", start)
		}
	}

	stats.peakOut = peak(t.channels)

	return stats, nil
}

// peak returns the largest absolute sample over all channels.
func peak(channels [][]float32) float64 {
	var abs []float64
	if len(channels) > 0 {
		abs = make([]float64, 0, len(channels)*len(channels[0]))
	}
	for _, ch := range channels {
		for _, v := range ch {
			abs = append(abs, math.Abs(float64(v)))
		}
	}

	if len(abs) == 0 {
		return 0
	}

	return floats.Max(abs)
}

// dBFS converts a linear peak to decibels relative to full scale.
func dBFS(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
