package main

import (
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/errors"
)

const wavFormatPCM = 1

// pcmTrack is a decoded file as normalized float32 channels.
type pcmTrack struct {
	sampleRate int
	bitDepth   int
	channels   [][]float32
}

func (t *pcmTrack) frames() int {
	if len(t.channels) == 0 {
		return 0
	}
	return len(t.channels[0])
}

// readWAV decodes an integer PCM file into per-channel samples in [-1, 1].
func readWAV(path string) (*pcmTrack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %v", path)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, errors.Errorf("invalid WAV file %v", path)
	}

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, errors.Errorf("unsupported WAV format %v in %v, want integer PCM", dec.WavAudioFormat, path)
	}

	bitDepth := int(dec.BitDepth)
	maxVal := audio.IntMaxSignedValue(bitDepth)
	if bitDepth == 8 || maxVal == 0 {
		return nil, errors.Errorf("unsupported bit depth %v in %v", bitDepth, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrapf(err, "decode %v", path)
	}

	nch := buf.Format.NumChannels
	if nch <= 0 {
		return nil, errors.Errorf("invalid channel count %v in %v", nch, path)
	}

	return &pcmTrack{
		sampleRate: buf.Format.SampleRate,
		bitDepth:   bitDepth,
		channels:   deinterleave(buf.Data, nch, float64(maxVal)),
	}, nil
}

// writeWAV encodes t as integer PCM with t's format.
func writeWAV(path string, t *pcmTrack) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %v", path)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "close %v", path)
		}
	}()

	nch := len(t.channels)
	enc := wav.NewEncoder(f, t.sampleRate, t.bitDepth, nch, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: nch, SampleRate: t.sampleRate},
		Data:           interleave(t.channels, float64(audio.IntMaxSignedValue(t.bitDepth))),
		SourceBitDepth: t.bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrapf(err, "encode %v", path)
	}

	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "finish %v", path)
	}

	return nil
}

// deinterleave converts interleaved integer samples to normalized channels.
func deinterleave(data []int, nch int, maxVal float64) [][]float32 {
	frames := len(data) / nch
	out := make([][]float32, nch)
	for ch := range out {
		out[ch] = make([]float32, frames)
	}

	for i := range frames {
		for ch := range nch {
			out[ch][i] = float32(float64(data[i*nch+ch]) / maxVal)
		}
	}

	return out
}

// interleave converts channels back to integers, clamping to [-1, 1].
func interleave(channels [][]float32, maxVal float64) []int {
	if len(channels) == 0 {
		return nil
	}

	nch := len(channels)
	frames := len(channels[0])
	out := make([]int, frames*nch)

	for i := range frames {
		for ch := range nch {
			s := float64(channels[ch][i])
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			out[i*nch+ch] = int(math.Round(s * maxVal))
		}
	}

	return out
}
