package main

import (
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/cwbudde/algo-wah/dsp/effects/wah"
)

// Preset file keys.
const (
	keyGain           = "WAH_GAIN"
	keyAttackRate     = "WAH_ATTACK_RATE"
	keyDecayRate      = "WAH_DECAY_RATE"
	keyOnsetThreshold = "WAH_ONSET_THRESHOLD"
	keyResetThreshold = "WAH_RESET_THRESHOLD"
	keyUseOnset       = "WAH_USE_ONSET"
	keyLFOFrequency   = "WAH_LFO_FREQ"
	keyLFOIntensity   = "WAH_LFO_INTENSITY"
	keyLowCutoff      = "WAH_LOW_CUTOFF"
	keyHighCutoff     = "WAH_HIGH_CUTOFF"
)

// loadParams reads a dotenv preset. An empty path yields the defaults.
func loadParams(path string) (wah.Params, error) {
	if path == "" {
		return wah.DefaultParams(), nil
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return wah.Params{}, errors.Wrapf(err, "read preset %v", path)
	}

	p, err := paramsFromEnv(env)
	if err != nil {
		return wah.Params{}, errors.Wrapf(err, "preset %v", path)
	}

	return p, nil
}

// paramsFromEnv overlays the keys present in env onto wah.DefaultParams.
func paramsFromEnv(env map[string]string) (wah.Params, error) {
	p := wah.DefaultParams()

	float32Keys := []struct {
		key string
		dst *float32
	}{
		{keyGain, &p.Gain},
		{keyAttackRate, &p.AttackRate},
		{keyDecayRate, &p.DecayRate},
		{keyOnsetThreshold, &p.OnsetThreshold},
		{keyResetThreshold, &p.ResetThreshold},
		{keyLFOFrequency, &p.LFOFrequency},
		{keyLFOIntensity, &p.LFOIntensity},
	}
	for _, k := range float32Keys {
		v, ok := env[k.key]
		if !ok {
			continue
		}

		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return p, errors.Wrapf(err, "parse %v=%v", k.key, v)
		}
		*k.dst = float32(f)
	}

	float64Keys := []struct {
		key string
		dst *float64
	}{
		{keyLowCutoff, &p.BaseLowCutoff},
		{keyHighCutoff, &p.BaseHighCutoff},
	}
	for _, k := range float64Keys {
		v, ok := env[k.key]
		if !ok {
			continue
		}

		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, errors.Wrapf(err, "parse %v=%v", k.key, v)
		}
		*k.dst = f
	}

	if v, ok := env[keyUseOnset]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return p, errors.Wrapf(err, "parse %v=%v", keyUseOnset, v)
		}
		p.UseOnsetDetection = b
	}

	return p, nil
}
