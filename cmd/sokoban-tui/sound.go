package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	bumpFreq   = 220
	bumpLength = 60 * time.Millisecond
)

// bumpSound plays a short low tone. A nil *bumpSound is silent.
type bumpSound struct {
	rate beep.SampleRate
}

func newBumpSound() (*bumpSound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &bumpSound{rate: sampleRate}, nil
}

func (s *bumpSound) Play() {
	if s == nil {
		return
	}
	tone, err := generators.SineTone(s.rate, bumpFreq)
	if err != nil {
		return
	}
	quiet := &effects.Volume{Streamer: tone, Base: 2, Volume: -2}
	speaker.Play(beep.Take(s.rate.N(bumpLength), quiet))
}

func (s *bumpSound) Close() {
	if s == nil {
		return
	}
	speaker.Close()
}
