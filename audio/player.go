package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player queues streamers for output
type Player interface {
	Play(s beep.Streamer)
	Close()
}

// speakerPlayer is the process-wide beep speaker
type speakerPlayer struct{}

// openSpeaker initializes the beep speaker; fails when no audio backend exists
func openSpeaker(cfg Config) (Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Duration(cfg.BufferMillis)*time.Millisecond)); err != nil {
		return nil, err
	}
	return speakerPlayer{}, nil
}

// Play mixes s into the output without blocking
func (speakerPlayer) Play(s beep.Streamer) {
	speaker.Play(s)
}

// Close releases the output device
func (speakerPlayer) Close() {
	speaker.Close()
}
