package main

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
)

// playSamples plays mono float samples in [-1,1] through the default
// audio device and blocks until playback finishes.
func playSamples(samples []Smp, sampleRate int) error {
	ctx, readyChan, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return err
	}
	<-readyChan

	pcm := make([]byte, len(samples)*4)
	for i, s := range samples {
		bits := math.Float32bits(float32(clamp(s, -1, 1)))
		binary.LittleEndian.PutUint32(pcm[i*4:], bits)
	}

	player := ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}
