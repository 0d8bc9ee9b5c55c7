package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// loadAudioFile decodes a wav or mp3 file to mono samples in [-1,1],
// returning the samples and the file's native sample rate.
func loadAudioFile(path string) ([]Smp, int, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return loadWav(path)
	case ".mp3":
		return loadMp3(path)
	default:
		return nil, 0, fmt.Errorf("unsupported input format: %s", path)
	}
}

func loadWav(path string) ([]Smp, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	if buf == nil || buf.NumFrames() == 0 {
		return nil, 0, fmt.Errorf("%s: empty wav", path)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(dec.BitDepth)
	}
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := 1.0 / Smp(int(1)<<(bitDepth-1))

	nch := buf.Format.NumChannels
	out := make([]Smp, buf.NumFrames())
	for i := range out {
		var acc Smp
		for c := 0; c < nch; c++ {
			acc += Smp(buf.Data[i*nch+c])
		}
		out[i] = acc / Smp(nch) * scale
	}
	return out, buf.Format.SampleRate, nil
}

func loadMp3(path string) ([]Smp, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, err
	}

	// go-mp3 always emits 16-bit little-endian stereo frames.
	nframes := len(data) / 4
	out := make([]Smp, nframes)
	for i := 0; i < nframes; i++ {
		l := int16(binary.LittleEndian.Uint16(data[i*4:]))
		r := int16(binary.LittleEndian.Uint16(data[i*4+2:]))
		out[i] = (Smp(l) + Smp(r)) / 2 / 32768
	}
	return out, dec.SampleRate(), nil
}

// writeWav writes mono float samples in [-1,1] as 16-bit PCM.
func writeWav(path string, samples []Smp, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(clamp(s, -1, 1) * 32767)
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
