package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

// inputScale maps [-1,1] file audio to the engine's nominal ±5 V level
// and back.
const inputScale = 5.0

func defaultStatePath() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".qdelay", "state.json")
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("qdelay", flag.ContinueOnError)
	inPath := fs.String("in", "", "input audio file (wav or mp3); empty uses -gen")
	outPath := fs.String("out", "out.wav", "output wav file")
	play := fs.Bool("play", false, "play the result instead of writing a file")
	sampleRate := fs.Int("rate", 48000, "engine sample rate")
	duration := fs.Float64("dur", 4.0, "generated input duration in seconds")
	gen := fs.String("gen", "impulse", "test signal when no input file: impulse|noise|silence")
	seed := fs.Uint("seed", 0, "rng seed; 0 seeds from OS entropy")
	tail := fs.Float64("tail", 2.0, "extra seconds rendered after the input ends")
	dcblock := fs.Bool("dcblock", false, "apply a DC blocker to the output")
	logLevel := fs.String("log-level", "info", "log level: debug|info|warn|error")

	kTime := fs.Float64("time", 0.25, "delay time knob [0,1]")
	kSpread := fs.Float64("spread", 0.5, "time spread knob [0,1]")
	kShape := fs.Float64("shape", 0.5, "probability shape knob [0,1]")
	kFeedback := fs.Float64("feedback", 0.3, "feedback knob [0,0.95]")
	kMix := fs.Float64("mix", 0.5, "dry/wet mix knob [0,1]")
	kChaos := fs.Float64("chaos", 0.1, "chaos knob [0,1]")
	trigHz := fs.Float64("trigger-hz", 0, "collapse trigger pulse rate in Hz; 0 disables")
	statePath := fs.String("state", defaultStatePath(), "state file; empty disables persistence")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := InitLogger(*logLevel); err != nil {
		return err
	}

	input, err := makeInput(*inPath, *gen, *sampleRate, *duration, uint32(*seed))
	if err != nil {
		return err
	}

	params := Params{
		ParamDelayTime:   Smp(*kTime),
		ParamSpread:      Smp(*kSpread),
		ParamProbability: Smp(*kShape),
		ParamFeedback:    Smp(*kFeedback),
		ParamMix:         Smp(*kMix),
		ParamChaos:       Smp(*kChaos),
	}
	var rng RandStream
	if *seed != 0 {
		rng = newXorshiftRand(uint32(*seed))
	}
	engine := NewEngine(Smp(*sampleRate), params, rng)

	if *statePath != "" {
		if data, err := os.ReadFile(*statePath); err == nil {
			if err := engine.RestoreState(data); err != nil {
				slog.Warn("ignoring unreadable state file", "path", *statePath, "err", err)
			} else {
				slog.Debug("restored state", "path", *statePath)
			}
		}
	}

	out := render(engine, input, renderOpts{
		sampleRate: *sampleRate,
		tailFrames: int(*tail * float64(*sampleRate)),
		triggerHz:  *trigHz,
		dcblock:    *dcblock,
	})
	slog.Info("rendered", "frames", len(out), "rate", *sampleRate)

	lights := make([]Smp, NumBuffers)
	for b := range lights {
		lights[b] = engine.BufferLight(b)
	}
	slog.Debug("indicators", "collapse", engine.CollapseLight(), "buffers", lights)

	if *statePath != "" {
		saveStateFile(engine, *statePath)
	}

	if *play {
		return playSamples(out, *sampleRate)
	}
	return writeWav(*outPath, out, *sampleRate)
}

func makeInput(path, gen string, sampleRate int, duration float64, seed uint32) ([]Smp, error) {
	if path != "" {
		samples, srcRate, err := loadAudioFile(path)
		if err != nil {
			return nil, err
		}
		samples, err = resampleTo(samples, srcRate, sampleRate)
		if err != nil {
			return nil, err
		}
		for i := range samples {
			samples[i] *= inputScale
		}
		slog.Info("loaded input", "path", path, "frames", len(samples), "srcRate", srcRate)
		return samples, nil
	}

	nframes := int(duration * float64(sampleRate))
	switch gen {
	case "impulse":
		return impulseTrain(nframes, sampleRate/2, inputScale), nil
	case "noise":
		return whiteNoise(nframes, seed, inputScale/2), nil
	case "silence":
		return make([]Smp, nframes), nil
	default:
		return nil, fmt.Errorf("unknown generator: %s", gen)
	}
}

type renderOpts struct {
	sampleRate int
	tailFrames int
	triggerHz  float64
	dcblock    bool
}

// render drives the engine one sample frame at a time, synthesizing
// trigger pulses at the requested rate, and returns the output scaled
// back to [-1,1].
func render(engine *Engine, input []Smp, opts renderOpts) []Smp {
	total := len(input) + opts.tailFrames
	out := make([]Smp, total)
	dc := newDCBlocker(Smp(opts.sampleRate))

	var trigPhase float64
	for i := 0; i < total; i++ {
		var in Inputs
		if i < len(input) {
			in.Audio = input[i]
		}
		if opts.triggerHz > 0 {
			trigPhase += opts.triggerHz / float64(opts.sampleRate)
			if trigPhase >= 1 {
				trigPhase -= 1
				in.Trigger = 5
			}
		}
		y := engine.Process(in)
		if opts.dcblock {
			y = dc.process(y)
		}
		out[i] = y / inputScale
	}
	return out
}

func saveStateFile(engine *Engine, path string) {
	data, err := engine.SaveState()
	if err != nil {
		slog.Warn("could not snapshot state", "err", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		slog.Warn("could not create state dir", "path", path, "err", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		slog.Warn("could not save state", "path", path, "err", err)
		return
	}
	slog.Debug("saved state", "path", path)
}
