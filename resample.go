package main

import (
	"github.com/dh1tw/gosamplerate"
)

// resampleTo converts mono samples from srcRate to dstRate using
// libsamplerate's medium-quality sinc converter. Input is returned
// unchanged when the rates already match.
func resampleTo(samples []Smp, srcRate, dstRate int) ([]Smp, error) {
	if srcRate == dstRate || len(samples) == 0 {
		return samples, nil
	}

	in := make([]float32, len(samples))
	for i, s := range samples {
		in[i] = float32(s)
	}

	ratio := float64(dstRate) / float64(srcRate)
	out, err := gosamplerate.Simple(in, ratio, 1, gosamplerate.SRC_SINC_MEDIUM_QUALITY)
	if err != nil {
		return nil, err
	}

	res := make([]Smp, len(out))
	for i, s := range out {
		res[i] = Smp(s)
	}
	return res, nil
}
