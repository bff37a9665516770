package audio

import "math"

// Resample converts samples from srcRate to dstRate using linear
// interpolation. When the rates match the input slice is returned
// unchanged. The output spans the duration of the input, so its length
// is round(len(samples) * dstRate / srcRate).
//
// Each output sample is interpolated between the two input samples
// bracketing its instant, weighted by fractional distance; instants past
// the final input sample clamp to it. Linear interpolation trades
// quality for simplicity: aliasing versus sinc resampling is accepted
// for speech input.
func Resample(samples []int16, srcRate, dstRate int) []int16 {
	if srcRate == dstRate {
		return samples
	}
	if len(samples) == 0 {
		return []int16{}
	}

	ratio := float64(srcRate) / float64(dstRate)
	outLen := int(math.Round(float64(len(samples)) * float64(dstRate) / float64(srcRate)))

	out := make([]int16, outLen)
	for i := range out {
		pos := float64(i) * ratio
		j := int(pos)
		if j >= len(samples)-1 {
			out[i] = samples[len(samples)-1]
			continue
		}
		frac := pos - float64(j)
		a, b := float64(samples[j]), float64(samples[j+1])
		out[i] = int16(a + frac*(b-a))
	}
	return out
}
