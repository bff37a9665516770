package audio

import "testing"

func TestResampleIdentity(t *testing.T) {
	in := []int16{3, 1, 4, 1, 5, 9, 2, 6}
	out := Resample(in, 16000, 16000)

	if len(out) != len(in) {
		t.Fatalf("identity resample changed length: got %d, want %d", len(out), len(in))
	}
	if &out[0] != &in[0] {
		t.Error("identity resample should return the input slice unchanged")
	}
}

func TestResampleLength(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		src     int
		dst     int
		wantLen int
	}{
		{"double 8k to 16k", 1000, 8000, 16000, 2000},
		{"halve 16k to 8k", 100, 16000, 8000, 50},
		{"44.1k to 16k", 44100, 44100, 16000, 16000},
		{"tiny input", 3, 8000, 16000, 6},
		{"single sample", 1, 8000, 16000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]int16, tt.n)
			out := Resample(in, tt.src, tt.dst)
			if len(out) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(out), tt.wantLen)
			}
		})
	}
}

// Linear interpolation of a constant signal is the constant, at any rate
// ratio and for any sample value.
func TestResampleConstant(t *testing.T) {
	for _, k := range []int16{0, 1, -1, 1234, -20000, 32767, -32768} {
		in := make([]int16, 441)
		for i := range in {
			in[i] = k
		}
		out := Resample(in, 44100, 16000)
		for i, v := range out {
			if v != k {
				t.Fatalf("k=%d: out[%d] = %d, want %d", k, i, v, k)
			}
		}
	}
}

func TestResampleUpsampleMidpoints(t *testing.T) {
	in := []int16{0, 100}
	out := Resample(in, 8000, 16000)

	want := []int16{0, 50, 100, 100}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestResampleDownsamplePicksBracketedValues(t *testing.T) {
	in := []int16{0, 10, 20, 30}
	out := Resample(in, 16000, 8000)

	want := []int16{0, 20}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestResampleEmpty(t *testing.T) {
	out := Resample(nil, 8000, 16000)
	if len(out) != 0 {
		t.Errorf("resampling empty input yielded %d samples", len(out))
	}
}
