// Package audio synthesises the game's sound cues with an sfxr-style
// generator and plays them through Web Audio in the browser build.
package audio

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SampleRate of every rendered cue.
const SampleRate = 44100

// WaveType is the oscillator waveform.
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveSawtooth
	WaveSine
	WaveNoise
)

func (w WaveType) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveSine:
		return "sine"
	case WaveNoise:
		return "noise"
	}
	return "unknown"
}

// Params describes one sound. Every field except Wave is in [0, 1], or
// [-1, 1] for the slides and sweeps.
type Params struct {
	Wave WaveType

	Attack  float64
	Sustain float64
	Punch   float64
	Decay   float64

	StartFrequency float64
	MinFrequency   float64
	Slide          float64
	DeltaSlide     float64

	VibratoDepth float64
	VibratoSpeed float64

	ChangeAmount float64
	ChangeSpeed  float64

	SquareDuty float64
	DutySweep  float64

	LPCutoff      float64
	LPCutoffSweep float64
	LPResonance   float64
	HPCutoff      float64
	HPCutoffSweep float64

	Volume float64
}

// paramFields is the order of the comma-separated settings format.
func (p *Params) paramFields() []*float64 {
	return []*float64{
		&p.Attack, &p.Sustain, &p.Punch, &p.Decay,
		&p.StartFrequency, &p.MinFrequency, &p.Slide, &p.DeltaSlide,
		&p.VibratoDepth, &p.VibratoSpeed, &p.ChangeAmount, &p.ChangeSpeed,
		&p.SquareDuty, &p.DutySweep,
		&p.LPCutoff, &p.LPCutoffSweep, &p.LPResonance, &p.HPCutoff, &p.HPCutoffSweep,
		&p.Volume,
	}
}

// ParseParams reads the comma-separated settings format: the wave type
// followed by the float fields in declaration order. Missing trailing
// fields are zero.
func ParseParams(s string) (Params, error) {
	var p Params
	values := strings.Split(s, ",")
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return p, fmt.Errorf("sfxr: empty settings")
	}
	wave, err := strconv.Atoi(strings.TrimSpace(values[0]))
	if err != nil || wave < 0 || wave > int(WaveNoise) {
		return p, fmt.Errorf("sfxr: bad wave type %q", values[0])
	}
	p.Wave = WaveType(wave)

	fields := p.paramFields()
	if len(values)-1 > len(fields) {
		return p, fmt.Errorf("sfxr: %d fields, want at most %d", len(values)-1, len(fields))
	}
	for i, v := range values[1:] {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, fmt.Errorf("sfxr: field %d: %w", i+1, err)
		}
		*fields[i] = f
	}
	return p, nil
}

// String renders p in the settings format accepted by ParseParams.
func (p Params) String() string {
	parts := []string{strconv.Itoa(int(p.Wave))}
	for _, f := range p.paramFields() {
		parts = append(parts, strconv.FormatFloat(*f, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

// Render synthesises p into 16-bit mono samples. Noise is seeded, so the
// output is reproducible.
func Render(p Params) []int16 {
	sustain := p.Sustain
	if sustain < 0.01 {
		sustain = 0.01
	}
	attack, decay := p.Attack, p.Decay
	if total := attack + sustain + decay; total < 0.18 {
		k := 0.18 / total
		attack, sustain, decay = attack*k, sustain*k, decay*k
	}
	envLen := [3]float64{
		attack * attack * 100000,
		sustain * sustain * 100000,
		decay*decay*100000 + 10,
	}
	total := int(envLen[0] + envLen[1] + envLen[2])

	period := 100 / (p.StartFrequency*p.StartFrequency + 0.001)
	maxPeriod := 100 / (p.MinFrequency*p.MinFrequency + 0.001)
	slide := 1 - p.Slide*p.Slide*p.Slide*0.01
	deltaSlide := -p.DeltaSlide * p.DeltaSlide * p.DeltaSlide * 0.000001
	duty := 0.5 - p.SquareDuty/2
	dutySweep := -p.DutySweep * 0.00005

	changeAmount := 1 + p.ChangeAmount*p.ChangeAmount*10
	if p.ChangeAmount > 0 {
		changeAmount = 1 - p.ChangeAmount*p.ChangeAmount*0.9
	}
	changeLimit := (1-p.ChangeSpeed)*(1-p.ChangeSpeed)*20000 + 32
	if p.ChangeSpeed == 1 {
		changeLimit = 0
	}

	lpCutoff := p.LPCutoff * p.LPCutoff * p.LPCutoff * 0.1
	lpDelta := 1 + p.LPCutoffSweep*0.0001
	lpOn := p.LPCutoff != 1
	lpDamping := 5 / (1 + p.LPResonance*p.LPResonance*20) * (0.01 + lpCutoff)
	if lpDamping > 0.8 {
		lpDamping = 0.8
	}
	lpDamping = 1 - lpDamping
	hpCutoff := p.HPCutoff * p.HPCutoff * 0.1
	hpDelta := 1 + p.HPCutoffSweep*0.0003

	vibratoAmp := p.VibratoDepth / 2
	vibratoSpeed := p.VibratoSpeed * p.VibratoSpeed * 0.01
	volume := p.Volume * p.Volume

	seed := uint32(12345)
	var noise [32]float64
	refill := func() {
		for i := range noise {
			seed = seed*1103515245 + 12345
			noise[i] = float64(seed)/float64(1<<31) - 1
		}
	}
	refill()

	out := make([]int16, 0, total)
	var (
		stage                  int
		envTime, phase, vibPh  float64
		changeTime             float64
		lpPos, lpOld, lpDeltaP float64
		hpPos                  float64
	)

	for len(out) < total {
		if changeLimit != 0 {
			changeTime++
			if changeTime >= changeLimit {
				changeLimit = 0
				period *= changeAmount
			}
		}

		slide += deltaSlide
		period *= slide
		if period > maxPeriod {
			period = maxPeriod
			if p.MinFrequency > 0 {
				break
			}
		}

		pt := period
		if vibratoAmp > 0 {
			vibPh += vibratoSpeed
			pt *= 1 + math.Sin(vibPh)*vibratoAmp
		}
		pt = math.Max(8, math.Floor(pt))

		if p.Wave == WaveSquare {
			duty = math.Min(0.5, math.Max(0, duty+dutySweep))
		}

		envTime++
		if envTime > envLen[stage] {
			envTime = 0
			stage++
			if stage > 2 {
				break
			}
		}
		var env float64
		switch stage {
		case 0:
			env = envTime / envLen[0]
		case 1:
			env = 1 + (1-envTime/envLen[1])*2*p.Punch
		case 2:
			env = 1 - envTime/envLen[2]
		}

		if hpDelta != 1 {
			hpCutoff = math.Min(0.1, math.Max(0.00001, hpCutoff*hpDelta))
		}

		super := 0.0
		for j := 0; j < 8; j++ {
			phase++
			if phase >= pt {
				phase = math.Mod(phase, pt)
				if p.Wave == WaveNoise {
					refill()
				}
			}

			var sample float64
			pos := phase / pt
			switch p.Wave {
			case WaveSquare:
				sample = -0.5
				if pos < duty {
					sample = 0.5
				}
			case WaveSawtooth:
				sample = 1 - pos*2
			case WaveSine:
				sample = math.Sin(pos * 2 * math.Pi)
			case WaveNoise:
				sample = noise[int(pos*32)%32]
			}

			lpOld = lpPos
			lpCutoff = math.Min(0.1, math.Max(0, lpCutoff*lpDelta))
			if lpOn {
				lpDeltaP += (sample - lpPos) * lpCutoff
				lpDeltaP *= lpDamping
			} else {
				lpPos = sample
				lpDeltaP = 0
			}
			lpPos += lpDeltaP
			hpPos += lpPos - lpOld
			hpPos *= 1 - hpCutoff
			super += hpPos
		}

		v := super / 8 * env * volume
		v = math.Max(-1, math.Min(1, v))
		out = append(out, int16(v*32767))
	}
	return out
}

// EncodeWAV wraps mono 16-bit samples in a RIFF/WAVE container.
func EncodeWAV(samples []int16) []byte {
	dataSize := uint32(len(samples) * 2)
	var buf bytes.Buffer
	buf.Grow(44 + int(dataSize))

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVEfmt ")
	binary.Write(&buf, binary.LittleEndian, struct {
		Size          uint32
		Format        uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}{16, 1, 1, SampleRate, SampleRate * 2, 2, 16})
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

// DataURL renders p as a base64 WAV data URL.
func DataURL(p Params) string {
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(EncodeWAV(Render(p)))
}
