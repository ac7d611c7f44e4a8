package audio

import (
	"encoding/base64"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams_RoundTrip(t *testing.T) {
	p, err := ParseParams("1,0.1,0.2,,0.3,0.5")
	require.NoError(t, err)
	assert.Equal(t, WaveSawtooth, p.Wave)
	assert.Equal(t, 0.1, p.Attack)
	assert.Equal(t, 0.2, p.Sustain)
	assert.Equal(t, 0.0, p.Punch)
	assert.Equal(t, 0.5, p.StartFrequency)

	again, err := ParseParams(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestParseParams_Errors(t *testing.T) {
	for _, s := range []string{"", "9,0.1", "x,0.1", "0,abc", "0" + strings.Repeat(",1", 21)} {
		_, err := ParseParams(s)
		assert.Error(t, err, s)
	}
}

// TestCues_AllRender tests that every cue parses and renders audible samples
func TestCues_AllRender(t *testing.T) {
	require.Len(t, Cues(), int(numCues))
	for _, c := range Cues() {
		p, err := CueParams(c)
		require.NoError(t, err, c.String())

		samples := Render(p)
		require.NotEmpty(t, samples, c.String())
		peak := 0
		for _, s := range samples {
			v := int(s)
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		assert.Greater(t, peak, 0, c.String())
	}
	_, err := CueParams(numCues)
	assert.Error(t, err)
}

// TestRender_Deterministic tests that noise cues render identically twice
func TestRender_Deterministic(t *testing.T) {
	p, err := CueParams(CueExplosion)
	require.NoError(t, err)
	assert.Equal(t, Render(p), Render(p))
}

func TestEncodeWAV_Header(t *testing.T) {
	data := EncodeWAV([]int16{1, -1, 300})
	require.Len(t, data, 44+6)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "data", string(data[36:40]))
	assert.Equal(t, uint32(42), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[22:24]))
	assert.Equal(t, uint32(SampleRate), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(t, uint32(6), binary.LittleEndian.Uint32(data[40:44]))
	assert.Equal(t, int16(300), int16(binary.LittleEndian.Uint16(data[48:50])))
}

func TestDataURL(t *testing.T) {
	p, err := CueParams(CueCoin)
	require.NoError(t, err)
	url := DataURL(p)
	require.True(t, strings.HasPrefix(url, "data:audio/wav;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:audio/wav;base64,"))
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(raw[:4]))
}

func TestCounter(t *testing.T) {
	var c Counter
	var p Player = &c
	p.Play(CueHit)
	p.Play(CueHit)
	p.Play(Cue(-1))
	assert.Equal(t, 2, c.Count(CueHit))
	assert.Equal(t, 0, c.Count(CueCoin))
	assert.Equal(t, "hit", CueHit.String())
	assert.Equal(t, "unknown", Cue(99).String())
}
