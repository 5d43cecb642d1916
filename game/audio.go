package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	sfxVolume = 0.8
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundShoot SoundKind = iota
	SoundExplosion
	SoundShieldHit
	SoundWave
	SoundGameOver
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// InitAudio initializes the audio system. Playback requests before the
// context reports ready are dropped, not queued.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation to keep overlapping effects
// from clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		d := (progress - attack) / decay
		return 1 + (sustain-1)*d
	case progress > 1-release:
		return sustain * (1 - progress) / release
	default:
		return sustain
	}
}

// fm is a single-modulator FM oscillator.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundShoot:
		return genShoot()
	case SoundExplosion:
		return genExplosion()
	case SoundShieldHit:
		return genShieldHit()
	case SoundWave:
		return genWave()
	case SoundGameOver:
		return genGameOver()
	}
	return nil
}

// genShoot: short rising zap — FM sweep with a thin noise layer.
func genShoot() []byte {
	n := int(0.10 * sampleRate)
	buf := makeBuf(n)
	seed := uint64(77777)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.2, 0.3)
		freq := 900 + 1400*p
		s := fm(t, freq, 1.5, 2.2*(1-p)) * env * 0.42
		s += lcg(&seed) * env * 0.05
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genExplosion: sub boom plus bandpassed noise body.
func genExplosion() []byte {
	n := int(0.35 * sampleRate)
	buf := makeBuf(n)
	seed := uint64(424242)
	lp1, lp2 := 0.0, 0.0
	subPhase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		subFreq := 140 * math.Pow(0.25, p*1.8)
		subPhase += 2 * math.Pi * subFreq / sampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*6) * 0.5

		raw := lcg(&seed)
		lp1 = lp1*0.78 + raw*0.22
		lp2 = lp2*0.97 + raw*0.03
		body := (lp1 - lp2) * math.Exp(-p*5.5) * 0.4

		putStereoF32(buf, i, softSat(sub+body))
	}
	return buf
}

// genShieldHit: brittle mid-range crack.
func genShieldHit() []byte {
	n := int(0.08 * sampleRate)
	buf := makeBuf(n)
	seed := uint64(13131)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9)
		lp = lp*0.6 + lcg(&seed)*0.4
		s := lp*0.35*env + math.Sin(2*math.Pi*(620-320*p)*t)*env*0.3
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWave: short ascending FM arpeggio for a cleared wave.
func genWave() []byte {
	freqs := []float64{440, 554.37, 659.25, 880}
	noteLen := sampleRate * 70 / 1000
	tail := int(0.15 * sampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / sampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.5, 0.05, 0.4)
			mix[start+j] += fm(t, freq, 2.0, 3.0*env) * env * 0.3
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending FM tone.
func genGameOver() []byte {
	n := int(0.7 * sampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.5, 0.35)
		freq := 330 - 210*p
		s := fm(t, freq, 0.5, 1.8*env) * env * 0.45
		s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.12
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
