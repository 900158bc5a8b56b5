package desktop

import (
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// Sound identifies a procedural cue.
type Sound int

const (
	SoundShot Sound = iota
	SoundThrow
	SoundKill
	SoundGameOver
	soundCount
)

// maxVoices caps overlapping cues to avoid clipping.
const maxVoices = 6

// Audio plays procedural cues through oto. A nil *Audio is silent.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	voices atomic.Int32
	wg     sync.WaitGroup
	bank   [soundCount][]byte
}

func NewAudio(volume float64) (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	a := &Audio{ctx: ctx, ready: ready, volume: volume}
	a.bank[SoundShot] = genShot()
	a.bank[SoundThrow] = genThrow()
	a.bank[SoundKill] = genKill()
	a.bank[SoundGameOver] = genGameOver()
	return a, nil
}

// Play starts a cue and returns immediately. Cues are dropped while the
// device is still starting or every voice is busy.
func (a *Audio) Play(kind Sound) {
	if a == nil || kind < 0 || kind >= soundCount {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if a.voices.Add(1) > maxVoices {
		a.voices.Add(-1)
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer a.voices.Add(-1)
		player := a.ctx.NewPlayer(&soundReader{data: a.bank[kind]})
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Drain waits for playing cues to finish, at most timeout.
func (a *Audio) Drain(timeout time.Duration) {
	if a == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
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
	for ch := range ChannelCount {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation.
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
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// synth renders dur seconds of mono audio from a per-sample function of
// time and normalized progress.
func synth(dur float64, sample func(t, p float64) float64) []byte {
	n := int(dur * SampleRate)
	buf := make([]byte, n*8)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		putStereoF32(buf, i, softSat(sample(t, p)))
	}
	return buf
}

// genShot: bright falling zap.
func genShot() []byte {
	return synth(0.09, func(t, p float64) float64 {
		env := adsr(p, 0.01, 0.5, 0.2, 0.3)
		freq := 1800 - 1300*p
		return fm(t, freq, 0.5, 3.0*(1-p)) * env * 0.35
	})
}

// genThrow: airy whoosh, band-limited noise swept upward.
func genThrow() []byte {
	seed := uint64(4242)
	var lp float64
	return synth(0.22, func(t, p float64) float64 {
		env := math.Sin(math.Pi * p)
		cut := 0.05 + 0.25*p
		lp += (lcg(&seed) - lp) * cut
		whistle := math.Sin(2*math.Pi*(500+400*p)*t) * 0.06
		return (lp*0.9 + whistle) * env * 0.5
	})
}

// genKill: thump plus a rising chime.
func genKill() []byte {
	seed := uint64(1337)
	return synth(0.28, func(t, p float64) float64 {
		thumpFreq := 160 * math.Pow(0.25, p*3)
		thump := math.Sin(2*math.Pi*thumpFreq*t) * math.Exp(-p*14) * 0.55
		crack := 0.0
		if p < 0.03 {
			crack = lcg(&seed) * (1 - p/0.03) * 0.5
		}
		env := adsr(p, 0.05, 0.4, 0.3, 0.4)
		chime := fm(t, 660+220*p, 2.0, 1.5*env) * env * 0.22
		return thump + crack + chime
	})
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []byte {
	const dur = 0.9
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.15}, // C4
		{220.00, 0.30}, // A3
	}
	return synth(dur, func(t, p float64) float64 {
		var s float64
		for _, note := range notes {
			start := note.onset / dur
			if p < start {
				continue
			}
			np := (p - start) / (1 - start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s += fm(t, freq, 2.0, 2.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.08
		}
		return s
	})
}
