package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundExplosion SoundKind = iota
	SoundSpringBreak
	SoundSplash
	SoundFireIgnite
	SoundSpark
	SoundWaveRumble
	SoundSinkingGroan
	SoundGadgetArm
	SoundGadgetDisarm
	SoundSwitch
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume = 0.8

// activeExplosions limits simultaneous explosion sounds to avoid speaker clipping.
var activeExplosions int32
var breakVariantCounter uint64
var explosionVariantCounter uint64

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// WireAudio subscribes sound playback to simulation events.
func WireAudio(eb *EventBus, params *Parameters) {
	eb.Subscribe(EventBombDetonated, func(ev Event) {
		PlayExplosionSound(float64(params.BombBlastRadius * params.BombBlastForceAdjustment * 10))
	})
	eb.Subscribe(EventExplosion, func(ev Event) {
		PlaySoundWithGain(SoundSplash, 0.8)
	})
	eb.Subscribe(EventSpringBroken, func(ev Event) {
		PlaySoundWithGain(SoundSpringBreak, 0.7)
	})
	eb.Subscribe(EventPointCombustionBegin, func(ev Event) {
		PlaySoundWithGain(SoundFireIgnite, 0.5)
	})
	eb.Subscribe(EventSparkApplied, func(ev Event) {
		PlaySoundWithGain(SoundSpark, 0.6)
	})
	eb.Subscribe(EventTsunami, func(ev Event) {
		PlaySound(SoundWaveRumble)
	})
	eb.Subscribe(EventRogueWave, func(ev Event) {
		PlaySoundWithGain(SoundWaveRumble, 0.6)
	})
	eb.Subscribe(EventSinkingBegin, func(ev Event) {
		PlaySound(SoundSinkingGroan)
	})
	eb.Subscribe(EventGadgetPlaced, func(ev Event) {
		PlaySoundWithGain(SoundGadgetArm, 0.8)
	})
	eb.Subscribe(EventGadgetRemoved, func(ev Event) {
		PlaySoundWithGain(SoundGadgetDisarm, 0.8)
	})
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	playSoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	playSoundWithGain(kind, gain)
}

func playSoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil {
		return
	}
	if gain <= 0 {
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
		player.SetVolume(sfxVolume * clampF64(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// PlayExplosionSound plays an explosion whose timbre scales with blast radius
// in world metres.
func PlayExplosionSound(magnitude float64) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	// Limit simultaneous explosions to 2 — more causes speaker clipping.
	if atomic.LoadInt32(&activeExplosions) >= 2 {
		return
	}
	atomic.AddInt32(&activeExplosions, 1)
	samples := genExplosionScaled(magnitude)
	if len(samples) == 0 {
		atomic.AddInt32(&activeExplosions, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&activeExplosions, -1)
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

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
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
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
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

func clampF64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundExplosion:
		return genExplosionScaled(10)
	case SoundSpringBreak:
		return genSpringBreak()
	case SoundSplash:
		return genSplash()
	case SoundFireIgnite:
		return genFireIgnite()
	case SoundSpark:
		return genSpark()
	case SoundWaveRumble:
		return genWaveRumble()
	case SoundSinkingGroan:
		return genSinkingGroan()
	case SoundGadgetArm:
		return genGadgetArm()
	case SoundGadgetDisarm:
		return genGadgetDisarm()
	case SoundSwitch:
		return genSwitch()
	}
	return nil
}

// genExplosionScaled adapts explosion timbre to blast size:
// larger blasts are deeper, longer, and rumblier; small blasts are snappier.
func genExplosionScaled(magnitude float64) []byte {
	norm := clampF64((magnitude-2.0)/18.0, 0, 1)
	dur := 0.26 + 0.64*norm
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := atomic.AddUint64(&explosionVariantCounter, 1) ^
		uint64(time.Now().UnixNano()) ^
		uint64(magnitude*4096)
	lp1, lp2 := 0.0, 0.0 // two lowpasses for bandpass body
	rumLP := 0.0
	subPhase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		// Sub boom: deeper and longer for larger blasts.
		subStart := 155.0 - 65.0*norm
		subEnd := 34.0 - 18.0*norm
		if subEnd < 10 {
			subEnd = 10
		}
		subFreq := subStart * math.Pow(subEnd/subStart, p*(1.6+1.5*norm))
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*(7.0-3.8*norm)) * (0.44 + 0.34*norm)

		// Hard transient crack: stronger for small blasts.
		crack := 0.0
		crackWin := 0.038 - 0.020*norm
		if crackWin < 0.010 {
			crackWin = 0.010
		}
		if p < crackWin {
			crack = lcg(&seed) * (1 - p/crackWin) * (0.88 - 0.28*norm)
		}

		// Bandpassed body (~120–2200 Hz).
		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24   // upper lowpass
		lp2 = lp2*0.975 + raw*0.025 // lower lowpass
		body := (lp1 - lp2) * math.Exp(-p*(6.2-2.2*norm)) * (0.30 + 0.17*norm)

		// Low rumble tail becomes more prominent with magnitude.
		rumLP = rumLP*0.95 + lcg(&seed)*0.05
		rumble := rumLP * math.Exp(-p*(3.0-1.5*norm)) * (0.06 + 0.20*norm)

		s := sub + crack + body + rumble
		putStereoF32(buf, i, softSat(s*0.86))
	}
	return buf
}

// genSpringBreak: short dry snap — noise burst with a lowpassed thunk.
func genSpringBreak() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	seed := atomic.AddUint64(&breakVariantCounter, 1)*0x9E3779B185EBCA87 ^ 0xC0FFEE
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		raw := lcg(&seed)
		lp = lp*0.82 + raw*0.18
		snap := raw * math.Exp(-p*38) * 0.7
		thunk := fm(t, 180, 0.5, 1.4) * math.Exp(-p*18) * 0.4
		putStereoF32(buf, i, softSat(snap+lp*0.25+thunk))
	}
	return buf
}

// genSplash: filtered noise swelling then tailing off.
func genSplash() []byte {
	n := int(0.30 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x5A1A5)
	lp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		raw := lcg(&seed)
		lp = lp*0.72 + raw*0.28
		env := adsr(p, 0.06, 0.3, 0.25, 0.5)
		putStereoF32(buf, i, softSat(lp*env*0.55))
	}
	return buf
}

// genFireIgnite: crackling noise with low-frequency amplitude modulation.
func genFireIgnite() []byte {
	n := int(0.13 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(33333)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		raw := lcg(&seed)
		lp = lp*0.65 + raw*0.35
		mod := 0.5 + 0.5*math.Sin(2*math.Pi*16*t)
		env := (1 - p) * 0.38
		s := (raw*0.3 + lp*0.55) * mod * env
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSpark: buzzy high zap with random dropouts.
func genSpark() []byte {
	n := int(0.10 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x5ABC)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9)
		buzz := fm(t, 1800-600*p, 1.5, 6.0) * 0.35
		raw := lcg(&seed)
		if raw > 0.4 {
			buzz *= 0.2
		}
		putStereoF32(buf, i, softSat((buzz+raw*0.12)*env))
	}
	return buf
}

// genWaveRumble: long deep swell for approaching abnormal waves.
func genWaveRumble() []byte {
	n := int(1.4 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x7EA5EA)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		raw := lcg(&seed)
		lp = lp*0.985 + raw*0.015
		env := adsr(p, 0.35, 0.2, 0.6, 0.4)
		sub := math.Sin(2*math.Pi*(28+8*math.Sin(2*math.Pi*0.7*t))*t) * 0.3
		putStereoF32(buf, i, softSat((lp*0.7+sub)*env))
	}
	return buf
}

// genSinkingGroan: slow detuned metallic moan.
func genSinkingGroan() []byte {
	n := int(1.1 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.2, 0.3, 0.5, 0.4)
		s := fm(t, 65, 1.01, 2.2)*0.3 + fm(t, 48, 2.02, 1.1)*0.25
		s *= 1.0 + 0.2*math.Sin(2*math.Pi*3.1*t)
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}

// genGadgetArm: two rising clicks.
func genGadgetArm() []byte {
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := 700.0
		if p > 0.5 {
			freq = 1050.0
		}
		env := math.Exp(-math.Mod(p, 0.5) * 24)
		putStereoF32(buf, i, softSat(math.Sin(2*math.Pi*freq*t)*env*0.4))
	}
	return buf
}

// genGadgetDisarm: mirrored descending clicks.
func genGadgetDisarm() []byte {
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := 1050.0
		if p > 0.5 {
			freq = 700.0
		}
		env := math.Exp(-math.Mod(p, 0.5) * 24)
		putStereoF32(buf, i, softSat(math.Sin(2*math.Pi*freq*t)*env*0.4))
	}
	return buf
}

// genSwitch: single dry click.
func genSwitch() []byte {
	n := int(0.05 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x5117C4)
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		putStereoF32(buf, i, softSat(lcg(&seed)*math.Exp(-p*45)*0.5))
	}
	return buf
}
