package timer

import (
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/pathutil"
)

const (
	sampleRate    = beep.SampleRate(44100)
	bufferSize    = 10
	resampleLevel = 4
	fadeDuration  = 3 * time.Second
	noiseGain     = 0.3
)

var soundExtensions = []string{".ogg", ".mp3", ".flac", ".wav"}

// findSoundFile returns the first file in dir, in natural order, whose name
// starts with the sound type. "rain2.ogg" sorts before "rain10.ogg".
func findSoundFile(dir string, sound models.SoundType) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}

	prefix := strings.ToLower(string(sound))

	var names []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))

		if !slices.Contains(soundExtensions, ext) {
			continue
		}

		if strings.HasPrefix(strings.ToLower(pathutil.StripExtension(name)), prefix) {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return "", errSoundNotFound.Fmt(sound, dir)
	}

	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}

		return 0
	})

	return filepath.Join(dir, names[0]), nil
}

// decodeSound opens a sound file and returns a looping stream resampled to
// the speaker's rate.
func decodeSound(path string) (beep.Streamer, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, nil, errInvalidSoundFormat.Fmt(path)
	}

	if err != nil {
		_ = f.Close()
		return nil, nil, errDecodeSound.Fmt(path).Wrap(err)
	}

	looped := beep.Loop(-1, stream)

	if format.SampleRate == sampleRate {
		return looped, stream, nil
	}

	return beep.Resample(resampleLevel, format.SampleRate, sampleRate, looped), stream, nil
}

// whiteNoise returns an endless stream of uniform noise.
func whiteNoise() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := (rand.Float64()*2 - 1) * noiseGain
			samples[i][0] = v
			samples[i][1] = v
		}

		return len(samples), true
	})
}

// fader scales a stream by gain. A negative step fades the stream out one
// sample at a time.
type fader struct {
	beep.Streamer
	gain float64
	step float64
}

func (f *fader) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)

	for i := range samples[:n] {
		if f.step != 0 {
			f.gain = min(1, max(0, f.gain+f.step))
		}

		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}

	return n, ok
}

// volumeLevel converts a linear 0-1 volume to the exponent used by
// effects.Volume with base 2.
func volumeLevel(v float64) float64 {
	if v <= 0 {
		return 0
	}

	return math.Log2(v)
}

// Player plays the ambient loop and the completion chime.
type Player struct {
	logger  *slog.Logger
	dir     string
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	fader   *fader
	closer  io.Closer
	sound   models.SoundType
	initErr error
	once    sync.Once
	mu      sync.Mutex
}

// NewPlayer returns a player that looks up sound files in dir. The audio
// device is opened on first use.
func NewPlayer(dir string, logger *slog.Logger) *Player {
	return &Player{
		dir:    dir,
		logger: logger,
		sound:  models.SoundNone,
	}
}

func (p *Player) init() error {
	p.once.Do(func() {
		err := speaker.Init(sampleRate, sampleRate.N(time.Second/bufferSize))
		if err != nil {
			p.initErr = errSpeakerInit.Wrap(err)
		}
	})

	return p.initErr
}

// Sound returns the selected ambient sound.
func (p *Player) Sound() models.SoundType {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sound
}

// Set selects the ambient sound and its volume. The loop starts paused.
func (p *Player) Set(sound models.SoundType, volume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	p.sound = sound

	if sound == models.SoundNone || sound == "" {
		return nil
	}

	var (
		stream beep.Streamer
		closer io.Closer
	)

	if sound == models.SoundWhiteNoise {
		stream = whiteNoise()
	} else {
		path, err := findSoundFile(p.dir, sound)
		if err != nil {
			p.sound = models.SoundNone
			return err
		}

		stream, closer, err = decodeSound(path)
		if err != nil {
			p.sound = models.SoundNone
			return err
		}
	}

	if err := p.init(); err != nil {
		if closer != nil {
			_ = closer.Close()
		}

		p.sound = models.SoundNone

		return err
	}

	p.fader = &fader{Streamer: stream, gain: 1}
	p.ctrl = &beep.Ctrl{Streamer: p.fader, Paused: true}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   volumeLevel(volume),
		Silent:   volume <= 0,
	}
	p.closer = closer

	speaker.Play(p.volume)

	return nil
}

// Resume plays the ambient loop at full gain.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return
	}

	speaker.Lock()
	p.fader.gain = 1
	p.fader.step = 0
	p.ctrl.Paused = false
	speaker.Unlock()
}

// Pause holds the ambient loop.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

// FadeOut lowers the ambient loop to silence over d.
func (p *Player) FadeOut(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return
	}

	n := max(1, sampleRate.N(d))

	speaker.Lock()
	p.fader.step = -1 / float64(n)
	speaker.Unlock()
}

// Chime plays the two tone completion chime.
func (p *Player) Chime() error {
	if err := p.init(); err != nil {
		return err
	}

	high, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return err
	}

	low, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return err
	}

	chime := &effects.Volume{
		Streamer: beep.Seq(
			beep.Take(sampleRate.N(200*time.Millisecond), high),
			beep.Take(sampleRate.N(300*time.Millisecond), low),
		),
		Base:   2,
		Volume: -2,
	}

	speaker.Play(chime)

	return nil
}

func (p *Player) stopLocked() {
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Streamer = nil
		speaker.Unlock()
	}

	if p.closer != nil {
		err := p.closer.Close()
		if err != nil {
			p.logger.Debug("closing sound stream failed", slog.Any("error", err))
		}
	}

	p.ctrl, p.volume, p.fader, p.closer = nil, nil, nil, nil
}

// Close stops playback and releases the open sound file.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}
