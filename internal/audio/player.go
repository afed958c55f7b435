package audio

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"github.com/galleryroom/vr-gallery/internal/assets"
)

// SampleRate is the shared playback sample rate
const SampleRate = 48000

// Player abstracts the underlying playback primitive so backends and tests
// do not depend on the audio device. A nil player means audio is disabled
// and every operation is a safe no-op.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Seek(position time.Duration) error
	Current() time.Duration
	Close() error
}

// The process-wide playback context. Ebiten permits exactly one.
var (
	contextOnce sync.Once
	context     *eaudio.Context
)

func playbackContext() *eaudio.Context {
	contextOnce.Do(func() {
		context = eaudio.NewContext(SampleRate)
	})
	return context
}

// ebitenPlayer adapts an ebiten audio player to the Player interface
type ebitenPlayer struct {
	player *eaudio.Player
}

func (e *ebitenPlayer) Play()                      { e.player.Play() }
func (e *ebitenPlayer) Pause()                     { e.player.Pause() }
func (e *ebitenPlayer) IsPlaying() bool            { return e.player.IsPlaying() }
func (e *ebitenPlayer) SetVolume(v float64)        { e.player.SetVolume(v) }
func (e *ebitenPlayer) Seek(p time.Duration) error { return e.player.Seek(p) }
func (e *ebitenPlayer) Current() time.Duration     { return e.player.Current() }
func (e *ebitenPlayer) Close() error               { return e.player.Close() }

// LoadMusicFile decodes the MP3 at path into a looping player. The decode is
// registered with the asset registry so it counts toward visible loading
// progress; the handle completes on success and failure alike.
func LoadMusicFile(path string, registry *assets.Registry) (Player, error) {
	var done assets.CompletionFunc
	if registry != nil {
		done = registry.Register("audio:" + path)
		defer done()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file: %w", err)
	}

	stream, err := mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music: %w", err)
	}

	loop := eaudio.NewInfiniteLoop(stream, stream.Length())
	player, err := playbackContext().NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return &ebitenPlayer{player: player}, nil
}
