package audio

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// ErrNoPlayer is returned when no audio player command is installed
var ErrNoPlayer = errors.New("no audio player found. Install mpg123, ffplay, sox, or paplay")

// Player plays local audio files with a platform command
type Player struct {
	mu       sync.Mutex
	file     string
	cmd      *exec.Cmd
	playing  bool
	onFinish func()

	goos     string
	lookPath func(string) (string, error)
}

// NewPlayer creates a player for the current platform
func NewPlayer() *Player {
	return &Player{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
	}
}

// OnFinish registers fn to run when playback ends by itself
func (p *Player) OnFinish(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onFinish = fn
}

// Load stops any playback and sets the file to play next
func (p *Player) Load(file string) {
	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.file = file
}

// File returns the loaded file
func (p *Player) File() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.file
}

// IsPlaying reports whether playback is running
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Play starts playing the loaded file in the background
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.file == "" {
		return fmt.Errorf("no audio loaded")
	}
	if p.playing {
		return nil
	}

	cmd, err := playerCommand(p.goos, p.lookPath, p.file)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start audio player: %w", err)
	}

	p.cmd = cmd
	p.playing = true

	go func() {
		err := cmd.Wait()

		p.mu.Lock()
		// Stop or a newer Play already replaced this command
		if p.cmd != cmd {
			p.mu.Unlock()
			return
		}
		p.cmd = nil
		p.playing = false
		onFinish := p.onFinish
		p.mu.Unlock()

		if err == nil && onFinish != nil {
			onFinish()
		}
	}()

	return nil
}

// Stop kills the running playback, if any
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}
	p.cmd = nil
	p.playing = false
}

// playerCommand picks the audio command for goos, trying Linux players in
// order of preference. mpg123 comes first since it handles MP3 files best.
func playerCommand(goos string, lookPath func(string) (string, error), file string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("afplay", file), nil
	case "linux", "freebsd", "openbsd":
		candidates := []struct {
			name string
			args []string
		}{
			{"mpg123", []string{"-q", file}},
			{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", file}},
			{"play", []string{"-q", file}},
			{"paplay", []string{file}},
		}
		for _, c := range candidates {
			if _, err := lookPath(c.name); err == nil {
				return exec.Command(c.name, c.args...), nil
			}
		}
		return nil, ErrNoPlayer
	case "windows":
		return exec.Command("cmd", "/c", "start", "/min", file), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
