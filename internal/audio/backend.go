package audio

import (
	"errors"
	"os/exec"
)

// ErrNoBackend is returned when no playback tool is installed.
var ErrNoBackend = errors.New("audio: no playback tool found")

// Backend is a command that reads raw s16le stereo PCM on stdin.
type Backend struct {
	Name string
	Path string
	Args []string
}

var candidates = []Backend{
	{Name: "pacat", Args: []string{"--raw", "--format=s16le", "--rate=44100", "--channels=2", "--latency-msec=50", "--playback"}},
	{Name: "pw-cat", Args: []string{"--playback", "--format=s16", "--rate=44100", "--channels=2", "--latency=50ms", "-"}},
	{Name: "aplay", Args: []string{"-t", "raw", "-f", "S16_LE", "-r", "44100", "-c", "2", "-q"}},
}

// DetectBackend returns the first playback tool found on PATH.
// Priority: pacat > pw-cat > aplay.
func DetectBackend() (Backend, error) {
	return detect(exec.LookPath)
}

func detect(lookPath func(string) (string, error)) (Backend, error) {
	for _, c := range candidates {
		if path, err := lookPath(c.Name); err == nil {
			c.Path = path
			return c, nil
		}
	}
	return Backend{}, ErrNoBackend
}
