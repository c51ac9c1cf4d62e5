package notify

import "os/exec"

// CommandPlayer shells out to a system audio player for the alert cue.
// No in-process audio stack is needed: the command either plays the file at
// its fixed volume or exits non-zero, which the sink logs and drops.
type CommandPlayer struct {
	command   string
	soundPath string
}

func NewCommandPlayer(command string, soundPath string) *CommandPlayer {
	return &CommandPlayer{command: command, soundPath: soundPath}
}

func (p *CommandPlayer) Play() error {
	return exec.Command(p.command, p.soundPath).Run()
}

// NopPlayer is used in tests and on headless hosts.
type NopPlayer struct{}

func (NopPlayer) Play() error { return nil }
