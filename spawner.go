package main

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrEmptyProgram is returned for a target without a program.
var ErrEmptyProgram = errors.New("empty program")

// Spawner starts an independent process and returns as soon as it exists.
type Spawner interface {
	Spawn(program string, args ...string) error
}

// SpawnError reports a failed launch of a target.
type SpawnError struct {
	Target Target
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %s (%s): %v", e.Target.Label, e.Target.CommandLine(), e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ProcessSpawner spawns real OS processes, fire-and-forget.
type ProcessSpawner struct{}

func NewProcessSpawner() *ProcessSpawner {
	return &ProcessSpawner{}
}

func (s *ProcessSpawner) Spawn(program string, args ...string) error {
	path, err := exec.LookPath(program)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", program, err)
	}

	cmd := exec.Command(path, args...)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", path, err)
	}

	// reap only; the exit status is not consumed
	go func() { _ = cmd.Wait() }()
	return nil
}

// Launch spawns the target and wraps any failure in a *SpawnError.
func Launch(s Spawner, t Target) error {
	if t.Program == "" {
		return &SpawnError{Target: t, Err: ErrEmptyProgram}
	}
	if err := s.Spawn(t.Program, t.Args...); err != nil {
		return &SpawnError{Target: t, Err: err}
	}
	return nil
}
