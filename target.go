package main

import (
	"strings"

	"github.com/google/uuid"
)

// Target is one launchable program bound to a button.
type Target struct {
	ID      string // correlates log lines of one target
	Label   string
	Program string
	Args    []string
}

func NewTarget(label, program string, args ...string) Target {
	return Target{
		ID:      uuid.New().String(),
		Label:   label,
		Program: program,
		Args:    args,
	}
}

// CommandLine renders the target for display and logs. It is never handed
// to a shell.
func (t Target) CommandLine() string {
	parts := make([]string, 0, len(t.Args)+1)
	parts = append(parts, quoteArg(t.Program))
	for _, a := range t.Args {
		parts = append(parts, quoteArg(a))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, " \t\"") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}
