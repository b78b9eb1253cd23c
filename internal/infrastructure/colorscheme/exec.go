package colorscheme

import (
	"context"
	"os/exec"
	"time"
)

// queryTimeout bounds one-shot desktop setting queries.
const queryTimeout = 2 * time.Second

// commandRunner runs a command and returns its standard output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return exec.CommandContext(ctx, name, args...).Output()
}

// commandLookup reports whether a binary is on PATH.
type commandLookup func(name string) bool

func lookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
