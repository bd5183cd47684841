package slideshow

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Executor abstracts the ffmpeg subprocess so tests can count launches and
// inject outcomes without a real engine.
type Executor interface {
	// Run launches the binary, forwards each line of its standard output to
	// onStdout, and returns the captured standard error text together with
	// the process outcome. A launch failure surfaces as exec.ErrNotFound.
	Run(ctx context.Context, binary string, args []string, onStdout func(string)) (stderr string, err error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onStdout func(string)) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("stdout pipe: %w", err)
	}
	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	if err := cmd.Start(); err != nil {
		return "", err
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if onStdout != nil {
			onStdout(scanner.Text())
		}
	}
	scanErr := scanner.Err()

	err = cmd.Wait()
	if err == nil && scanErr != nil {
		err = fmt.Errorf("scan output: %w", scanErr)
	}
	return stderrBuf.String(), err
}
