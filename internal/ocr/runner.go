// Package ocr holds what text recognizers backed by an external binary share.
package ocr

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"
)

const stderrLogLimit = 4 << 10

// Runner executes a recognizer binary. Tests substitute a stub.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs the binary with os/exec. Env entries are appended to the
// process environment.
type ExecRunner struct {
	Env []string
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	started := time.Now()
	err := cmd.Run()
	elapsed := time.Since(started)

	if err != nil {
		msg := stderr.Bytes()
		if len(msg) > stderrLogLimit {
			msg = msg[:stderrLogLimit]
		}
		log.Error().Err(err).
			Str("binary", name).
			Dur("elapsed", elapsed).
			Bytes("stderr", msg).
			Msg("recognizer binary failed")
		return stdout.Bytes(), stderr.Bytes(), err
	}

	log.Debug().
		Str("binary", name).
		Dur("elapsed", elapsed).
		Int("stdout_bytes", stdout.Len()).
		Msg("recognizer binary finished")
	return stdout.Bytes(), stderr.Bytes(), nil
}
