// Package tesseract recognizes text in bill images with the tesseract CLI.
package tesseract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"smartcarbon/internal/config"
	"smartcarbon/internal/ocr"
	"smartcarbon/internal/port"
)

type recognizer struct {
	cfg    config.OCRConfig
	runner ocr.Runner
}

// NewRecognizer creates a tesseract-backed TextRecognizer. A nil runner uses os/exec.
func NewRecognizer(cfg config.OCRConfig, runner ocr.Runner) port.TextRecognizer {
	if cfg.Binary == "" {
		cfg.Binary = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	if runner == nil {
		// tesseract's OpenMP threads thrash when several pages run at once
		runner = ocr.ExecRunner{Env: []string{"OMP_THREAD_LIMIT=1"}}
	}
	return &recognizer{cfg: cfg, runner: runner}
}

func (r *recognizer) RecognizeText(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("tesseract: empty image")
	}

	f, err := os.CreateTemp("", "smartcarbon-ocr-*")
	if err != nil {
		return "", fmt.Errorf("tesseract temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(image); err != nil {
		f.Close()
		return "", fmt.Errorf("tesseract temp write: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("tesseract temp close: %w", err)
	}

	if r.cfg.TimeoutSecs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(r.cfg.TimeoutSecs)*time.Second)
		defer cancel()
	}

	// tesseract <file> stdout -l <lang>
	args := []string{path, "stdout", "-l", r.cfg.Lang}
	if r.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", r.cfg.TessdataDir)
	}
	out, errb, err := r.runner.Run(ctx, r.cfg.Binary, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w: %s", err, strings.TrimSpace(string(errb)))
	}
	return strings.TrimSpace(string(out)), nil
}

// Available reports whether the tesseract binary can be found on PATH.
func Available(binary string) error {
	if binary == "" {
		binary = "tesseract"
	}
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("tesseract binary %q: %w", binary, err)
	}
	return nil
}
