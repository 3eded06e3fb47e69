package stt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Transcriber runs a local whisper.cpp binary to turn audio into text. The
// binary and model are optional capabilities: when either is missing the
// endpoint reports the feature unavailable instead of failing the process.
type Transcriber struct {
	binary string
	model  string
}

func NewTranscriber(binary, model string) *Transcriber {
	return &Transcriber{binary: binary, model: model}
}

// Available reports whether both the whisper binary and its model can be
// found. Checked per request so dropping the files in later enables the
// feature without a restart.
func (t *Transcriber) Available() bool {
	if _, err := exec.LookPath(t.binary); err != nil {
		return false
	}
	if _, err := os.Stat(t.model); err != nil {
		return false
	}
	return true
}

// Transcribe writes the uploaded audio to a temporary file and runs whisper
// over it, returning the recognized text.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	tmp, err := os.CreateTemp("", "transcribe_*.audio")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write audio: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	outPrefix := filepath.Join(os.TempDir(), fmt.Sprintf("whisper_out_%d", time.Now().UnixNano()))
	args := []string{"-m", t.model, "-f", tmp.Name(), "-otxt", "-of", outPrefix, "-nt"}
	cmd := exec.CommandContext(ctx, t.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("whisper execution failed: %v: %s", err, stderr.String())
	}

	txtPath := outPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("reading transcript: %w", err)
	}
	_ = os.Remove(txtPath)

	return strings.TrimSpace(string(data)), nil
}
