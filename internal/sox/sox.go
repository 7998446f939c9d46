// Package sox invokes the SoX command-line tool for ambient capture,
// spectral analysis and band-noise synthesis.
package sox

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// Tool invokes the sox and play binaries with fixed argument templates.
type Tool struct {
	soxBin  string
	playBin string
}

// New returns a Tool for the given sox and play binaries.
func New(soxBin, playBin string) *Tool {
	return &Tool{soxBin: soxBin, playBin: playBin}
}

// Record captures the given number of seconds from the default input device
// into path.
func (t *Tool) Record(ctx context.Context, path string, seconds int) error {
	cmd := exec.CommandContext(ctx, t.soxBin, "-d", path, "trim", "0", strconv.Itoa(seconds))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("sox record failed: %w: %s", err, bytes.TrimSpace(out))
	}
	return nil
}

// Spectrogram renders a spectrogram image of the sample.
func (t *Tool) Spectrogram(ctx context.Context, wav, png string) error {
	cmd := exec.CommandContext(ctx, t.soxBin, wav, "-n", "spectrogram", "-o", png)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("sox spectrogram failed: %w: %s", err, bytes.TrimSpace(out))
	}
	return nil
}

// Stats runs the frequency statistics analysis and returns its raw text
// output. SoX prints the (frequency, amplitude) table on stderr.
func (t *Tool) Stats(ctx context.Context, wav string) (string, error) {
	cmd := exec.CommandContext(ctx, t.soxBin, wav, "-n", "stat", "-freq")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("sox stat -freq failed: %w", err)
	}
	return stderr.String(), nil
}
