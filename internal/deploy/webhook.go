package deploy

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrBadSignature indicates the webhook signature did not match the payload.
var ErrBadSignature = errors.New("invalid signature")

// Hook pulls the configured checkout when a correctly signed webhook arrives
// and appends each run to a log file.
type Hook struct {
	secret  string
	repoDir string
	logPath string
}

func NewHook(secret, repoDir, logPath string) *Hook {
	return &Hook{
		secret:  strings.TrimSpace(secret),
		repoDir: repoDir,
		logPath: logPath,
	}
}

// VerifySignature checks an X-Hub-Signature-256 style header
// ("sha256=<hex>") against the raw request body.
func (h *Hook) VerifySignature(body []byte, signature string) error {
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrBadSignature
	}
	return nil
}

// Run executes `git pull origin main` in the configured checkout and appends a
// timestamped entry with the command output to the deploy log.
func (h *Hook) Run(ctx context.Context) (string, error) {
	if h.repoDir == "" {
		return "", errors.New("deploy repo dir is not configured")
	}

	cmd := exec.CommandContext(ctx, "git", "pull", "origin", "main")
	cmd.Dir = h.repoDir
	out, err := cmd.CombinedOutput()
	output := string(out)

	h.appendLog(output, err)

	if err != nil {
		return output, fmt.Errorf("git pull: %w", err)
	}
	return output, nil
}

func (h *Hook) appendLog(output string, runErr error) {
	if h.logPath == "" {
		return
	}
	f, err := os.OpenFile(h.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	status := "ok"
	if runErr != nil {
		status = fmt.Sprintf("error: %v", runErr)
	}
	fmt.Fprintf(f, "%s - deployment triggered (%s)\nOutput: %s\n\n",
		time.Now().Format("2006-01-02 15:04:05"), status, strings.TrimSpace(output))
}
