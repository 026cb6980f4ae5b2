package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/resurs/internal/constants"
	"github.com/julianstephens/resurs/internal/logger"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// ErrTrayNotRunning means no live tray companion owns the lockfile.
var ErrTrayNotRunning = errors.New("tray companion is not running")

// Notifier shows reminders as desktop notifications through the resurs-tray
// companion, a separate program that listens on a local webhook. Without a
// running tray the reminder goes to Fallback.
type Notifier struct {
	client *http.Client

	// Fallback receives the reminder text when the tray is not running.
	// With a nil Fallback, Notify returns ErrTrayNotRunning instead.
	Fallback io.Writer
}

type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// trayLock is the content of the tray's port|pid|secret lockfile.
type trayLock struct {
	Port   int
	PID    int
	Secret string
}

func New() *Notifier {
	return &Notifier{
		client:   &http.Client{Timeout: 5 * time.Second},
		Fallback: os.Stdout,
	}
}

func (n *Notifier) Notify(ctx context.Context, text string) error {
	dir, err := LockfileDir()
	if err != nil {
		return err
	}

	lock, err := readTrayLock(filepath.Join(dir, constants.NotifierLockfileName))
	if errors.Is(err, ErrTrayNotRunning) && n.Fallback != nil {
		logger.Warn("tray not running, printing reminder instead", "reason", err)
		_, err = fmt.Fprintf(n.Fallback, "🔔 %s\n", text)
		return err
	}
	if err != nil {
		return err
	}

	return n.post(ctx, lock, WebhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

// LockfileDir is where the tray writes its lockfile. The tray's
// settings.json may move it out of the default config directory.
func LockfileDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(trayDir, "settings.json"))
	if err != nil {
		return trayDir, nil
	}
	var settings struct {
		Settings struct {
			LockfileDir string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if json.Unmarshal(data, &settings) == nil && settings.Settings.LockfileDir != "" {
		return settings.Settings.LockfileDir, nil
	}
	return trayDir, nil
}

// readTrayLock parses the lockfile and checks that its pid still belongs
// to the tray. A missing lockfile or a stale pid wraps ErrTrayNotRunning.
func readTrayLock(path string) (trayLock, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return trayLock{}, fmt.Errorf("%s: %w", constants.TrayAppExecutable, ErrTrayNotRunning)
	}

	fields := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(fields) != 3 {
		return trayLock{}, errors.New("lockfile is malformed")
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var lock trayLock
	switch {
	case fields[0] == "":
		return trayLock{}, errors.New("port in lockfile is empty")
	case fields[2] == "":
		return trayLock{}, errors.New("secret in lockfile is empty")
	}
	if lock.Port, err = strconv.Atoi(fields[0]); err != nil {
		return trayLock{}, errors.New("invalid port number in lockfile")
	}
	if lock.Port < 1 || lock.Port > 65535 {
		return trayLock{}, fmt.Errorf("port number %d is outside valid range (1-65535)", lock.Port)
	}
	if lock.PID, err = strconv.Atoi(fields[1]); err != nil {
		return trayLock{}, errors.New("invalid process ID in lockfile")
	}
	lock.Secret = fields[2]

	process, err := findProcessFunc(lock.PID)
	if err != nil || process == nil {
		return trayLock{}, fmt.Errorf("%s (pid %d): %w", constants.TrayAppExecutable, lock.PID, ErrTrayNotRunning)
	}
	if exe := process.Executable(); !strings.HasPrefix(exe, constants.TrayAppExecutable) {
		return trayLock{}, fmt.Errorf("pid %d is not %s (is %s): %w", lock.PID, constants.TrayAppExecutable, exe, ErrTrayNotRunning)
	}
	return lock, nil
}

func (n *Notifier) post(ctx context.Context, lock trayLock, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("http://127.0.0.1:%d", lock.Port)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Resurs-Secret", lock.Secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("tray rejected notification with status %d: %s", res.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
