package config

import (
	"errors"
	"os"
	"path/filepath"
)

const defaultYAML = `app:
  port: 8080
  data_dir: ""

limits:
  requests_per_sec: 20
  burst: 40

intake:
  enabled: false
  imap_host: ""
  imap_port: 993
  username: ""
  mailbox: "INBOX"
  poll_seconds: 300

smtp:
  enabled: false
  host: ""
  port: 587
  username: ""
  from: ""

notify:
  amqp_url: ""
  queue: "cpms_mail"

reporting:
  top_recruiters: 10
`

// EnsureUserConfig creates data_dir/config.yml with defaults on first run
// and returns its path.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(userPath, []byte(defaultYAML), 0o644); err != nil {
		return "", err
	}
	return userPath, nil
}
