package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SendersFile is the optional senders.yml overlay: extra email addresses or
// domains whose intake mail is trusted even before the company row is
// verified.
type SendersFile struct {
	Intake struct {
		AllowSenders []string `yaml:"allow_senders"`
	} `yaml:"intake"`
}

// LoadSenderAllowlist reads senders.yml next to the main config. A missing
// file is not an error, just an empty allowlist.
func LoadSenderAllowlist(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}

	var sf SendersFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return nil, err
	}

	var out []string
	for _, s := range sf.Intake.AllowSenders {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
