package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Limits struct {
		RequestsPerSec float64 `yaml:"requests_per_sec"`
		Burst          int     `yaml:"burst"`
	} `yaml:"limits"`

	// Intake watches the placement-cell inbox for postings mailed in by
	// registered companies.
	Intake struct {
		Enabled     bool   `yaml:"enabled"`
		IMAPHost    string `yaml:"imap_host"`
		IMAPPort    int    `yaml:"imap_port"`
		Username    string `yaml:"username"`
		Mailbox     string `yaml:"mailbox"`
		PollSeconds int    `yaml:"poll_seconds"`
	} `yaml:"intake"`

	SMTP struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`

	Notify struct {
		AMQPURL string `yaml:"amqp_url"`
		Queue   string `yaml:"queue"`
	} `yaml:"notify"`

	Reporting struct {
		TopRecruiters int `yaml:"top_recruiters"`
	} `yaml:"reporting"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
