package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong or
// questionable about it. Errors block saving; warnings don't.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Limits.RequestsPerSec < 0 {
		res.addErr("limits.requests_per_sec must be >= 0")
	}
	if out.Limits.Burst < 0 {
		res.addErr("limits.burst must be >= 0")
	}
	if out.Limits.RequestsPerSec > 0 && out.Limits.Burst == 0 {
		out.Limits.Burst = int(out.Limits.RequestsPerSec) * 2
	}

	if out.Intake.Enabled {
		if strings.TrimSpace(out.Intake.IMAPHost) == "" {
			res.addErr("intake.imap_host is required when intake.enabled=true")
		}
		if out.Intake.IMAPPort == 0 {
			res.addErr("intake.imap_port is required when intake.enabled=true")
		}
		if strings.TrimSpace(out.Intake.Username) == "" {
			res.addErr("intake.username is required when intake.enabled=true")
		}
		if strings.TrimSpace(out.Intake.Mailbox) == "" {
			out.Intake.Mailbox = "INBOX"
		}
		if out.Intake.PollSeconds <= 0 {
			res.addErr("intake.poll_seconds must be > 0")
		} else if out.Intake.PollSeconds < 60 {
			res.addWarn("intake.poll_seconds is very low (%d) and may trip IMAP rate limits.", out.Intake.PollSeconds)
		}
	}

	if out.SMTP.Enabled {
		if strings.TrimSpace(out.SMTP.Host) == "" {
			res.addErr("smtp.host is required when smtp.enabled=true")
		}
		if out.SMTP.Port == 0 {
			res.addErr("smtp.port is required when smtp.enabled=true")
		}
		if strings.TrimSpace(out.SMTP.Username) == "" {
			res.addErr("smtp.username is required when smtp.enabled=true")
		}
		if strings.TrimSpace(out.Notify.AMQPURL) == "" {
			res.addWarn("smtp.enabled=true but notify.amqp_url is empty; mail will not be queued.")
		}
	}

	if strings.TrimSpace(out.Notify.AMQPURL) != "" && strings.TrimSpace(out.Notify.Queue) == "" {
		out.Notify.Queue = "cpms_mail"
	}

	if out.Reporting.TopRecruiters <= 0 {
		out.Reporting.TopRecruiters = 10
	} else if out.Reporting.TopRecruiters > 50 {
		res.addWarn("reporting.top_recruiters is %d; the report table gets unwieldy past 50.", out.Reporting.TopRecruiters)
	}

	return out, res
}
