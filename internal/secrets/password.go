package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/akshaynaik00018/cpms/internal/config"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "cpms"

func Get(account string) (string, error) {
	if strings.TrimSpace(account) == "" {
		return "", errors.New("keyring account name is empty")
	}
	pw, err := keyring.Get(KeyringService, account)
	if err != nil || strings.TrimSpace(pw) == "" {
		return "", errors.New("password not found in keychain")
	}
	return pw, nil
}

func Set(account, password string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, account, password)
}

func Delete(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}

// IMAPAccount is the keychain slot for the intake inbox password.
func IMAPAccount(cfg config.Config) string {
	return fmt.Sprintf("cpms:imap:%s@%s", cfg.Intake.Username, cfg.Intake.IMAPHost)
}

// SMTPAccount is the keychain slot for the outbound mail password.
func SMTPAccount(cfg config.Config) string {
	return fmt.Sprintf("cpms:smtp:%s@%s", cfg.SMTP.Username, cfg.SMTP.Host)
}
