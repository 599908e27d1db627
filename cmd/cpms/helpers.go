package main

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/akshaynaik00018/cpms/internal/config"
	"github.com/akshaynaik00018/cpms/internal/intake"
	"github.com/akshaynaik00018/cpms/internal/secrets"
)

// makeIntakeRunner resolves the inbox password and sender allowlist at call
// time so config edits take effect without a restart.
func makeIntakeRunner(userCfgPath string) func(context.Context, *sql.DB, config.Config) error {
	sendersPath := filepath.Join(filepath.Dir(userCfgPath), "senders.yml")
	return func(ctx context.Context, db *sql.DB, cfg config.Config) error {
		pw, err := secrets.Get(secrets.IMAPAccount(cfg))
		if err != nil {
			return err
		}
		allow, err := config.LoadSenderAllowlist(sendersPath)
		if err != nil {
			return err
		}
		return intake.RunOnce(ctx, db, cfg, pw, allow)
	}
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func shutdownHandler(token *string, srv *http.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		// local-only guard
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		got := r.Header.Get("X-Shutdown-Token")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(*token)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// respond first, stop after
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("shutting down\n"))

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}
}
