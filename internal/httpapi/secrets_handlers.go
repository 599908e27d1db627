package httpapi

import (
	"net/http"
	"sync/atomic"

	"github.com/akshaynaik00018/cpms/internal/config"
	"github.com/akshaynaik00018/cpms/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setPasswordReq struct {
	Password string `json:"password"`
}

func (h SecretsHandler) SetIMAPPassword(w http.ResponseWriter, r *http.Request) {
	h.setPassword(w, r, func(cfg config.Config) string { return secrets.IMAPAccount(cfg) })
}

func (h SecretsHandler) SetSMTPPassword(w http.ResponseWriter, r *http.Request) {
	h.setPassword(w, r, func(cfg config.Config) string { return secrets.SMTPAccount(cfg) })
}

func (h SecretsHandler) setPassword(w http.ResponseWriter, r *http.Request, account func(config.Config) string) {
	var req setPasswordReq
	if !decodeBody(w, r, &req) {
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	if err := secrets.Set(account(cfg), req.Password); err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation", "failed to store password: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
