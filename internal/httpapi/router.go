package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Candidates
	cah := CandidatesHandler{DB: d.DB, Lifecycle: d.Lifecycle, Stats: d.Stats}
	mux.HandleFunc("/candidates", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  cah.List,
		http.MethodPost: cah.Create,
	}))
	mux.HandleFunc("/candidates/", cah.ByPath)

	// Companies
	coh := CompaniesHandler{DB: d.DB}
	mux.HandleFunc("/companies", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  coh.List,
		http.MethodPost: coh.Create,
	}))
	mux.HandleFunc("/companies/", coh.ByPath)

	// Postings
	ph := PostingsHandler{DB: d.DB, Hub: d.Hub}
	mux.HandleFunc("/postings", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  ph.List,
		http.MethodPost: ph.Create,
	}))
	mux.HandleFunc("/postings/", ph.ByPath)

	// Applications
	ah := ApplicationsHandler{DB: d.DB, Lifecycle: d.Lifecycle}
	mux.HandleFunc("/applications", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Apply,
	}))
	mux.HandleFunc("/applications/", ah.ByPath)

	// Stats and reports
	sth := StatsHandler{Stats: d.Stats}
	mux.HandleFunc("/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sth.Report,
	}))
	mux.HandleFunc("/reports/placements", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sth.ReportPDF,
	}))

	// Notifications
	nh := NotificationsHandler{DB: d.DB}
	mux.HandleFunc("/notifications", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: nh.List,
	}))
	mux.HandleFunc("/notifications/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: nh.MarkRead,
	}))

	// Chat rooms
	chh := ChatHandler{Relay: d.Relay}
	mux.HandleFunc("/chat/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  chh.Stream,
		http.MethodPost: chh.Post,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/imap", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetIMAPPassword,
	}))
	mux.HandleFunc("/api/secrets/smtp", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetSMTPPassword,
	}))

	// Intake
	ih := IntakeHandler{
		DB:           d.DB,
		CfgVal:       d.CfgVal,
		IntakeStatus: d.IntakeStatus,
		Hub:          d.Hub,
		RunIntake:    d.RunIntake,
	}
	mux.HandleFunc("/intake/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ih.Status,
	}))
	mux.HandleFunc("/intake/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ih.Run,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Maintenance
	oh := OpsHandler{DB: d.DB}
	mux.HandleFunc("/db/checkpoint", oh.Checkpoint)
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: oh.Health,
	}))

	return mux
}
