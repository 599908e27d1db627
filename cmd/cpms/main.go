package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"github.com/akshaynaik00018/cpms/internal/chat"
	"github.com/akshaynaik00018/cpms/internal/config"
	"github.com/akshaynaik00018/cpms/internal/events"
	"github.com/akshaynaik00018/cpms/internal/httpapi"
	"github.com/akshaynaik00018/cpms/internal/lifecycle"
	"github.com/akshaynaik00018/cpms/internal/notify"
	"github.com/akshaynaik00018/cpms/internal/scheduler"
	"github.com/akshaynaik00018/cpms/internal/secrets"
	"github.com/akshaynaik00018/cpms/internal/stats"
	"github.com/akshaynaik00018/cpms/internal/store"
)

func main() {
	_ = godotenv.Load()

	dataDir := os.Getenv("CPMS_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// one instance per data dir
	lock := flock.New(filepath.Join(dataDir, "cpms.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another instance already owns %s", dataDir)
	}
	defer lock.Unlock()

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, warn := range vr.Warnings {
		log.Printf(`level=warn msg="config" warning=%q`, warn)
	}
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "cpms.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()
	relay := chat.NewRelay()

	// outbound mail rides through RabbitMQ; without it, notifications stay
	// in-app only
	var queue *notify.MailQueue
	if cfg.Notify.AMQPURL != "" {
		queue, err = notify.OpenMailQueue(cfg.Notify.AMQPURL, cfg.Notify.Queue)
		if err != nil {
			log.Printf(`level=warn msg="mail queue unavailable" err=%q`, err)
			queue = nil
		} else {
			defer queue.Close()
			startMailWorker(queue, cfg)
		}
	}

	notifier := notify.New(db.Pool, hub, queue)
	svc := lifecycle.NewService(db.Pool, notifier)
	statsSvc := &stats.Service{DB: db.Pool, TopN: cfg.Reporting.TopRecruiters}

	var intakeStatus atomic.Value
	intakeStatus.Store(httpapi.IntakeStatus{})

	runIntake := makeIntakeRunner(userCfgPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Intake.Enabled {
		interval := time.Duration(cfg.Intake.PollSeconds) * time.Second
		go scheduler.Every(ctx, interval, "intake", func(ctx context.Context) error {
			current := cfgVal.Load().(config.Config)
			if !current.Intake.Enabled {
				return nil
			}
			return runIntake(ctx, db.Pool, current)
		})
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:           db.Pool,
		Hub:          hub,
		Relay:        relay,
		Lifecycle:    svc,
		Stats:        statsSvc,
		CfgVal:       &cfgVal,
		IntakeStatus: &intakeStatus,
		UserCfgPath:  userCfgPath,
		LoadCfg:      loadCfg,
		RunIntake:    runIntake,
	})

	limiter := httpapi.NewClientLimiter(cfg.Limits.RequestsPerSec, cfg.Limits.Burst)
	middlewares := []httpapi.Middleware{
		httpapi.Cors,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
	}
	if cfg.Limits.RequestsPerSec > 0 {
		middlewares = append(middlewares, limiter.Middleware)
	}

	srv := &http.Server{
		Handler:           httpapi.Chain(mux, middlewares...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	token, err := randomToken(16)
	if err != nil {
		log.Fatal(err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))
	if err := os.WriteFile(filepath.Join(dataDir, "shutdown.token"), []byte(token), 0o600); err != nil {
		log.Printf(`level=warn msg="could not persist shutdown token" err=%q`, err)
	}

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf(`level=info msg="listening" addr=%s data_dir=%s`, addr, dataDir)

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	log.Printf(`level=info msg="stopped"`)
}

// startMailWorker drains the queue into SMTP. The password lives in the OS
// keychain, never in config.
func startMailWorker(queue *notify.MailQueue, cfg config.Config) {
	if !cfg.SMTP.Enabled {
		return
	}
	pw, err := secrets.Get(secrets.SMTPAccount(cfg))
	if err != nil {
		log.Printf(`level=warn msg="smtp password missing; mail worker disabled" err=%q`, err)
		return
	}
	mailer := notify.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, pw, cfg.SMTP.From)

	go func() {
		err := queue.Consume(func(job notify.MailJob) {
			if err := mailer.Send(job); err != nil {
				log.Printf(`level=warn msg="mail send failed" to=%s err=%q`, job.To, err)
			}
		})
		if err != nil {
			log.Printf(`level=warn msg="mail worker stopped" err=%q`, err)
		}
	}()
}
