// Command voicegatewayd runs the voice gateway: it registers with the SIP
// provider, answers accepted calls into the realtime AI orchestrator, and
// serves the operator dashboard, wired the way the reference bridge's
// cmd/sip-tg-bridge/main.go wires its UA/transport/service triad, with the
// Telegram peer replaced by the dashboard/metrics/security stack §6 and §4
// require.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/agent"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/agent/builtin"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/callengine"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/codingbackend"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/config"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/dashboard"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/gateway"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/metrics"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/pricing"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/realtime"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/security"
	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	db, err := store.Open(cfg.DatabasePath, logger)
	if err != nil {
		logger.Error("opening database failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	firewall := security.NewFirewall(cfg.FirewallEnabled, cfg.FirewallAllow, cfg.PublicIdentity, cfg.ProviderHost)
	blacklist := security.NewBlacklistStore(db.DB, logger)
	blacklist.MaxFailedAttempts = cfg.MaxFailedAttempts
	blacklist.FailedWindow = cfg.FailedWindow
	priceTable := pricing.NewTable(cfg.Pricing)

	registry := agent.NewRegistry()
	registry.Register(builtin.NewSecurityAgent(cfg.AccessCode, cfg.MaxStrikes, logger), logger)
	registry.Register(builtin.NewMainAgent(registry, logger), logger)

	workspaceDir := cfg.WorkspaceDir
	if workspaceDir == "" {
		workspaceDir = "./workspace"
	}
	projectStore, err := codingbackend.NewFSProjectStore(db, workspaceDir)
	if err != nil {
		logger.Error("setting up coding workspace failed", "error", err)
		os.Exit(1)
	}
	codeBackend := codingbackend.NewCLIBackend(projectStore.ProjectDir, db, "", logger)

	hub := dashboard.NewHub(nil, logger)
	reg := gateway.NewRegistry(logger)

	registry.Register(builtin.NewCodeAgent(codeBackend, projectStore, hubProgressBroadcaster{hub}, logger), logger)

	collector := metrics.NewCollector(reg, blacklist, reg, db, time.Now())
	prometheus.MustRegister(collector)

	var jwtSecret []byte
	if cfg.DashboardJWT != "" {
		jwtSecret = []byte(cfg.DashboardJWT)
	}
	dashSrv := dashboard.NewServer(hub, reg, firewall, jwtSecret, logger)
	dashAddr := cfg.DashboardAddr
	if dashAddr == "" {
		dashAddr = ":8080"
	}
	httpSrv := &http.Server{Addr: dashAddr, Handler: dashSrv}
	go func() {
		logger.Info("dashboard: listening", "addr", dashAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("dashboard: server stopped", "error", err)
		}
	}()

	modelIDs := map[string]string{
		"mini":    cfg.MiniModelID,
		"premium": cfg.PremiumModelID,
	}
	realtimeCfg := realtime.Config{
		BaseURL: cfg.RealtimeBaseURL,
		APIKey:  cfg.ProviderAPIKey,
		Voice:   "alloy",

		VADThreshold:     0.5,
		VADPrefixPadding: 300 * time.Millisecond,
		VADSilenceDur:    500 * time.Millisecond,
		AutoResponse:     true,
	}

	handler := &gateway.Handler{
		Registry:  reg,
		Agents:    registry,
		Hub:       hub,
		Firewall:  firewall,
		Blacklist: blacklist,
		Pricing:   priceTable,
		Recorder:  db,
		ModelIDs:  modelIDs,
		Realtime:  realtimeCfg,
		Logger:    logger,
	}

	engineCfg := callengine.Config{
		ProviderHost:   cfg.ProviderHost,
		BindPort:       cfg.SIPBindPort,
		Transport:      cfg.SIPTransport,
		ExternalIP:     cfg.SIPExternalIP,
		AuthUser:       cfg.SIPAuthUser,
		AuthPassword:   cfg.SIPAuthPass,
		AuthRealm:      cfg.SIPAuthRealm,
		RegisterEvery:  cfg.RegisterEvery,
		RTPPortMin:     cfg.RTPPortMin,
		RTPPortMax:     cfg.RTPPortMax,
		FrameDuration:  cfg.FrameDuration,
		InviteTimeout:  cfg.InviteTimeout,
		EnableDTMF:     cfg.EnableDTMF,
		MaxActiveCalls: cfg.MaxActiveCalls,
	}
	engine, err := callengine.NewEngine(engineCfg, func(ctx context.Context, call *callengine.Call) {
		handler.Handle(ctx, call)
	}, logger)
	if err != nil {
		logger.Error("sip engine init failed", "error", err)
		os.Exit(1)
	}

	err = engine.Start(ctx)

	logger.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = httpSrv.Shutdown(shutdownCtx)

	if err != nil && ctx.Err() == nil {
		logger.Error("gateway stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

// hubProgressBroadcaster adapts the dashboard hub's generic event broadcast
// to the code agent's ProgressBroadcaster interface, emitting the
// coding_progress event type named in §6.
type hubProgressBroadcaster struct {
	hub *dashboard.Hub
}

func (b hubProgressBroadcaster) BroadcastCodingProgress(projectID, status, action string, filesChanged, toolsUsed []string) {
	if b.hub == nil {
		return
	}
	b.hub.Broadcast("coding_progress", map[string]any{
		"project_id":    projectID,
		"status":        status,
		"action":        action,
		"files_changed": filesChanged,
		"tools_used":    toolsUsed,
	})
}
