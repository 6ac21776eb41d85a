// Package config loads the static deployment file and layers runtime
// secrets/overrides from the environment on top of it, keeping a checked-in
// YAML file separate from process secrets.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultSIPBindPort     = 5060
	defaultTransport       = "udp"
	defaultSampleRate      = 48000
	defaultChannels        = 1
	defaultFrameMs         = 20
	defaultRTPPortMin      = 4000
	defaultRTPPortMax      = 4100
	defaultInactivityTO    = 15 * time.Second
	defaultInviteTimeout   = 32 * time.Second
	defaultRegisterEvery   = 300 * time.Second
	defaultMaxStrikes      = 3
	defaultFailedWindow    = 12 * time.Hour
	defaultFailedThreshold = 3
)

// PricingRate holds USD-per-1M-token rates for one model.
type PricingRate struct {
	InputText   float64
	InputAudio  float64
	OutputText  float64
	OutputAudio float64
}

// Config is the fully-resolved runtime configuration: YAML file values
// overridden by environment secrets.
type Config struct {
	SIPProvider   string
	SIPBindPort   int
	SIPTransport  string
	SIPExternalIP string
	SIPAuthUser   string
	SIPAuthPass   string
	SIPAuthRealm  string
	RegisterEvery time.Duration

	RTPPortMin int
	RTPPortMax int

	SampleRate    int
	Channels      int
	FrameDuration time.Duration

	InviteTimeout     time.Duration
	InactivityTimeout time.Duration

	MaxActiveCalls int64
	EnableDTMF     bool

	FirewallEnabled bool
	FirewallAllow   []string // CIDR blocks
	PublicIdentity  string
	ProviderHost    string

	AccessCode string

	AgentsDir     string
	WorkspaceDir  string
	DatabasePath  string
	DashboardAddr string
	DashboardJWT  string
	LogLevel      string

	ProviderAPIKey  string
	RealtimeBaseURL string

	MiniModelID    string
	PremiumModelID string
	DefaultModel   string

	Pricing map[string]PricingRate

	MaxFailedAttempts int
	FailedWindow      time.Duration
	MaxStrikes        int
}

type yamlConfig struct {
	SIP struct {
		ProviderHost string `yaml:"provider_host"`
		BindPort     int    `yaml:"bind_port"`
		Transport    string `yaml:"transport"`
		ExternalIP   string `yaml:"external_ip"`
		AuthUser     string `yaml:"auth_user"`
		AuthPassword string `yaml:"auth_password"`
		AuthRealm    string `yaml:"auth_realm"`
		DTMFEnabled  bool   `yaml:"dtmf_enabled"`
		RegisterEach string `yaml:"register_every"`
		RTPPortMin   int    `yaml:"rtp_port_min"`
		RTPPortMax   int    `yaml:"rtp_port_max"`
	} `yaml:"sip"`
	Audio struct {
		SampleRate int `yaml:"sample_rate"`
		Channels   int `yaml:"channels"`
		FrameMs    int `yaml:"frame_ms"`
	} `yaml:"audio"`
	Call struct {
		InviteTimeout     string `yaml:"invite_timeout"`
		InactivityTimeout string `yaml:"inactivity_timeout"`
		MaxActiveCalls    int64  `yaml:"max_active_calls"`
	} `yaml:"call"`
	Firewall struct {
		Enabled        bool     `yaml:"enabled"`
		Allow          []string `yaml:"allow"`
		PublicIdentity string   `yaml:"public_identity"`
	} `yaml:"firewall"`
	Security struct {
		MaxStrikes        int    `yaml:"max_strikes"`
		MaxFailedAttempts int    `yaml:"max_failed_attempts"`
		FailedWindow      string `yaml:"failed_window"`
	} `yaml:"security"`
	Agents struct {
		Dir          string `yaml:"dir"`
		WorkspaceDir string `yaml:"workspace_dir"`
	} `yaml:"agents"`
	Realtime struct {
		BaseURL    string  `yaml:"base_url"`
		MiniModel  string  `yaml:"mini_model"`
		MaxModel   string  `yaml:"premium_model"`
		DefaultKey string  `yaml:"default_model"`
		Pricing    map[string]struct {
			InputText   float64 `yaml:"input_text"`
			InputAudio  float64 `yaml:"input_audio"`
			OutputText  float64 `yaml:"output_text"`
			OutputAudio float64 `yaml:"output_audio"`
		} `yaml:"pricing"`
	} `yaml:"realtime"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Dashboard struct {
		Addr string `yaml:"addr"`
	} `yaml:"dashboard"`
	LogLevel string `yaml:"log_level"`
}

// Load reads the static YAML deployment file at path and layers environment
// secrets/overrides on top (API keys, access code, and other secrets never
// belong in a checked-in file).
func Load(path string) (Config, error) {
	cfg := Config{
		SIPBindPort:       defaultSIPBindPort,
		SIPTransport:      defaultTransport,
		RegisterEvery:     defaultRegisterEvery,
		RTPPortMin:        defaultRTPPortMin,
		RTPPortMax:        defaultRTPPortMax,
		SampleRate:        defaultSampleRate,
		Channels:          defaultChannels,
		FrameDuration:     defaultFrameMs * time.Millisecond,
		InviteTimeout:     defaultInviteTimeout,
		InactivityTimeout: defaultInactivityTO,
		EnableDTMF:        true,
		MaxStrikes:        defaultMaxStrikes,
		MaxFailedAttempts: defaultFailedThreshold,
		FailedWindow:      defaultFailedWindow,
		MiniModelID:       "mini",
		PremiumModelID:    "premium",
		DefaultModel:      "mini",
		RealtimeBaseURL:   "wss://api.openai.com/v1/realtime",
		Pricing:           map[string]PricingRate{},
		LogLevel:          "info",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	if yc.SIP.ProviderHost == "" {
		return Config{}, errors.New("sip.provider_host is required")
	}
	cfg.SIPProvider = yc.SIP.ProviderHost
	if yc.SIP.BindPort > 0 {
		cfg.SIPBindPort = yc.SIP.BindPort
	}
	if yc.SIP.Transport != "" {
		cfg.SIPTransport = strings.ToLower(yc.SIP.Transport)
	}
	if cfg.SIPTransport != "udp" && cfg.SIPTransport != "tcp" {
		return Config{}, fmt.Errorf("sip.transport must be 'udp' or 'tcp', got %q", cfg.SIPTransport)
	}
	cfg.SIPExternalIP = yc.SIP.ExternalIP
	cfg.SIPAuthUser = yc.SIP.AuthUser
	cfg.SIPAuthPass = yc.SIP.AuthPassword
	if (cfg.SIPAuthUser == "") != (cfg.SIPAuthPass == "") {
		return Config{}, errors.New("sip.auth_user and sip.auth_password must be set together")
	}
	cfg.SIPAuthRealm = yc.SIP.AuthRealm
	cfg.EnableDTMF = yc.SIP.DTMFEnabled
	if yc.SIP.RegisterEach != "" {
		d, err := time.ParseDuration(yc.SIP.RegisterEach)
		if err != nil {
			return Config{}, fmt.Errorf("invalid sip.register_every: %w", err)
		}
		cfg.RegisterEvery = d
	}
	if yc.SIP.RTPPortMin > 0 {
		cfg.RTPPortMin = yc.SIP.RTPPortMin
	}
	if yc.SIP.RTPPortMax > 0 {
		cfg.RTPPortMax = yc.SIP.RTPPortMax
	}

	if yc.Audio.SampleRate > 0 {
		cfg.SampleRate = yc.Audio.SampleRate
	}
	if yc.Audio.Channels > 0 {
		cfg.Channels = yc.Audio.Channels
	}
	if cfg.Channels != 1 {
		return Config{}, fmt.Errorf("audio.channels must be 1, got %d", cfg.Channels)
	}
	if yc.Audio.FrameMs > 0 {
		cfg.FrameDuration = time.Duration(yc.Audio.FrameMs) * time.Millisecond
	}

	if yc.Call.InviteTimeout != "" {
		d, err := time.ParseDuration(yc.Call.InviteTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid call.invite_timeout: %w", err)
		}
		cfg.InviteTimeout = d
	}
	if yc.Call.InactivityTimeout != "" {
		d, err := time.ParseDuration(yc.Call.InactivityTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid call.inactivity_timeout: %w", err)
		}
		cfg.InactivityTimeout = d
	}
	if yc.Call.MaxActiveCalls > 0 {
		cfg.MaxActiveCalls = yc.Call.MaxActiveCalls
	}

	cfg.FirewallEnabled = yc.Firewall.Enabled
	cfg.FirewallAllow = yc.Firewall.Allow
	cfg.PublicIdentity = yc.Firewall.PublicIdentity
	cfg.ProviderHost = yc.SIP.ProviderHost

	if yc.Security.MaxStrikes > 0 {
		cfg.MaxStrikes = yc.Security.MaxStrikes
	}
	if yc.Security.MaxFailedAttempts > 0 {
		cfg.MaxFailedAttempts = yc.Security.MaxFailedAttempts
	}
	if yc.Security.FailedWindow != "" {
		d, err := time.ParseDuration(yc.Security.FailedWindow)
		if err != nil {
			return Config{}, fmt.Errorf("invalid security.failed_window: %w", err)
		}
		cfg.FailedWindow = d
	}

	cfg.AgentsDir = yc.Agents.Dir
	cfg.WorkspaceDir = yc.Agents.WorkspaceDir

	if yc.Realtime.BaseURL != "" {
		cfg.RealtimeBaseURL = yc.Realtime.BaseURL
	}
	if yc.Realtime.MiniModel != "" {
		cfg.MiniModelID = yc.Realtime.MiniModel
	}
	if yc.Realtime.MaxModel != "" {
		cfg.PremiumModelID = yc.Realtime.MaxModel
	}
	if yc.Realtime.DefaultKey != "" {
		cfg.DefaultModel = yc.Realtime.DefaultKey
	}
	for key, rate := range yc.Realtime.Pricing {
		cfg.Pricing[key] = PricingRate{
			InputText:   rate.InputText,
			InputAudio:  rate.InputAudio,
			OutputText:  rate.OutputText,
			OutputAudio: rate.OutputAudio,
		}
	}

	cfg.DatabasePath = yc.Database.Path
	cfg.DashboardAddr = yc.Dashboard.Addr
	if yc.LogLevel != "" {
		cfg.LogLevel = yc.LogLevel
	}

	applyEnvOverrides(&cfg)

	if cfg.ProviderAPIKey == "" {
		return Config{}, errors.New("VOICEGW_PROVIDER_API_KEY is required")
	}
	if cfg.AccessCode == "" {
		return Config{}, errors.New("VOICEGW_ACCESS_CODE is required")
	}
	return cfg, nil
}

// applyEnvOverrides layers secrets and per-deployment overrides from the
// environment on top of the parsed YAML file: these values must never live
// in a checked-in config file.
func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("VOICEGW_PROVIDER_API_KEY"); ok {
		cfg.ProviderAPIKey = v
	}
	if v, ok := os.LookupEnv("VOICEGW_ACCESS_CODE"); ok {
		cfg.AccessCode = v
	}
	if v, ok := os.LookupEnv("VOICEGW_SIP_USER"); ok {
		cfg.SIPAuthUser = v
	}
	if v, ok := os.LookupEnv("VOICEGW_SIP_PASSWORD"); ok {
		cfg.SIPAuthPass = v
	}
	if v, ok := os.LookupEnv("VOICEGW_SIP_SERVER"); ok {
		cfg.SIPProvider = v
		cfg.ProviderHost = v
	}
	if v, ok := os.LookupEnv("VOICEGW_SIP_PORT"); ok {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.SIPBindPort = p
		}
	}
	if v, ok := os.LookupEnv("VOICEGW_SIP_PUBLIC_IP"); ok {
		cfg.SIPExternalIP = v
	}
	if v, ok := os.LookupEnv("VOICEGW_DATABASE_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv("VOICEGW_AGENTS_DIR"); ok {
		cfg.AgentsDir = v
	}
	if v, ok := os.LookupEnv("VOICEGW_WORKSPACE_DIR"); ok {
		cfg.WorkspaceDir = v
	}
	if v, ok := os.LookupEnv("VOICEGW_DASHBOARD_JWT_SECRET"); ok {
		cfg.DashboardJWT = v
	}
	if v, ok := os.LookupEnv("VOICEGW_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}

// SlogLevel parses the configured log level string into a slog.Level,
// defaulting to Info on an unrecognized value.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
