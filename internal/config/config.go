package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	AppName    = "EvalReport"
	AppVersion = "1.0.0"
)

// Chrome headers for TLS fingerprinting (must match azuretls Chrome profile version)
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="135", "Chromium";v="135", "Not-A.Brand";v="8"`
)

// DefaultUserAgent is sent with document downloads.
var DefaultUserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + ")"

type Config struct {
	Addr      string `env:"ADDR" envDefault:":8000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	AIProvider       string        `env:"AI_PROVIDER" envDefault:"openai"`
	AIAPIKey         string        `env:"OPENAI_API_KEY"`
	AIBaseURL        string        `env:"AI_BASE_URL"`
	AIReportModel    string        `env:"AI_REPORT_MODEL" envDefault:"gpt-4o"`
	AITranslateModel string        `env:"AI_TRANSLATE_MODEL" envDefault:"gpt-4o-mini"`
	AITemperature    float64       `env:"AI_TEMPERATURE" envDefault:"0.7"`
	AITimeout        time.Duration `env:"AI_TIMEOUT" envDefault:"120s"`
	AIRateLimit      int           `env:"AI_RATE_LIMIT" envDefault:"5"`

	// InstitutionName is the university the candidate is evaluated for.
	InstitutionName  string `env:"INSTITUTION_NAME" envDefault:"Alma Mater Europaea University"`
	MaxUploadMB      int64  `env:"MAX_UPLOAD_MB" envDefault:"20"`
	MaxDocumentChars int    `env:"MAX_DOCUMENT_CHARS" envDefault:"120000"`

	DownloadTimeout     time.Duration `env:"DOWNLOAD_TIMEOUT" envDefault:"30s"`
	DownloadImpersonate bool          `env:"DOWNLOAD_IMPERSONATE" envDefault:"false"`
	ProxyURL            string        `env:"HTTP_PROXY_URL"`

	SMTPHost     string   `env:"SMTP_HOST"`
	SMTPPort     int      `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string   `env:"SMTP_USERNAME"`
	SMTPPassword string   `env:"SMTP_PASSWORD"`
	SMTPTLS      string   `env:"SMTP_TLS" envDefault:"mandatory"`
	MailFrom     string   `env:"MAIL_FROM"`
	MailTo       []string `env:"MAIL_DEFAULT_TO" envSeparator:","`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.AIProvider = strings.ToLower(strings.TrimSpace(cfg.AIProvider))
	return cfg, nil
}

// MailEnabled reports whether SMTP delivery is configured.
func (c Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.MailFrom != ""
}

// MaxUploadBytes returns the upload and download size cap in bytes.
func (c Config) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return 20 << 20
	}
	return c.MaxUploadMB << 20
}
