package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env       string
	Port      string
	LogLevel  string
	LogFormat string

	ClientOrigin   string
	PublicBaseURL  string
	AllowedOrigins []string

	ResumeDataPath string
	ResumePDFPath  string

	PerplexityAPIKey  string
	PerplexityBaseURL string
	PerplexityModel   string
	LLMTimeout        time.Duration

	RateLimitMax    int
	RateLimitWindow time.Duration
	RedisURL        string

	OwnerEmail string
	Mail       MailConfig
	Calendar   CalendarConfig
}

// MailConfig groups credentials for every mail transport; a transport is
// enabled only when its credentials are complete.
type MailConfig struct {
	SendGridAPIKey    string
	SendGridFromEmail string

	AWSRegion    string
	SESFromEmail string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	GmailSender        string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string
}

type CalendarConfig struct {
	ClientEmail string
	PrivateKey  string
	CalendarID  string
}

// IsDevelopment reports whether error details may be exposed to callers.
func (c Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads environment variables, optionally from a .env file if present.
// In development .env.development takes precedence.
func Load() Config {
	env := os.Getenv("NODE_ENV")
	if env == "" {
		env = "development"
	}
	if env == "development" {
		_ = godotenv.Load(filepath.Join(".", ".env.development"))
	}
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return Config{
		Env:       env,
		Port:      v.GetString("PORT"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),

		ClientOrigin:   v.GetString("CLIENT_ORIGIN"),
		PublicBaseURL:  strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		ResumeDataPath: v.GetString("RESUME_DATA_PATH"),
		ResumePDFPath:  v.GetString("RESUME_PDF_PATH"),

		PerplexityAPIKey:  v.GetString("PERPLEXITY_API_KEY"),
		PerplexityBaseURL: v.GetString("PERPLEXITY_BASE_URL"),
		PerplexityModel:   v.GetString("PERPLEXITY_MODEL"),
		LLMTimeout:        v.GetDuration("LLM_TIMEOUT"),

		RateLimitMax:    v.GetInt("RATE_LIMIT_MAX"),
		RateLimitWindow: v.GetDuration("RATE_LIMIT_WINDOW"),
		RedisURL:        v.GetString("REDIS_URL"),

		OwnerEmail: v.GetString("OWNER_EMAIL"),
		Mail: MailConfig{
			SendGridAPIKey:     v.GetString("SENDGRID_API_KEY"),
			SendGridFromEmail:  v.GetString("SENDGRID_FROM_EMAIL"),
			AWSRegion:          v.GetString("AWS_REGION"),
			SESFromEmail:       v.GetString("SES_FROM_EMAIL"),
			SMTPHost:           v.GetString("SMTP_HOST"),
			SMTPPort:           v.GetInt("SMTP_PORT"),
			SMTPUser:           v.GetString("EMAIL_USER"),
			SMTPPass:           v.GetString("EMAIL_PASS"),
			GmailSender:        v.GetString("GMAIL_SENDER"),
			GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			GoogleRefreshToken: v.GetString("GOOGLE_REFRESH_TOKEN"),
		},
		Calendar: CalendarConfig{
			ClientEmail: v.GetString("GOOGLE_CLIENT_EMAIL"),
			PrivateKey:  v.GetString("GOOGLE_PRIVATE_KEY"),
			CalendarID:  v.GetString("GOOGLE_CALENDAR_ID"),
		},
	}
}

// Origins lists every origin CORS should accept: the client, the local dev
// servers and any extra production origins.
func (c Config) Origins() []string {
	out := []string{c.ClientOrigin, "http://localhost:5173", "http://localhost:5174", "http://localhost:3000"}
	out = append(out, c.AllowedOrigins...)
	seen := make(map[string]bool, len(out))
	origins := out[:0]
	for _, o := range out {
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		origins = append(origins, o)
	}
	return origins
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	// Render assigns port 10000 by default.
	v.SetDefault("PORT", "10000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:5173")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:3001")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "https://avinash-snowy.vercel.app,https://avinash-nayak.vercel.app,https://avinashnayak.in")
	v.SetDefault("RESUME_DATA_PATH", "data/resume.json")
	v.SetDefault("RESUME_PDF_PATH", "data/resume.pdf")
	v.SetDefault("PERPLEXITY_BASE_URL", "https://api.perplexity.ai")
	v.SetDefault("PERPLEXITY_MODEL", "sonar")
	v.SetDefault("LLM_TIMEOUT", "0s")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", "15m")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("GOOGLE_CALENDAR_ID", "primary")
	v.SetDefault("OWNER_EMAIL", "mail.kunal71@gmail.com")
}
