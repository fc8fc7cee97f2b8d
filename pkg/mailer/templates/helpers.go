package templates

import (
	"time"

	"github.com/soujunior/vagas-api/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) { d.Time = t.UTC().Format("02/01/2006 15:04") }
}

func WithActionURL(url string) Option { return func(d *EmailData) { d.ActionURL = url } }

func WithExpiresIn(dur time.Duration) Option {
	return func(d *EmailData) {
		utc := time.Now().Add(dur).UTC()
		d.ExpiresAt = utc
		d.ExpiresAtText = utc.Format("02/01/2006 15:04 MST")
	}
}

func WithJob(title, candidate string) Option {
	return func(d *EmailData) {
		d.JobTitle = title
		d.CandidateName = candidate
	}
}

// NewBaseEmailData fills the common fields from config, then applies options.
func NewBaseEmailData(cfg *config.Config, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		RecipientEmail: email,
		Type:           typ,

		CompanyName: cfg.CompanyName,
		AppName:     cfg.AppName,
		LogoURL:     cfg.LogoURL,
		SupportURL:  cfg.SupportURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewConfirmEmailData(cfg *config.Config, name, email, confirmURL string, opts ...Option) map[string]any {
	opts = append([]Option{WithActionURL(confirmURL)}, opts...)
	return ToMap(NewBaseEmailData(cfg, ConfirmEmail, name, email, opts...))
}

func NewRecoverPasswordData(cfg *config.Config, name, email, resetURL string, opts ...Option) map[string]any {
	opts = append([]Option{WithActionURL(resetURL)}, opts...)
	return ToMap(NewBaseEmailData(cfg, RecoverPassword, name, email, opts...))
}

func NewCandidacyReceivedData(cfg *config.Config, companyName, email, jobTitle, candidate string, opts ...Option) map[string]any {
	opts = append([]Option{WithJob(jobTitle, candidate)}, opts...)
	return ToMap(NewBaseEmailData(cfg, CandidacyReceived, companyName, email, opts...))
}
