package application

import (
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/soujunior/vagas-api/config"
	"github.com/soujunior/vagas-api/pkg/helpers"
	"github.com/soujunior/vagas-api/pkg/mailer"
)

const testPassword = "Str0ng!Pass"

func testConfig() *config.Config {
	return &config.Config{
		AppName:          "vagas-api",
		CompanyName:      "Sou Junior",
		ConfirmEmailURL:  "http://front.test/confirm-email",
		ResetPasswordURL: "http://front.test/recovery-password",
		ConfirmTokenTTL:  time.Hour,
		MailSendEnabled:  true,
	}
}

func newTestMail(t *testing.T) (*MailService, *mockPublisher, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := helpers.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rdb.Close() })
	pub := &mockPublisher{}
	return NewMailService(testConfig(), pub, rdb, helpers.NewNopLogger()), pub, mr
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := helpers.HashPassword(plain)
	require.NoError(t, err)
	return h
}

func lastJob(t *testing.T, pub *mockPublisher) mailer.EmailJob {
	t.Helper()
	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.NotEmpty(t, pub.msgs)
	job, ok := pub.msgs[len(pub.msgs)-1].(mailer.EmailJob)
	require.True(t, ok)
	return job
}

func tokenFromAction(t *testing.T, job mailer.EmailJob) string {
	t.Helper()
	raw, _ := job.Data["ActionURL"].(string)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	tok := u.Query().Get("token")
	require.NotEmpty(t, tok)
	return tok
}

func messageOf(r Result) string {
	if m, ok := r.Data.(Message); ok {
		return m.Message
	}
	return ""
}

func strPtr(s string) *string { return &s }

func f64(v float64) *float64 { return &v }
