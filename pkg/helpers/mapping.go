package helpers

import (
	"fmt"
	"strings"

	"github.com/soujunior/vagas-api/pkg/mailer"
	mailtpl "github.com/soujunior/vagas-api/pkg/mailer/templates"
)

// PrepareEmailJob normalizes a queued job so it can be rendered with the universal template.
// Jobs that already carry a pre-rendered body are left untouched.
func PrepareEmailJob(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["Email"] = job.To
	}
	if v, ok := job.Data["RecipientEmail"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["RecipientEmail"] = job.To
	}

	switch strings.ToLower(job.Template) {
	case mailtpl.ConfirmEmail, mailtpl.RecoverPassword, mailtpl.CandidacyReceived:
		if v, ok := job.Data["Type"]; !ok || fmt.Sprintf("%v", v) == "" {
			job.Data["Type"] = strings.ToLower(job.Template)
		}
		job.Template = mailtpl.Universal
	}

	if job.Subject == "" && job.Template == mailtpl.Universal {
		job.Subject = mailtpl.Subject(fmt.Sprintf("%v", job.Data["Type"]))
	}
}
