package pantry

import (
	"Pantry-Tracker/domain"
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// Mailer matches mailing.SendMail.
type Mailer func(toEmail string, subject string, textBody string, htmlBody string) error

var ErrNoDigestRecipient = errors.New("no digest recipient configured")

var digestHTML = template.Must(template.New("digest").Funcs(template.FuncMap{"abs": abs}).Parse(`<h2>Expiring soon</h2>
<ul>
{{- range . }}
<li><strong>{{ .Name }}</strong> ({{ .ExpiryDate.Format "2006-01-02" }}): {{ if lt .DaysRemaining 0 }}expired {{ abs .DaysRemaining }} day(s) ago{{ else }}{{ .DaysRemaining }} day(s) left{{ end }}{{ if .Opened }}, opened{{ end }}</li>
{{- end }}
</ul>`))

type ExpiryDigest struct {
	pantryService PantryService
	send          Mailer
}

func NewExpiryDigest(pantryService PantryService, send Mailer) *ExpiryDigest {
	return &ExpiryDigest{
		pantryService: pantryService,
		send:          send,
	}
}

// Send mails the entries that are expiring soon to recipient and reports how
// many were listed. Nothing is sent when the list is empty.
func (d *ExpiryDigest) Send(ctx context.Context, recipient string) (int, error) {
	if recipient == "" {
		return 0, ErrNoDigestRecipient
	}

	entries, err := d.pantryService.GetExpiringSoon(ctx)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	text, html, err := RenderDigest(entries)
	if err != nil {
		return 0, err
	}

	subject := fmt.Sprintf("%d pantry item(s) expiring soon", len(entries))
	if err := d.send(recipient, subject, text, html); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func RenderDigest(entries []domain.PantryEntryResponse) (string, string, error) {
	var text strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&text, "- %s (%s): ", e.Name, e.ExpiryDate.Format("2006-01-02"))
		if e.DaysRemaining < 0 {
			fmt.Fprintf(&text, "expired %d day(s) ago", abs(e.DaysRemaining))
		} else {
			fmt.Fprintf(&text, "%d day(s) left", e.DaysRemaining)
		}
		if e.Opened {
			text.WriteString(", opened")
		}
		text.WriteString("\n")
	}

	var html bytes.Buffer
	if err := digestHTML.Execute(&html, entries); err != nil {
		return "", "", err
	}
	return text.String(), html.String(), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
