// Package mailer delivers draw results to groups: over SMTP with go-mail, or
// to the log when no SMTP server is configured.
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"giftexchange/internal/core/ports"
)

// Subject is the subject line of a group's message.
func Subject(group string) string {
	return "Gift Exchange Assignments - " + group
}

func assignmentLines(n ports.GroupNotice) string {
	lines := make([]string, 0, len(n.Pairings))
	for _, p := range n.Pairings {
		lines = append(lines, p.Giver+" - "+p.Recipient)
	}
	return strings.Join(lines, "\n")
}

// PlainBody renders the text/plain part.
func PlainBody(n ports.GroupNotice) string {
	return fmt.Sprintf(
		"Hello %s family,\n\nHere are your gift exchange assignments:\n\n%s\n\nHappy gifting!\n\nGift Exchange Team",
		n.Group, assignmentLines(n),
	)
}

var htmlBody = template.Must(template.New("assignments").Parse(`<h2>Gift Exchange Assignments</h2>
<p>Hello {{.Group}} family,</p>
<p>Here are your gift exchange assignments:</p>
<pre>{{.Lines}}</pre>
<p>Happy gifting!<br>Gift Exchange Team</p>
`))

// HTMLBody renders the text/html alternative with names escaped.
func HTMLBody(n ports.GroupNotice) (string, error) {
	var buf bytes.Buffer
	err := htmlBody.Execute(&buf, struct{ Group, Lines string }{n.Group, assignmentLines(n)})
	return buf.String(), err
}
