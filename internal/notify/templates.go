package notify

import (
	"bytes"
	"html/template"
)

const ConfirmationSubject = "Registration Confirmation"

var confirmationTmpl = template.Must(template.New("confirmation").Parse(
	`<h1>Welcome, {{.FullName}}!</h1>
<p>Thank you for registering with us. Your account has been created successfully.</p>
`))

// Confirmation renders the registration confirmation email for one customer.
func Confirmation(to, fullName string) (Message, error) {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, struct{ FullName string }{fullName}); err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		Subject: ConfirmationSubject,
		HTML:    body.String(),
	}, nil
}
