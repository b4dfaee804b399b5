// Package mail delivers contact-form submissions through an external
// SMTP relay. Delivery is single-shot: there is no retry or queueing,
// a failed send fails the originating request.
package mail

import (
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
)

var (
	// ErrAuth means the relay rejected our credentials.
	ErrAuth = errors.New("smtp authentication failed")
	// ErrUnreachable means the relay host could not be resolved.
	ErrUnreachable = errors.New("smtp server unreachable")
)

// Message is one contact-form submission.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Sender delivers contact messages. The handler depends on this
// interface so tests can count sends without a live relay.
type Sender interface {
	Send(m Message) error
}

// SMTPMailer sends through a single configured relay, addressed to a
// fixed operator inbox.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	to       string
}

func NewSMTPMailer(host, port, username, password, to string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, username: username, password: password, to: to}
}

// Verify greets the relay once at startup. Best-effort: callers log the
// error and continue.
func (m *SMTPMailer) Verify() error {
	client, err := smtp.Dial(m.host + ":" + m.port)
	if err != nil {
		return classify(err)
	}
	defer client.Close()

	if err := client.Hello("localhost"); err != nil {
		return classify(err)
	}
	return client.Quit()
}

func (m *SMTPMailer) Send(msg Message) error {
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	raw := m.compose(msg)

	if err := smtp.SendMail(m.host+":"+m.port, auth, m.username, []string{m.to}, raw); err != nil {
		return classify(err)
	}
	return nil
}

func (m *SMTPMailer) compose(msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + m.username + "\r\n")
	b.WriteString("To: " + m.to + "\r\n")
	b.WriteString("Reply-To: " + msg.Email + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody(msg))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// htmlBody renders the submission with line breaks converted to
// paragraph breaks, matching what the operator's inbox expects.
func htmlBody(msg Message) string {
	return fmt.Sprintf(
		"<h2>New Contact Form Submission</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p><strong>Message:</strong></p>"+
			"<p>%s</p>",
		msg.Name, msg.Email, msg.Subject,
		strings.ReplaceAll(msg.Body, "\n", "<br>"),
	)
}

// classify folds transport errors into the three failure categories the
// API distinguishes: bad credentials, unresolvable relay, anything else.
func classify(err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		}
	}
	return err
}
