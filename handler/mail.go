package handler

import (
	"bytes"
	"errors"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
)

var (
	// ErrMailHostRequired is returned when a mail handler has no SMTP host.
	ErrMailHostRequired = errors.New("smtp host is required")
	// ErrMailRecipientRequired is returned when a mail handler has no recipient.
	ErrMailRecipientRequired = errors.New("at least one recipient is required")
)

// SendMailFunc has the signature of smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// MailHandler mails every entry at or above MinSeverity. Delivery is
// synchronous; the SMTP round trip blocks the logging call.
type MailHandler struct {
	Base
	addr     string
	auth     smtp.Auth
	from     string
	to       []string
	subject  string
	min      core.Severity
	sendMail SendMailFunc
	stats    *Stats
}

// MailConfig holds configuration for mail handler
type MailConfig struct {
	// Host and Port of the SMTP relay (default port: 25)
	Host string
	Port int
	// Username and Password enable PLAIN auth when Username is set
	Username string
	Password string
	// From is the envelope sender (default: logcore@<host>)
	From string
	// To lists the recipients
	To []string
	// Subject prefix (default: "[logcore]")
	Subject string
	// MinSeverity filters out entries below it (default: Debug)
	MinSeverity core.Severity
	// Formatter renders the mail body (default: TextFormatter)
	Formatter formatter.Formatter
	// SendMail overrides smtp.SendMail
	SendMail SendMailFunc
}

// NewMailHandler creates a new mail handler
func NewMailHandler(cfg MailConfig) (*MailHandler, error) {
	if cfg.Host == "" {
		return nil, ErrMailHostRequired
	}
	if len(cfg.To) == 0 {
		return nil, ErrMailRecipientRequired
	}
	if cfg.Port == 0 {
		cfg.Port = 25
	}
	if cfg.From == "" {
		cfg.From = "logcore@" + cfg.Host
	}
	if cfg.Subject == "" {
		cfg.Subject = "[logcore]"
	}
	if cfg.SendMail == nil {
		cfg.SendMail = smtp.SendMail
	}

	h := &MailHandler{
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from:     cfg.From,
		to:       cfg.To,
		subject:  cfg.Subject,
		min:      cfg.MinSeverity,
		sendMail: cfg.SendMail,
		stats:    NewStats(),
	}
	if cfg.Username != "" {
		h.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	h.initBase(cfg.Formatter)
	return h, nil
}

// Write implements Handler. Entries below the minimum severity are
// accepted without sending anything.
func (h *MailHandler) Write(entry core.Entry) bool {
	if entry.Severity < h.min {
		return true
	}

	body, err := h.Render(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return false
	}

	if err := h.send(entry, body); err != nil {
		h.stats.IncrementFailed()
		return false
	}
	h.stats.IncrementDelivered()
	return true
}

func (h *MailHandler) send(entry core.Entry, body string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("smtp: send panicked")
		}
	}()
	return h.sendMail(h.addr, h.auth, h.from, h.to, h.message(entry, body))
}

// message builds an RFC 5322 message for the entry
func (h *MailHandler) message(entry core.Entry, body string) []byte {
	var buf bytes.Buffer
	buf.WriteString("From: " + h.from + "\r\n")
	buf.WriteString("To: " + strings.Join(h.to, ", ") + "\r\n")
	buf.WriteString("Subject: " + h.subject + " " + entry.Severity.String() + " " + entry.TypeName + "\r\n")
	buf.WriteString("Date: " + entry.Date.Format(time.RFC1123Z) + "\r\n")
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	buf.WriteString("\r\n")
	return buf.Bytes()
}

// Stats returns a snapshot of the current statistics
func (h *MailHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}
