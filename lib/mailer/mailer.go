package mailer

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Attachment is an in-memory file attached to a message.
type Attachment struct {
	FileName string
	Body     []byte
}

type Provider interface {
	Send(to, subject, body string, attachments ...Attachment) error
}

var Instance Provider

func Connect(user, password, host, port, sender string) error {
	instance, err := NewInstance(user, password, host, port, sender)
	if err != nil {
		return err
	}
	Instance = instance
	return nil
}

func NewInstance(user, password, host, port, sender string) (Provider, error) {
	i := &impl{
		sender: sender,
	}
	if host == "" || port == "" {
		return i, nil
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid smtp port %q", port)
	}
	i.dialer = gomail.NewDialer(host, portNum, user, password)
	return i, nil
}

type impl struct {
	dialer *gomail.Dialer
	sender string
}

func (i impl) Send(to, subject, body string, attachments ...Attachment) error {
	logger := log.
		WithField("recipient", to).
		WithField("subject", subject)
	if i.dialer == nil {
		logger.Warn("email not sent: mailer is not configured")
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", i.sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	for _, attachment := range attachments {
		content := attachment.Body
		m.Attach(attachment.FileName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	if err := i.dialer.DialAndSend(m); err != nil {
		logger.WithError(err).Error("email sending failed")
		return errors.Wrap(err, "failed to send email")
	}
	logger.
		WithField("attachments", len(attachments)).
		Info("email sent")
	return nil
}
