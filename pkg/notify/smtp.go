package notify

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SMTPNotifier delivers messages as plain-text mail. The destination is the
// recipient address.
type SMTPNotifier struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger *logrus.Logger
}

func NewSMTPNotifier(host string, port int, from, username, password string) *SMTPNotifier {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &SMTPNotifier{
		addr:   fmt.Sprintf("%s:%d", host, port),
		from:   from,
		auth:   auth,
		logger: logger,
	}
}

func (n *SMTPNotifier) Send(destination, message string) error {
	subject := "Work log update"
	if idx := strings.Index(message, "\n"); idx > 0 {
		subject = message[:idx]
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", n.from)
	fmt.Fprintf(&body, "To: %s\r\n", destination)
	fmt.Fprintf(&body, "Subject: %s\r\n", subject)
	fmt.Fprintf(&body, "Message-ID: <%s@work-log-server>\r\n", uuid.NewString())
	fmt.Fprintf(&body, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	body.WriteString("\r\n")
	body.WriteString(message)

	if err := smtp.SendMail(n.addr, n.auth, n.from, []string{destination}, []byte(body.String())); err != nil {
		n.logger.WithError(err).WithField("to", destination).Error("Failed to send mail")
		return err
	}

	n.logger.WithField("to", destination).Debug("Mail sent")
	return nil
}
