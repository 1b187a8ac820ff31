package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendReportAlert mails the admin when a new content report comes in.
func SendReportAlert(toEmail, reporter, reason string) error {
	from := os.Getenv("EMAIL_FROM")
	pass := os.Getenv("EMAIL_PASS")

	msg := fmt.Sprintf(`Subject: DevForum - New content report

A new report was filed by %s:

%s

Review it at /reports.

DevForum
`, reporter, reason)

	return smtp.SendMail(
		"smtp.gmail.com:587",
		smtp.PlainAuth("", from, pass, "smtp.gmail.com"),
		from,
		[]string{toEmail},
		[]byte(msg),
	)
}
