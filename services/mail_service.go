package services

import (
	"fmt"
	"log"

	"olympus-app/config"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	host     string
	port     int
	sender   string
	password string
}

func NewMailer() *Mailer {
	return &Mailer{
		host:     config.SMTPHost,
		port:     config.SMTPPort,
		sender:   config.SMTPSender,
		password: config.SMTPPassword,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	if m.host == "" {
		log.Printf("SMTP disabled, skipping mail to %s (%s)", to, subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.sender, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("Failed to send mail to %s: %v", to, err)
		return err
	}
	return nil
}

// DefectNoticeBody is the grievance text recorded and mailed when production
// finishes with rejected units.
func DefectNoticeBody(defective, total int) string {
	return fmt.Sprintf("Dear Customer,\nWe regret to inform you that %d out of the %d pens you ordered "+
		"were found to be defective. We sincerely apologize for the inconvenience caused. "+
		"Please let us know if you would prefer to cancel the shipment or receive the remaining "+
		"non-defective pens. We appreciate your understanding and will act promptly based on your preference.",
		defective, total)
}

func (m *Mailer) SendDefectNotice(to string, defective, total int) error {
	return m.send(to, "About your Olympus Pen Works order", DefectNoticeBody(defective, total))
}

func (m *Mailer) SendPurchaseOrderNotice(to, materialName string, grams, totalCost float64) error {
	body := fmt.Sprintf("A new purchase order has been placed:\n\nMaterial: %s\nQuantity: %.0f g\nTotal: %.2f\n\n"+
		"Please confirm the delivery schedule.", materialName, grams, totalCost)
	return m.send(to, fmt.Sprintf("Purchase order: %s", materialName), body)
}
