package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/canchoice-leads/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from, dealerTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		DealerTo: dealerTo,
	}
}

var bookingTemplate = template.Must(template.New("booking").Parse(`
<h2>New meeting booked</h2>
<p><b>{{.FirstName}} {{.LastName}}</b> booked a visit.</p>
<ul>
  <li>Meeting: {{.MeetingTime}}</li>
  <li>Address: {{.FullAddress}}</li>
  <li>Phone: {{.Phone}}</li>
  <li>Email: {{.Email}}</li>
  <li>Dealer: {{.Dealer}}</li>
  <li>CRM record: {{.RecordID}}</li>
</ul>
`))

// SendBookingNotification mails the dealer about a freshly created lead.
func (s *EmailSender) SendBookingNotification(payload queue.LeadCreatedPayload) error {
	data := bookingEmailData{
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Email:       payload.Email,
		Phone:       payload.Phone,
		FullAddress: payload.FullAddress,
		Dealer:      payload.Dealer,
		MeetingTime: payload.MeetingTime,
		RecordID:    payload.RecordID,
	}

	var body bytes.Buffer
	if err := bookingTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("render booking email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.DealerTo)
	m.SetHeader("Subject", fmt.Sprintf("New booking: %s %s on %s", payload.FirstName, payload.LastName, payload.MeetingTime))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send booking email: %w", err)
	}

	return nil
}
