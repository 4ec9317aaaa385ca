// Package notification composes and delivers appointment confirmation mails in the background.
package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dacaceros97/mentorias-backend/internal/entities"
)

// PlaceholderMentorName is shown when the assigned mentor's name cannot be resolved.
const PlaceholderMentorName = "Our team"

// Message is a rendered mail ready for a Sender.
type Message struct {
	ID       string
	To       string
	Subject  string
	HTMLBody string
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<h1>Hello {{.StudentName}}!</h1>
<p>Your English mentoring session has been booked successfully.</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.Time}}</p>
<p><strong>Duration:</strong> {{.Duration}} minutes</p>
<p>Your assigned mentor is: <strong>{{.MentorName}}</strong></p>
<p>We will contact you shortly with the details of the video call.</p>
<p>Thank you for trusting our services.</p>
<p>Kind regards,<br>The English Mentoring Team</p>
`))

type confirmationData struct {
	StudentName string
	Date        string
	Time        string
	Duration    int
	MentorName  string
}

// Composer renders confirmation messages.
type Composer struct {
	subject string
}

// NewComposer returns a composer using the given subject line.
func NewComposer(subject string) *Composer {
	return &Composer{subject: subject}
}

// Compose renders the confirmation for appt. An empty mentorName falls back to PlaceholderMentorName.
func (c *Composer) Compose(appt entities.Appointment, mentorName string) (Message, error) {
	mentorName = strings.TrimSpace(mentorName)
	if mentorName == "" {
		mentorName = PlaceholderMentorName
	}

	var buf bytes.Buffer
	err := confirmationTmpl.Execute(&buf, confirmationData{
		StudentName: appt.StudentName,
		Date:        displayDate(appt.AppointmentDate),
		Time:        appt.AppointmentTime,
		Duration:    appt.DurationMinutes,
		MentorName:  mentorName,
	})
	if err != nil {
		return Message{}, fmt.Errorf("render confirmation: %w", err)
	}

	return Message{
		To:       appt.StudentEmail,
		Subject:  c.subject,
		HTMLBody: buf.String(),
	}, nil
}

// displayDate renders ISO dates as "Sat Jun 01 2024" and leaves anything else untouched.
func displayDate(date string) string {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return d.Format("Mon Jan 02 2006")
}
