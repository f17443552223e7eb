package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var templates = template.Must(template.New("mail").Parse(`
{{define "booking"}}
<h2>Booking Confirmed!</h2>
<p>Dear {{.FirstName}} {{.LastName}},</p>
<p>Your booking has been confirmed with the following details:</p>
<ul>
    {{if .Title}}<li><strong>Stay:</strong> {{.Title}}{{if .Location}}, {{.Location}}{{end}}</li>{{end}}
    <li><strong>Booking ID:</strong> {{.BookingID}}</li>
    <li><strong>Check-in:</strong> {{.CheckIn}}</li>
    <li><strong>Check-out:</strong> {{.CheckOut}}</li>
    <li><strong>Guests:</strong> {{.Guests}}</li>
    <li><strong>Rooms:</strong> {{.Rooms}}</li>
    {{if .Total}}<li><strong>Total:</strong> ₹{{.Total}}</li>{{end}}
</ul>
<p>Thank you for choosing Adventour!</p>
{{end}}

{{define "newsletter"}}
<h2>Welcome to Adventour!</h2>
<p>Thank you for subscribing to our newsletter. You'll receive the latest travel deals and destination inspiration.</p>
<p>Happy travels!</p>
{{end}}

{{define "contact"}}
<h3>New Contact Form Submission</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
{{end}}
`))

// BookingMail holds the fields of the booking confirmation
type BookingMail struct {
	To        string
	FirstName string
	LastName  string
	BookingID string
	Title     string
	Location  string
	CheckIn   string
	CheckOut  string
	Guests    int
	Rooms     int
	Total     int
}

// ContactMail holds a contact form submission
type ContactMail struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// BookingConfirmation renders the mail sent to the guest after booking
func BookingConfirmation(data BookingMail) (Message, error) {
	if data.Rooms < 1 {
		data.Rooms = 1
	}
	body, err := render("booking", data)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Kind:    KindBooking,
		To:      data.To,
		Subject: "Booking Confirmation - Adventour",
		HTML:    body,
	}, nil
}

// NewsletterWelcome renders the mail sent to a new subscriber
func NewsletterWelcome(to string) (Message, error) {
	body, err := render("newsletter", nil)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Kind:    KindNewsletter,
		To:      to,
		Subject: "Welcome to Adventour Newsletter!",
		HTML:    body,
	}, nil
}

// ContactNotification renders a contact submission for the site mailbox
func ContactNotification(mailbox string, data ContactMail) (Message, error) {
	body, err := render("contact", data)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Kind:    KindContact,
		To:      mailbox,
		Subject: "Contact Form: " + data.Subject,
		HTML:    body,
	}, nil
}

func render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s mail: %w", name, err)
	}
	return buf.String(), nil
}
