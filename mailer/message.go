package mailer

// Kinds of mail the site sends
const (
	KindBooking    = "booking"
	KindNewsletter = "newsletter"
	KindContact    = "contact"
)

// Message is a rendered mail ready to send. It is also the body of a mail job
// on the queue.
type Message struct {
	Kind    string `json:"kind"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
