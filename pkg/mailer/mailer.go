package mailer

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers a message over one channel. Implementations: the
// transactional-email API client, the SMTP sender and the console sink.
type Sender interface {
	Send(msg *Message) error
	Name() string
}
