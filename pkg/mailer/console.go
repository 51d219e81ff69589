package mailer

import "log"

// ConsoleSender is the terminal fallback: it writes the message to the log
// instead of delivering it. It never fails.
type ConsoleSender struct{}

func NewConsoleSender() *ConsoleSender { return &ConsoleSender{} }

func (s *ConsoleSender) Name() string { return "console" }

func (s *ConsoleSender) Send(msg *Message) error {
	log.Printf("[mail] to=%s subject=%q", msg.To, msg.Subject)
	log.Printf("[mail] body:\n%s", msg.HTML)
	return nil
}
