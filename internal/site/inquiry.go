package site

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// ErrNoService is returned for an inquiry that names no service.
var ErrNoService = errors.New("inquiry: service is required")

// Inquiry is a request for information left through the contact prompt.
type Inquiry struct {
	// ID is the reference quoted back to the visitor.
	ID      string
	Service string
	Email   string
}

// NewInquiry validates the address and normalises it to its bare form.
func NewInquiry(service, email string) (Inquiry, error) {
	service = strings.TrimSpace(service)
	if service == "" {
		return Inquiry{}, ErrNoService
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return Inquiry{}, fmt.Errorf("inquiry: invalid e-mail %q: %w", email, err)
	}
	return Inquiry{ID: uuid.NewString(), Service: service, Email: addr.Address}, nil
}

func (q Inquiry) String() string {
	return fmt.Sprintf("%s <%s> [%s]", q.Service, q.Email, q.ID)
}
