package game

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/charro-ambient/internal/site"
)

// GeneralInquiry is the service named by inquiries that start from the
// navbar or hero rather than a service panel.
const GeneralInquiry = "Consulta general"

// prompter wraps the native dialogs the window opens.
type prompter interface {
	// Email returns zenity.ErrCanceled when the visitor backs out.
	Email(service string) (string, error)
	Info(msg string) error
	Error(msg string) error
	// Track returns the path of an audio file to loop under the site.
	Track() (string, error)
}

type zenityPrompter struct {
	title string
}

func (z zenityPrompter) Email(service string) (string, error) {
	return zenity.Entry(
		fmt.Sprintf("%s: %s\nDéjanos tu correo y te contactamos.", site.RequestInfo, service),
		zenity.Title(z.title),
	)
}

func (z zenityPrompter) Info(msg string) error {
	return zenity.Info(msg, zenity.Title(z.title), zenity.InfoIcon)
}

func (z zenityPrompter) Error(msg string) error {
	return zenity.Error(msg, zenity.Title(z.title), zenity.ErrorIcon)
}

func (z zenityPrompter) Track() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Ambient track"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
}

// chooseAmbient lets the visitor pick the looping ambient track.
func (g *Game) chooseAmbient() error {
	if g.sound == nil || !g.sound.Ready() {
		return nil
	}
	path, err := g.prompt.Track()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.sound.PlayAmbient(path)
}

// contact runs the inquiry dialog for service. Backing out is not an error
// and an invalid address is reported to the visitor, not the caller.
func (g *Game) contact(service string) error {
	email, err := g.prompt.Email(service)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("contact dialog: %w", err)
	}

	q, err := site.NewInquiry(service, email)
	if err != nil {
		g.logger.Printf("rejected inquiry: %v", err)
		if derr := g.prompt.Error("El correo no es válido: " + email); derr != nil && !errors.Is(derr, zenity.ErrCanceled) {
			return fmt.Errorf("contact dialog: %w", derr)
		}
		return nil
	}

	g.inquiries = append(g.inquiries, q)
	g.logger.Printf("inquiry received: %s", q)
	if err := g.prompt.Info(fmt.Sprintf("Gracias, te escribiremos a %s.\nReferencia: %s", q.Email, q.ID)); err != nil && !errors.Is(err, zenity.ErrCanceled) {
		return fmt.Errorf("contact dialog: %w", err)
	}
	return nil
}
