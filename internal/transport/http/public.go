package http

import (
	"errors"
	"log/slog"
	"net/http"

	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/services/homepage"
	"portfolio/internal/services/submission"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "session"

	flashSuccess = "success"
	flashError   = "error"

	MessageSubmitted = "Thank you for your message! We will get back to you soon."
	MessageInvalid   = "There was an error with your submission. Please check the form."

	homeTemplate = "home.html"
)

type Message struct {
	Level string
	Text  string
}

type homePage struct {
	*homepage.Payload
	Messages []Message
}

// Home renders the landing page.
func (r *Routers) Home(c echo.Context) error {
	const op = "http.routers.Home"
	log := r.log.With(slog.String("op", op))

	payload, err := r.Homepage.Build(c.Request().Context(), homepage.EmptyForm())
	if err != nil {
		log.Error("failed to build homepage", sl.Err(err))
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	return c.Render(http.StatusOK, homeTemplate, homePage{
		Payload:  payload,
		Messages: r.popFlashes(c, log),
	})
}

// ContactPage sends direct visits of the form endpoint back to the landing
// page.
func (r *Routers) ContactPage(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/")
}

// SubmitContact handles the landing page contact form. Accepted and spam
// submissions get the same acknowledgment; invalid ones re-render the page
// with the input and field errors.
func (r *Routers) SubmitContact(c echo.Context) error {
	const op = "http.routers.SubmitContact"
	log := r.log.With(slog.String("op", op))

	var raw submission.RawSubmission
	if err := c.Bind(&raw); err != nil {
		log.Warn("failed to bind contact form", sl.Err(err))
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	_, err := r.Submissions.Submit(c.Request().Context(), raw)

	var verr *submission.ValidationError
	switch {
	case err == nil, errors.Is(err, submission.ErrSpamSuspected):
		r.addFlash(c, log, flashSuccess, MessageSubmitted)
		return c.Redirect(http.StatusSeeOther, "/")
	case errors.As(err, &verr):
		payload, buildErr := r.Homepage.Build(c.Request().Context(), homepage.FormWithErrors(verr))
		if buildErr != nil {
			log.Error("failed to build homepage", sl.Err(buildErr))
			return echo.NewHTTPError(http.StatusInternalServerError)
		}

		return c.Render(http.StatusUnprocessableEntity, homeTemplate, homePage{
			Payload:  payload,
			Messages: []Message{{Level: flashError, Text: MessageInvalid}},
		})
	}

	log.Error("failed to submit contact form", sl.Err(err))
	return echo.NewHTTPError(http.StatusInternalServerError)
}

func (r *Routers) addFlash(c echo.Context, log *slog.Logger, level, text string) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		log.Warn("session unavailable", sl.Err(err))
		return
	}

	sess.AddFlash(text, level)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		log.Warn("failed to save session", sl.Err(err))
	}
}

func (r *Routers) popFlashes(c echo.Context, log *slog.Logger) []Message {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		log.Warn("session unavailable", sl.Err(err))
		return nil
	}

	var msgs []Message
	for _, level := range []string{flashSuccess, flashError} {
		for _, f := range sess.Flashes(level) {
			if text, ok := f.(string); ok {
				msgs = append(msgs, Message{Level: level, Text: text})
			}
		}
	}

	if len(msgs) > 0 {
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Warn("failed to save session", sl.Err(err))
		}
	}

	return msgs
}
