package api

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"midnightcafe/internal/gate"
	"midnightcafe/internal/utils"
	"midnightcafe/internal/views"
)

const (
	emailField   = "email"
	maxFormBytes = 64 << 10
)

type handler struct {
	gate       *gate.Gate
	logger     *utils.Logger
	stylesheet string
}

// IndexHandler serves the gate page. A POST carrying an email field is
// validated and stored before the page is chosen; there is no redirect.
func (h *handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	st := h.gate.Current()

	if r.Method == http.MethodPost {
		if value, ok := h.postedEmail(w, r); ok {
			st = h.gate.Submit(value)
		}
	}

	var page templ.Component
	if st.Open {
		page = views.Login(views.LoginData{
			Stylesheet: h.stylesheet,
			Email:      st.Echo,
			Error:      st.ErrorMessage(),
		})
	} else {
		page = views.Menu(h.stylesheet)
	}
	templ.Handler(page).ServeHTTP(w, r)
}

// postedEmail returns the email form field and whether it was sent at all.
func (h *handler) postedEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.logger.Warnf("%s parse form: %v", RequestID(r.Context()), err)
		return "", false
	}
	values, ok := r.PostForm[emailField]
	if !ok || len(values) == 0 {
		return "", false
	}
	// A repeated field keeps its last value.
	return values[len(values)-1], true
}
