package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"midnightcafe/internal/gate"
	"midnightcafe/internal/utils"
)

// Deps are the collaborators the router needs.
type Deps struct {
	Gate       *gate.Gate
	Logger     *utils.Logger
	Stylesheet string
}

func NewRouter(d Deps) *mux.Router {
	if d.Logger == nil {
		d.Logger = utils.Discard()
	}
	h := &handler{gate: d.Gate, logger: d.Logger, stylesheet: d.Stylesheet}

	r := mux.NewRouter()
	r.Use(requestIDMiddleware, accessLogMiddleware(d.Logger))
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := fmt.Fprintln(w, "OK"); err != nil {
			d.Logger.Warnf("write health response: %v", err)
		}
	}).Methods(http.MethodGet)
	r.HandleFunc("/", h.IndexHandler).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/index.php", h.IndexHandler).Methods(http.MethodGet, http.MethodPost)
	return r
}
