package server

import (
	"net/http"

	"github.com/Bitcoinera/aragon/routing"
)

// pathRequest is the body of POST /api/path
type pathRequest struct {
	DAO        string  `json:"dao"`
	InstanceID string  `json:"instance_id"`
	Params     *string `json:"params"`
}

// pathResponse is the reply to POST /api/path
type pathResponse struct {
	Path string `json:"path"`
}

// HandleLocator parses an explicit pathname/search pair.
// GET /api/locator?pathname=/mydao/voting&search=?p=abc
func (s *Server) HandleLocator(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	pathname := r.URL.Query().Get("pathname")
	if pathname == "" {
		writeError(w, http.StatusBadRequest, "Missing pathname parameter")
		return
	}
	search := r.URL.Query().Get("search")

	locator := s.parser.Parse(pathname, search)
	writeJSON(w, http.StatusOK, locator)
}

// HandlePath builds the canonical path for organization fields.
// POST /api/path {"dao": "...", "instance_id": "...", "params": "..."}
func (s *Server) HandlePath(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req pathRequest
	if err := readJSON(w, r, &req); err != nil {
		return
	}
	if req.DAO == "" {
		writeError(w, http.StatusBadRequest, "Missing dao field")
		return
	}

	path := s.currentBuilder().BuildPath(routing.OrgFields{
		DAO:        req.DAO,
		InstanceID: req.InstanceID,
		Params:     req.Params,
	})
	writeJSON(w, http.StatusOK, pathResponse{Path: path})
}

// HandlePreferences parses the global-preferences portion of a search string.
// GET /api/preferences?search=?preferences=/network&labels=xyz
func (s *Server) HandlePreferences(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	// RawQuery keeps the preference markers intact; the search parameter
	// itself contains ? and & characters
	search := r.URL.Query().Get("search")
	if search == "" {
		search = "?" + r.URL.RawQuery
	}

	prefs := routing.ParsePreferences(search)
	writeJSON(w, http.StatusOK, prefs)
}

// HandleHealth reports service liveness.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleNavigate treats the request URL itself as a dashboard navigation:
// legacy suffixed-domain URLs get a permanent redirect to the canonical
// short form, everything else answers with the parsed locator.
func (s *Server) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	search := ""
	if r.URL.RawQuery != "" {
		search = "?" + r.URL.RawQuery
	}

	locator := s.parser.Parse(r.URL.Path, search)
	if locator.Redirect != nil {
		target := locator.Redirect.Pathname + locator.Redirect.Search
		s.logger.Infow("Redirecting legacy organization URL",
			"from", locator.Path,
			"to", target)
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}

	writeJSON(w, http.StatusOK, locator)
}
