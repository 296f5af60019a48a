package cli

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/gitrdm/gomusiko/pkg/musiko"
)

// server exposes the three relations as JSON endpoints. Each request
// builds a fresh query; the engine shares no state across calls, so the
// handlers need no synchronization.
type server struct {
	th    *musiko.Theory
	limit int
	log   *slog.Logger
}

func newServer(th *musiko.Theory, limit int, log *slog.Logger) *server {
	return &server{th: th, limit: limit, log: log}
}

func (s *server) router() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	r.Use(s.requestLog)
	r.HandleFunc("/query/note", s.handleNote).Methods("POST")
	r.HandleFunc("/query/interval", s.handleInterval).Methods("POST")
	r.HandleFunc("/query/chord", s.handleChord).Methods("POST")
	return r
}

// requestLog tags every request with an ID and logs its route.
func (s *server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		s.log.Info("query", "id", id, "path", r.URL.Path)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

// Null JSON fields mean "leave this argument open".
type noteRequest struct {
	Class  *string `json:"class"`
	Octave *int    `json:"octave"`
	Pitch  *int    `json:"pitch"`
	Limit  int     `json:"limit"`
}

type intervalRequest struct {
	Name     *string `json:"name"`
	Distance *int    `json:"distance"`
	From     *int    `json:"from"`
	To       *int    `json:"to"`
	Limit    int     `json:"limit"`
}

type chordRequest struct {
	Quality string `json:"quality"`
	Bottom  *int   `json:"bottom"`
	Middle  *int   `json:"middle"`
	Top     *int   `json:"top"`
	Limit   int    `json:"limit"`
}

type queryResponse struct {
	Results [][]interface{} `json:"results"`
}

func (s *server) handleNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Class != nil {
		if _, err := s.th.Space.PositionOf(*req.Class); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	class := musiko.Fresh("class")
	octave := musiko.Fresh("octave")
	pitch := musiko.Fresh("pitch")
	goal := musiko.Conj(
		bindString(class, req.Class),
		bindInt(octave, req.Octave),
		bindInt(pitch, req.Pitch),
		s.th.Noteo(class, octave, pitch),
	)
	s.respond(w, goal, s.capLimit(req.Limit), class, octave, pitch)
}

func (s *server) handleInterval(w http.ResponseWriter, r *http.Request) {
	var req intervalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var distance int
	switch {
	case req.Distance != nil:
		distance = *req.Distance
	case req.Name != nil:
		d, err := s.th.Intervals.DistanceOf(*req.Name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		distance = d
	default:
		http.Error(w, "one of name or distance is required", http.StatusBadRequest)
		return
	}

	a := musiko.Fresh("a")
	b := musiko.Fresh("b")
	goal := musiko.Conj(
		bindInt(a, req.From),
		bindInt(b, req.To),
		s.th.Intervalo(distance, a, b),
	)
	s.respond(w, goal, s.capLimit(req.Limit), a, b)
}

func (s *server) handleChord(w http.ResponseWriter, r *http.Request) {
	var req chordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	quality := musiko.Quality(req.Quality)
	if quality != musiko.Major && quality != musiko.Minor {
		http.Error(w, "quality must be major or minor", http.StatusBadRequest)
		return
	}

	a := musiko.Fresh("bottom")
	b := musiko.Fresh("middle")
	c := musiko.Fresh("top")
	goal := musiko.Conj(
		bindInt(a, req.Bottom),
		bindInt(b, req.Middle),
		bindInt(c, req.Top),
		s.th.Chordo(quality, a, b, c),
	)
	s.respond(w, goal, s.capLimit(req.Limit), a, b, c)
}

// respond runs the query and writes the binding tuples. An unsatisfiable
// goal is success with an empty result list, never an HTTP error.
func (s *server) respond(w http.ResponseWriter, goal musiko.Goal, limit int, vars ...*musiko.Var) {
	tuples := musiko.RunTuples(limit, goal, vars...)
	resp := queryResponse{Results: make([][]interface{}, 0, len(tuples))}
	for _, row := range tuples {
		vals := make([]interface{}, len(row))
		for i, term := range row {
			if a, ok := term.(*musiko.Atom); ok {
				vals[i] = a.Value()
			} else {
				vals[i] = term.String()
			}
		}
		resp.Results = append(resp.Results, vals)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// capLimit bounds per-request limits by the server-wide cap, so a
// client cannot ask for an unbounded enumeration.
func (s *server) capLimit(requested int) int {
	if requested <= 0 || requested > s.limit {
		return s.limit
	}
	return requested
}

func bindString(v *musiko.Var, s *string) musiko.Goal {
	if s == nil {
		return musiko.Success
	}
	return musiko.Eq(v, musiko.NewAtom(*s))
}

func bindInt(v *musiko.Var, n *int) musiko.Goal {
	if n == nil {
		return musiko.Success
	}
	return musiko.Eq(v, musiko.NewAtom(*n))
}
