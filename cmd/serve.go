package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chording/chord"
	"github.com/jsphweid/chording/constants"
	"github.com/jsphweid/chording/db"
	"github.com/jsphweid/chording/logger"
	"github.com/jsphweid/chording/model"
	"github.com/jsphweid/chording/pitch"
	"github.com/jsphweid/chording/session"
	"github.com/jsphweid/chording/tuning"
	"github.com/jsphweid/chording/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the HTTP API",
	Long:  `Serves transposing, sessions, sheets and pitch detection over HTTP.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.Open(constants.GetDBPath())
		if err != nil {
			return err
		}
		defer store.Close()

		log := logger.Get()
		server := NewServer(store, session.NewRegistry(), log)
		origins := util.SplitAndTrim(constants.GetAllowedOrigins(), ",")

		addr := fmt.Sprintf(":%d", constants.GetPort())
		log.Infof("listening on %s", addr)
		return http.ListenAndServe(addr, NewRouter(server, origins))
	},
}

// a full MaxWindowSize window of JSON floats fits well inside this
const maxDetectBody = 1 << 20

type Server struct {
	store    *db.Store
	sessions *session.Registry
	analyzer *pitch.Analyzer
	log      logger.Logger
}

func NewServer(store *db.Store, sessions *session.Registry, log logger.Logger) *Server {
	return &Server{store: store, sessions: sessions, analyzer: pitch.NewAnalyzer(), log: log}
}

func NewRouter(s *Server, allowedOrigins []string) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/health", s.HandleHealth).Methods("GET")
	router.HandleFunc("/transpose", s.HandleTranspose).Methods("POST")

	router.HandleFunc("/sessions", s.HandleCreateSession).Methods("POST")
	router.HandleFunc("/sessions/{id}", s.HandleGetSession).Methods("GET")
	router.HandleFunc("/sessions/{id}", s.HandleDeleteSession).Methods("DELETE")
	router.HandleFunc("/sessions/{id}/{action:up|down|reset}", s.HandleSessionAction).Methods("POST")

	router.HandleFunc("/detect", s.HandleDetect).Methods("POST")
	router.HandleFunc("/tunings", s.HandleTunings).Methods("GET")

	router.HandleFunc("/sheets", s.HandleListSheets).Methods("GET")
	router.HandleFunc("/sheets", s.HandleAddSheet).Methods("POST")
	router.HandleFunc("/sheets/{id}", s.HandleGetSheet).Methods("GET")
	router.HandleFunc("/sheets/{id}", s.HandleDeleteSheet).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("could not decode request body: %w", err)
	}
	return nil
}

// status for errors coming out of the store and registry
func errorStatus(err error) int {
	switch {
	case errors.Is(err, db.ErrSheetNotFound), errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrEmptySheet):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, model.HealthResponse{Status: "ok"})
}

func (s *Server) HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequest
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	text := chord.TransposeText(input.Text, input.Semitones)
	chords := make([]string, 0)
	for _, t := range chord.Tokens(text) {
		chords = append(chords, t.String())
	}
	respondJSON(w, http.StatusOK, model.TransposeResponse{Text: text, Chords: chords})
}

func (s *Server) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var input model.SessionRequest
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	respondJSON(w, http.StatusCreated, s.sessions.Create(input.Text, input.Key))
}

func (s *Server) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, errorStatus(err), err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) HandleSessionAction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var action func(*chord.Session) string
	switch vars["action"] {
	case "up":
		action = (*chord.Session).Up
	case "down":
		action = (*chord.Session).Down
	default:
		action = (*chord.Session).Reset
	}

	view, err := s.sessions.Apply(vars["id"], func(cs *chord.Session) { action(cs) })
	if err != nil {
		respondError(w, errorStatus(err), err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(mux.Vars(r)["id"]); err != nil {
		respondError(w, errorStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) HandleDetect(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDetectBody)

	var input model.DetectRequest
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if len(input.Samples) > constants.MaxWindowSize {
		respondError(w, http.StatusBadRequest,
			fmt.Errorf("window of %d samples is longer than %d", len(input.Samples), constants.MaxWindowSize))
		return
	}
	if input.SampleRate <= 0 {
		respondError(w, http.StatusBadRequest, errors.New("sample_rate must be positive"))
		return
	}

	name := input.Tuning
	if name == "" {
		name = constants.DefaultTuning
	}
	profile, err := lookupTuning(name)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	res := s.analyzer.Analyze(input.Samples, input.SampleRate, profile.Targets())
	respondJSON(w, http.StatusOK, detectResponse(res))
}

func detectResponse(res pitch.Result) model.DetectResponse {
	out := model.DetectResponse{Detected: res.Detected(), Reason: res.Reason.String()}
	if !res.Detected() {
		return out
	}

	est := res.Estimate
	out.Frequency = est.Frequency
	out.Note = est.Note
	if est.String >= 0 {
		str := est.String
		out.String = &str
		out.Target = est.Target
		out.Cents = est.Cents
		out.Status = string(est.Status)
	}
	return out
}

func (s *Server) HandleTunings(w http.ResponseWriter, r *http.Request) {
	res := make([]model.TuningView, 0)
	for _, p := range tuning.All() {
		res = append(res, model.TuningView{Name: p.Name, Notes: p.Notes, Frequencies: p.Frequencies})
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) HandleListSheets(w http.ResponseWriter, r *http.Request) {
	sheets, err := s.store.List()
	if err != nil {
		s.log.Errorf("listing sheets: %v", err)
		respondError(w, errorStatus(err), err)
		return
	}
	respondJSON(w, http.StatusOK, model.SheetListResponse{Sheets: sheets})
}

func (s *Server) HandleAddSheet(w http.ResponseWriter, r *http.Request) {
	var input model.SheetRequest
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sheet, err := s.store.Add(input.Title, input.Artist, input.Key, input.Body)
	if err != nil {
		respondError(w, errorStatus(err), err)
		return
	}
	respondJSON(w, http.StatusCreated, sheet)
}

func (s *Server) HandleGetSheet(w http.ResponseWriter, r *http.Request) {
	semitones := 0
	if raw := r.URL.Query().Get("semitones"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Errorf("semitones must be an integer: %w", err))
			return
		}
		semitones = n
	}

	sheet, err := s.store.GetTransposed(mux.Vars(r)["id"], semitones)
	if err != nil {
		respondError(w, errorStatus(err), err)
		return
	}
	respondJSON(w, http.StatusOK, sheet)
}

func (s *Server) HandleDeleteSheet(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(mux.Vars(r)["id"]); err != nil {
		respondError(w, errorStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
