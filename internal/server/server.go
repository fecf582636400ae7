package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// QuestionsPath is the route the question bank is served on.
const QuestionsPath = "/questions.csv"

var (
	allowedOrigins = handlers.AllowedOrigins([]string{"*"})
	allowedMethods = handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodOptions})
	allowedHeaders = handlers.AllowedHeaders([]string{"Accept", "Content-Type"})
)

// BankServer serves a local question bank file over HTTP so the quiz can
// be pointed at a URL.
type BankServer struct {
	file   string
	logger *zap.Logger
}

// New creates a BankServer for the CSV file at path.
func New(path string, logger *zap.Logger) *BankServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BankServer{file: path, logger: logger}
}

// SetupRoutes registers the server's routes on r.
func (s *BankServer) SetupRoutes(r *mux.Router) {
	r.HandleFunc(QuestionsPath, s.QuestionsFunc).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/healthz", s.HealthFunc).Methods(http.MethodGet)
	s.logger.Debug("set up routes for bank server", zap.String("file", s.file))
}

// Handler returns the routed handler wrapped with request logging and CORS.
func (s *BankServer) Handler() http.Handler {
	r := mux.NewRouter()
	s.SetupRoutes(r)

	access := zap.NewStdLog(s.logger.Named("access")).Writer()
	return handlers.LoggingHandler(access,
		handlers.CORS(allowedHeaders, allowedMethods, allowedOrigins)(r))
}

// QuestionsFunc writes the bank file as CSV.
func (s *BankServer) QuestionsFunc(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(s.file)
	if err != nil {
		s.logger.Error("open question bank", zap.String("file", s.file), zap.Error(err))
		http.Error(w, "question bank unavailable", http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.logger.Error("stat question bank", zap.String("file", s.file), zap.Error(err))
		http.Error(w, "question bank unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (s *BankServer) HealthFunc(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// ListenAndServe serves on addr until ctx is canceled.
func (s *BankServer) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving question bank",
			zap.String("addr", addr),
			zap.String("path", QuestionsPath),
			zap.String("file", s.file))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down bank server")
		return srv.Shutdown(shutdownCtx)
	}
}
