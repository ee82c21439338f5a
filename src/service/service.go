package service

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/mosaicnetworks/midline/src/node"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Service ...
type Service struct {
	sync.Mutex

	bindAddress string
	node        *node.Node
	logger      *logrus.Entry
}

// NewService ...
func NewService(bindAddress string, n *node.Node, logger *logrus.Entry) *Service {
	service := Service{
		bindAddress: bindAddress,
		node:        n,
		logger:      logger,
	}

	service.registerHandlers()

	return &service
}

// registerHandlers registers the API handlers with the DefaultServerMux of the
// http package. It is possible that another server in the same process is
// simultaneously using the DefaultServerMux. In which case, the handlers will
// be accessible from both servers. This is usefull when midline is used
// in-memory and expecpted to use the same endpoint (address:port) as the
// application's API.
func (s *Service) registerHandlers() {
	s.logger.Debug("Registering Midline API handlers")
	http.HandleFunc("/stats", s.makeHandler(s.GetStats))
	http.HandleFunc("/series", s.makeHandler(s.GetSeriesNames))
	http.HandleFunc("/series/", s.makeHandler(s.GetSummary))
	http.HandleFunc("/window/", s.makeHandler(s.GetWindow))
	http.HandleFunc("/chart/", s.makeHandler(s.GetChart))
	http.Handle("/metrics", promhttp.Handler())
}

func (s *Service) makeHandler(fn func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Lock()
		defer s.Unlock()

		// enable CORS
		w.Header().Set("Access-Control-Allow-Origin", "*")

		fn(w, r)
	}
}

// Serve calls ListenAndServe. This is a blocking call. It is not necessary to
// call Serve when midline is used in-memory and another server has already
// been started with the DefaultServerMux and the same address:port
// combination. Indeed, midline API handlers have already been registered when
// the service was instantiated.
func (s *Service) Serve() {
	s.logger.WithField("bind_address", s.bindAddress).Debug("Serving Midline API")

	// Use the DefaultServerMux
	err := http.ListenAndServe(s.bindAddress, nil)
	if err != nil {
		s.logger.Error(err)
	}
}

// GetStats ...
func (s *Service) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := s.node.GetStats()

	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(stats)
}

// GetSeriesNames ...
func (s *Service) GetSeriesNames(w http.ResponseWriter, r *http.Request) {
	names := s.node.SeriesNames()

	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(names)
}

// GetSummary ...
func (s *Service) GetSummary(w http.ResponseWriter, r *http.Request) {
	param := r.URL.Path[len("/series/"):]

	summary, err := s.node.GetSummary(param)

	if err != nil {
		s.logger.WithError(err).Errorf("Retrieving summary %s", param)

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(summary)
}

// GetWindow ...
func (s *Service) GetWindow(w http.ResponseWriter, r *http.Request) {
	param := r.URL.Path[len("/window/"):]

	skipIndex := -1

	if qs := r.URL.Query().Get("skip"); qs != "" {
		skip, err := strconv.Atoi(qs)

		if err != nil {
			s.logger.WithError(err).Errorf("Parsing skip parameter %s", qs)

			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}

		skipIndex = skip
	}

	window, err := s.node.GetWindow(param, skipIndex)

	if err != nil {
		s.logger.WithError(err).Errorf("Retrieving window %s", param)

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(window)
}
