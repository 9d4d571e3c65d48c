// Package rpc defines the HTTP service exposing the beacon node API over the
// local store.
package rpc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/seaham/beacond/beacon-chain/db"
	beaconapi "github.com/seaham/beacond/beacon-chain/rpc/eth/beacon"
	rewardsapi "github.com/seaham/beacond/beacon-chain/rpc/eth/rewards"
	"github.com/seaham/beacond/beacon-chain/rpc/lookup"
)

var log = logrus.WithField("prefix", "rpc")

var httpRequestCount = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_server_requests_total",
		Help: "Total number of requests served by the HTTP API, by route.",
	},
	[]string{"route"},
)

func requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		httpRequestCount.WithLabelValues(route).Inc()
		next.ServeHTTP(w, r)
	})
}

// Config options for the HTTP service.
type Config struct {
	Host     string
	Port     string
	BeaconDB db.ReadOnlyDatabase
}

// Service defining an HTTP server serving the beacon node API.
type Service struct {
	cfg         *Config
	ctx         context.Context
	cancel      context.CancelFunc
	server      *http.Server
	startFailed error
}

// NewService instantiates a new HTTP service instance.
func NewService(ctx context.Context, cfg *Config) *Service {
	ctx, cancel := context.WithCancel(ctx)
	s := &Service{
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}

	blocker := &lookup.Blocker{BeaconDB: cfg.BeaconDB}
	beaconServer := &beaconapi.Server{BeaconDB: cfg.BeaconDB, Blocker: blocker}
	rewardsServer := &rewardsapi.Server{BeaconDB: cfg.BeaconDB, Blocker: blocker}

	router := mux.NewRouter()
	router.Use(requestMetrics)
	router.HandleFunc("/eth/v1/beacon/genesis", beaconServer.GetGenesis).Methods(http.MethodGet)
	router.HandleFunc("/eth/v2/beacon/blocks/{block_id}", beaconServer.GetBlockV2).Methods(http.MethodGet)
	router.HandleFunc("/eth/v1/beacon/blocks/{block_id}/root", beaconServer.GetBlockRoot).Methods(http.MethodGet)
	router.HandleFunc("/eth/v1/beacon/blocks/{block_id}/attestations", beaconServer.GetBlockAttestations).Methods(http.MethodGet)
	router.HandleFunc("/eth/v1/beacon/rewards/blocks/{block_id}", rewardsServer.BlockRewards).Methods(http.MethodGet)
	router.HandleFunc("/eth/v1/debug/beacon/heads", beaconServer.GetForkChoiceHeads).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Second,
	}
	return s
}

// Start the HTTP server and listen for requests.
func (s *Service) Start() {
	go func() {
		log.WithField("address", s.server.Addr).Info("HTTP server listening on address")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.startFailed = err
			log.WithError(err).Error("Could not serve HTTP")
		}
	}()
}

// Stop the service gracefully.
func (s *Service) Stop() error {
	defer s.cancel()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Status of the HTTP server. Returns an error if the server failed to start.
func (s *Service) Status() error {
	if s.startFailed != nil {
		return errors.Wrap(s.startFailed, "HTTP server failed")
	}
	return nil
}
