package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/Mexidense/la-mar-sala-resort/internal/logger"
	"github.com/Mexidense/la-mar-sala-resort/internal/storage/memory"
)

type Server struct {
	srv     *http.Server
	router  *http.ServeMux
	l       *logger.Logger
	conf    Conf
	store   *memory.DB
	metrics *Metrics
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
	ResortName        string
}

func New(ctx context.Context, conf Conf, store *memory.DB, metrics *Metrics) (*Server, error) {
	mux := http.NewServeMux()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout * time.Second, //nolint:durationcheck
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:     srv,
		router:  mux,
		l:       conf.L,
		conf:    conf,
		store:   store,
		metrics: metrics,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
