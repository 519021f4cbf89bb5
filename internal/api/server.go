package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/internal/api/handler"
	"github.com/vfg2006/revenue-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-intelligence-api/pkg/middleware"
)

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	ingestionScheduler handler.IngestionScheduler,
) (*Server, error) {
	if reporter == nil {
		return nil, fmt.Errorf("serviço de relatórios não informado")
	}

	reports := handler.Reports(reporter, time.Now)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(reports)...),
		router.WithRoutes(reports...),
		router.WithRoutes(handler.CronJobs(ingestionScheduler)...),
	)
	logrus.WithField("routes", rt.Routes()).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.CorsAllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: config.Server.ShutdownTimeout,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende até receber SIGINT/SIGTERM ou até ctx ser cancelado e então desliga com o
// timeout configurado. Falha ao abrir a porta é retornada imediatamente.
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			return err
		}
	case <-ctx.Done():
		logrus.Info("Sinal de término recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", s.shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
