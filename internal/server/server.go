package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/halcyard/TradeCenter_Go/internal/database"
	"github.com/halcyard/TradeCenter_Go/internal/handler"
	"github.com/halcyard/TradeCenter_Go/internal/item"
	"github.com/halcyard/TradeCenter_Go/internal/logger"
	"github.com/halcyard/TradeCenter_Go/internal/metrics"
	"github.com/halcyard/TradeCenter_Go/internal/notify"
	"github.com/halcyard/TradeCenter_Go/internal/profile"
	"github.com/halcyard/TradeCenter_Go/internal/trade"
)

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	tradeService   trade.Service
	itemService    item.Service
	inboxService   notify.Service
	profileService profile.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, tradeService trade.Service, itemService item.Service, inboxService notify.Service, profileService profile.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.MetricsMiddleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		tradeHandler := handler.NewTradeHandler(tradeService)
		r.Route("/trade", func(r chi.Router) {
			r.Post("/create", tradeHandler.HandleCreateTrade)
			r.Post("/delete", tradeHandler.HandleDeleteTrade)
			r.Post("/offer", tradeHandler.HandleOffer)
			r.Post("/withdraw", tradeHandler.HandleWithdraw)
			r.Post("/choose-winner", tradeHandler.HandleChooseWinner)
			r.Post("/complete", tradeHandler.HandleMarkAsCompleted)
			r.Post("/feedback", tradeHandler.HandleLeaveFeedback)
			r.Post("/exchange-details", tradeHandler.HandleSendExchangeDetails)

			r.Get("/get", tradeHandler.HandleGetTrade)
			r.Get("/active", tradeHandler.HandleGetActiveTrades)
			r.Get("/latest", tradeHandler.HandleGetLatestTrades)
			r.Get("/hottest", tradeHandler.HandleGetHottestTrades)
			r.Get("/by-user", tradeHandler.HandleGetTradesByUser)
			r.Get("/offers", tradeHandler.HandleGetOffersByUser)
			r.Get("/can-create", tradeHandler.HandleCanCreateTrade)
		})

		itemHandler := handler.NewItemHandler(itemService)
		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.HandleGetItems)
			r.Get("/get", itemHandler.HandleGetItem)
			r.Post("/create", itemHandler.HandleCreateItem)
			r.Post("/update", itemHandler.HandleUpdateItem)
			r.Post("/delete", itemHandler.HandleDeleteItem)
		})

		inboxHandler := handler.NewInboxHandler(inboxService)
		r.Route("/inbox", func(r chi.Router) {
			r.Get("/", inboxHandler.HandleGetInbox)
			r.Post("/read", inboxHandler.HandleMarkRead)
		})

		profileHandler := handler.NewProfileHandler(profileService)
		r.Route("/profile", func(r chi.Router) {
			r.Get("/reputation", profileHandler.HandleGetReputation)
			r.Get("/feedback", profileHandler.HandleGetFeedbackHistory)
			r.Get("/trades", profileHandler.HandleGetTradeHistory)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		tradeService:   tradeService,
		itemService:    itemService,
		inboxService:   inboxService,
		profileService: profileService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health and metrics endpoints would swamp the request log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
