package http

import (
	"context"
	"time"

	"golang-stock-registry/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	swagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ServerOptions tunes the middleware stack of the registry API.
type ServerOptions struct {
	RequestTimeout     time.Duration
	RateLimitPerSecond float64
	EnableSwagger      bool
}

// NewServer builds the Echo instance with middleware and every registry route.
// Routes are served both at the root and under /api/v1.
func NewServer(opts ServerOptions, appLogger *logger.Logger, bearerHandler *BearerHandler, stockHandler *StockHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestContext(appLogger, opts.RequestTimeout))
	e.Use(middleware.Recover())
	e.Use(requestLogger(appLogger))
	if opts.RateLimitPerSecond > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(opts.RateLimitPerSecond))))
	}

	for _, g := range []*echo.Group{e.Group(""), e.Group("/api/v1")} {
		bearersGroup := g.Group("/bearers")
		bearerHandler.RegisterRoutes(bearersGroup)
		stockHandler.RegisterRoutes(bearersGroup)
	}
	e.GET("/", bearerHandler.ListBearers)

	if opts.EnableSwagger {
		e.GET("/swagger/*", swagger.WrapHandler)
	}
	return e
}

// requestContext attaches a request-scoped logger carrying the request id and
// bounds the request with the configured timeout.
func requestContext(appLogger *logger.Logger, timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			ctx := logger.WithContext(c.Request().Context(), appLogger.With(logger.StringField("request_id", requestID)))
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func requestLogger(appLogger *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				logger.StringField("method", v.Method),
				logger.StringField("uri", v.URI),
				logger.IntField("status", v.Status),
				logger.Field("latency", v.Latency),
				logger.StringField("request_id", v.RequestID),
			}
			if v.Error != nil {
				appLogger.Error("Request failed", append(fields, logger.ErrorField(v.Error))...)
				return nil
			}
			appLogger.Info("Request handled", fields...)
			return nil
		},
	})
}
