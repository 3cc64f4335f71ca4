package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	l1_service "portfoliosim/internal/service/l1"
	l2_service "portfoliosim/internal/service/l2"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                *sql.DB
	PortfolioService  l1_service.PortfolioService
	AllocationService l1_service.AllocationService
	TradeService      l1_service.TradeService
	PriceService      l1_service.PriceService
	SimulationService l1_service.SimulationService
	RebalanceService  l2_service.RebalanceService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to portfoliosim"})
	})

	router.GET("/portfolios", m.listPortfolios)
	router.GET("/portfolios/:portfolioID", m.getPortfolio)
	router.GET("/portfolios/:portfolioID/balance", m.getBalance)
	router.POST("/portfolios/:portfolioID/funds", m.addFunds)
	router.GET("/portfolios/:portfolioID/allocations", m.listAllocations)
	router.PUT("/portfolios/:portfolioID/allocations", m.updateAllocations)
	router.POST("/portfolios/:portfolioID/buy", m.buy)
	router.POST("/portfolios/:portfolioID/sell", m.sell)
	router.GET("/portfolios/:portfolioID/rebalance", m.previewRebalance)
	router.POST("/portfolios/:portfolioID/rebalance", m.executeRebalance)

	router.GET("/stocks", m.listStocks)
	router.GET("/stocks/:stockID/prices", m.getPriceHistory)

	router.POST("/simulate", m.simulate)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// statusForError maps service failures onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrInsufficientShares):
		return http.StatusConflict
	case domain.IsBusinessError(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusForError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	lg := logger.FromContext(c.Request.Context())
	if code >= http.StatusInternalServerError {
		lg.Errorw("request failed", "error", err.Error())
	} else {
		lg.Infow("request rejected", "error", err.Error(), "status", code)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// parseID reads a uuid path parameter. Malformed ids are invalid input.
func parseID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %q is not a valid id", domain.ErrInvalidInput, param, c.Param(param))
	}
	return id, nil
}

// bindJSON decodes the request body, reporting decode failures as invalid
// input rather than server errors.
func bindJSON(c *gin.Context, out any) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return nil
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(c *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
	c.Writer = w

	requestID := uuid.New()
	lg := logger.FromContext(c.Request.Context()).With(
		"requestID", requestID.String(),
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	profile, endProfile := domain.NewProfile()
	ctx := logger.WithLogger(c.Request.Context(), lg)
	c.Request = c.Request.WithContext(domain.WithProfile(ctx, profile))
	c.Header("X-Request-ID", requestID.String())

	c.Next()
	endProfile()

	fields := []any{
		"status", c.Writer.Status(),
		"latencyMs", *profile.TotalMs,
		"clientIP", c.ClientIP(),
	}
	fields = append(fields, profile.LogFields()...)
	if c.Writer.Status() >= http.StatusBadRequest {
		fields = append(fields, "responseBody", w.body.String())
	}
	lg.Infow("handled request", fields...)
}
