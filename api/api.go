package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"assetrisk/internal/db/models/postgres/public/model"
	"assetrisk/internal/repository"
	"assetrisk/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
)

type ApiHandler struct {
	Db                    *sql.DB
	AssetService          service.AssetService
	RiskService           service.RiskService
	RecommendationService service.RecommendationService
	GptRepository         repository.GptRepository
	ApiRequestRepository  repository.ApiRequestRepository
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to assetrisk"})
	})

	assets := router.Group("/assets")
	assets.POST("", m.addAsset)
	assets.GET("", m.listAssets)
	assets.GET("/stocks", m.listStocks)
	assets.GET("/crypto", m.listCrypto)
	assets.GET("/stock/:symbol", m.listStockBySymbol)
	assets.GET("/crypto/:symbol", m.listCryptoBySymbol)
	assets.GET("/dashboard", m.dashboard)
	assets.GET("/profit-loss", m.profitLoss)
	assets.POST("/sell/:id", m.sellAssetByID)
	assets.POST("/sell", m.sellBySymbol)
	// gin's routing tree cannot register /risk/buy/... next to /risk/:symbol,
	// so the whole risk subtree shares one wildcard and dispatches internally
	assets.GET("/risk/*path", m.assetRisk)

	recommendations := router.Group("/recommendations")
	recommendations.GET("/stocks/:n", m.topStocks)
	recommendations.GET("/crypto/:n", m.topCrypto)
	recommendations.GET("/assets/:n", m.topAssets)
	recommendations.GET("/market", m.marketMovers)

	router.GET("/chat", m.chatQuery)
	router.POST("/chat", m.chat)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnServiceError maps the service error taxonomy onto status codes.
func returnServiceError(err error, c *gin.Context) {
	switch {
	case errors.Is(err, service.ErrValidation):
		returnErrorJsonCode(err, c, 400)
	case errors.Is(err, service.ErrNotFound), errors.Is(err, qrm.ErrNoRows):
		returnErrorJsonCode(err, c, 404)
	default:
		returnErrorJson(err, c)
	}
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Println(err)
		}
	}
}
