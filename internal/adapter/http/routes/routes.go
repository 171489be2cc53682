package routes

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	_ "mcbot/docs" // registers the swagger spec
	"mcbot/internal/adapter/http/handlers"
	"mcbot/internal/adapter/persistence/repository"
	"mcbot/internal/infrastructure/config"
	"mcbot/internal/infrastructure/database"
	"mcbot/internal/infrastructure/llm"
	"mcbot/internal/infrastructure/menu"
	"mcbot/internal/infrastructure/payments"
	"mcbot/internal/infrastructure/sessions"
	"mcbot/internal/usecase"
	"mcbot/internal/usecase/dialogue"
	"mcbot/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Chat    *handlers.ChatHandler
	Orders  *handlers.OrderHandler
	Payment *handlers.OrderPaymentHandler
	Menu    *handlers.MenuHandler
}

// Run will start the server
func Run() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h, store := buildHandlers(ctx, cfg)
	go store.Run(ctx, cfg.Store.SweepInterval)

	router := NewRouter(cfg, h)
	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts middlewares, swagger and the /v1 API.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addChatRoutes(v1, h.Chat, h.Menu)
	addOrderRoutes(v1, h.Orders, h.Payment)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, *sessions.Store) {
	catalog, err := menu.Load(cfg.Menu.Path)
	if err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}

	client, err := llm.NewClient(cfg.OpenAI)
	if err != nil {
		log.Fatalf("Failed to configure the language model: %v", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		log.Fatalf("Failed to configure DynamoDB: %v", err)
	}
	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.Tables.Orders)
	paymentRepo := repository.NewOrderPaymentDynamoRepository(ddb, cfg.Tables.Payments)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MP)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	pipeline := dialogue.NewPipeline(dialogue.Dependencies{
		Parser:   llm.NewOrderParser(client),
		Catalog:  catalog,
		Composer: llm.NewMessageComposer(client),
		Orders:   orderRepo,
	})
	store := sessions.NewStore(cfg.Store.TTL)

	chatUseCase := usecase.NewChatUseCase(store, pipeline)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	paymentUseCase := usecase.NewOrderPaymentUseCase(paymentRepo, orderRepo, paymentGateway, usecase.PaymentSettings{
		Mock:           cfg.MP.Mock,
		Sandbox:        strings.HasPrefix(cfg.MP.AccessToken, "TEST-"),
		TestPayerEmail: cfg.MP.TestPayerEmail,
	})

	return Handlers{
		Chat:    handlers.NewChatHandler(chatUseCase),
		Orders:  handlers.NewOrderHandler(orderUseCase),
		Payment: handlers.NewOrderPaymentHandler(paymentUseCase, cfg.MP.Mock),
		Menu:    handlers.NewMenuHandler(catalog),
	}, store
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
