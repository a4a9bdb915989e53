// 书店管理系统API服务入口
//
// 路由总览见registerRoutes，依赖注入链：
// Repository ← Service/UseCase ← Handler ← Router
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookshop/docs"
	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	appRequest "github.com/xiebiao/bookshop/internal/application/request"
	apptransfer "github.com/xiebiao/bookshop/internal/application/transfer"
	appuser "github.com/xiebiao/bookshop/internal/application/user"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/infrastructure/transfer"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// @title           书店管理系统API
// @version         1.0
// @description     图书、订单、补货请求管理与文件导入导出
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zapLogger, err := logger.New(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	// 3. 注册Prometheus指标
	metrics.Init()

	// 4. 初始化存储
	db, err := mysql.NewDB(cfg)
	if err != nil {
		zapLogger.Fatal("初始化数据库失败", zap.Error(err))
	}
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		zapLogger.Fatal("初始化Redis失败", zap.Error(err))
	}
	transferStore, err := transfer.NewStore(cfg.Transfer.Dir)
	if err != nil {
		zapLogger.Fatal("初始化数据文件目录失败", zap.Error(err))
	}

	// 5. 依赖注入（手动组装，wire.go提供等价的生成式写法）
	// 基础设施层
	txManager := mysql.NewTxManager(db)
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	requestRepo := mysql.NewRequestRepository(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire)

	// 领域层
	userService := user.NewService(userRepo)

	// 应用层
	reconciler := appRequest.NewReconciler(bookRepo, requestRepo)

	getBookUseCase := appbook.NewGetBookUseCase(bookRepo)
	listBooksUseCase := appbook.NewListBooksUseCase(bookRepo)
	addStockUseCase := appbook.NewAddStockUseCase(bookRepo, reconciler, txManager)
	writeOffUseCase := appbook.NewWriteOffUseCase(bookRepo, reconciler, txManager)
	staleBooksUseCase := appbook.NewStaleBooksUseCase(bookRepo, cfg.Inventory.StaleAfter)

	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, bookRepo, txManager)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)
	cancelOrderUseCase := apporder.NewCancelOrderUseCase(orderRepo, txManager)
	setOrderStatusUseCase := apporder.NewSetOrderStatusUseCase(orderRepo, bookRepo, reconciler, txManager)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	listCompletedUseCase := apporder.NewListCompletedUseCase(orderRepo)
	countCompletedUseCase := apporder.NewCountCompletedUseCase(orderRepo)
	earnedSumUseCase := apporder.NewEarnedSumUseCase(orderRepo)

	createRequestUseCase := appRequest.NewCreateRequestUseCase(bookRepo, requestRepo, txManager)
	groupedRequestsUseCase := appRequest.NewGroupedRequestsUseCase(bookRepo, requestRepo)
	listRequestsUseCase := appRequest.NewListRequestsUseCase(requestRepo)

	bookTransferUseCase := apptransfer.NewBookTransferUseCase(bookRepo, transferStore, reconciler, txManager)
	orderTransferUseCase := apptransfer.NewOrderTransferUseCase(orderRepo, transferStore, txManager)
	requestTransferUseCase := apptransfer.NewRequestTransferUseCase(requestRepo, transferStore, reconciler, txManager)

	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(jwtManager, sessionStore)

	// 接口层
	bookHandler := handler.NewBookHandler(
		getBookUseCase, listBooksUseCase, addStockUseCase, writeOffUseCase, staleBooksUseCase, bookTransferUseCase)
	orderHandler := handler.NewOrderHandler(
		createOrderUseCase, getOrderUseCase, cancelOrderUseCase, setOrderStatusUseCase, listOrdersUseCase,
		listCompletedUseCase, countCompletedUseCase, earnedSumUseCase, orderTransferUseCase)
	requestHandler := handler.NewRequestHandler(
		createRequestUseCase, groupedRequestsUseCase, listRequestsUseCase, requestTransferUseCase)
	authHandler := handler.NewAuthHandler(registerUseCase, loginUseCase, logoutUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zapLogger))
	r.Use(middleware.Metrics())

	registerRoutes(r, bookHandler, orderHandler, requestHandler, authHandler, authMiddleware)

	// 7. 启动服务（带优雅停机）
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("服务启动", zap.String("addr", addr), zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("启动服务失败", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("收到停止信号，开始优雅停机")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("停机超时，强制退出", zap.Error(err))
	}
	zapLogger.Info("服务已停止")
}

// registerRoutes 注册路由
// 权限约定：认证后才可访问业务接口；库存调整、状态流转、导入导出等
// 运营操作要求ADMIN角色
func registerRoutes(
	r *gin.Engine,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	requestHandler *handler.RequestHandler,
	authHandler *handler.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "healthy"})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 认证模块（公开）
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireAdmin()

	// 图书模块：列表与详情匿名可读，报表与库存操作仅管理员
	books := r.Group("/books")
	{
		books.GET("", bookHandler.List)
		books.GET("/stale", requireAuth, requireAdmin, bookHandler.Stale)
		books.GET("/:id", bookHandler.Get)

		books.PATCH("/add", requireAuth, requireAdmin, bookHandler.AddStock)
		books.PATCH("/writeOff", requireAuth, requireAdmin, bookHandler.WriteOff)

		books.PUT("/import", requireAuth, requireAdmin, bookHandler.ImportAll)
		books.PUT("/import/:id", requireAuth, requireAdmin, bookHandler.ImportOne)
		books.PUT("/export", requireAuth, requireAdmin, bookHandler.ExportAll)
		books.PUT("/export/:id", requireAuth, requireAdmin, bookHandler.ExportOne)
	}

	// 订单模块
	orders := r.Group("/orders", requireAuth)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("/:id", orderHandler.Get)
		orders.POST("/cancelOrder/:id", orderHandler.Cancel)
		orders.POST("/setOrderStatus", requireAdmin, orderHandler.SetStatus)

		orders.GET("", requireAdmin, orderHandler.List)
		orders.GET("/completed", requireAdmin, orderHandler.Completed)
		orders.GET("/countCompletedOrders", requireAdmin, orderHandler.CountCompleted)
		orders.GET("/earnedSum", requireAdmin, orderHandler.EarnedSum)

		orders.PUT("/import", requireAdmin, orderHandler.ImportAll)
		orders.PUT("/import/:id", requireAdmin, orderHandler.ImportOne)
		orders.PUT("/export", requireAdmin, orderHandler.ExportAll)
		orders.PUT("/export/:id", requireAdmin, orderHandler.ExportOne)
	}

	// 补货请求模块
	requests := r.Group("/requests", requireAuth)
	{
		requests.POST("", requestHandler.Create)
		requests.GET("", requestHandler.Grouped)
		requests.GET("/getAll", requestHandler.ListAll)

		requests.PUT("/import", requireAdmin, requestHandler.ImportAll)
		requests.PUT("/import/:id", requireAdmin, requestHandler.ImportOne)
		requests.PUT("/export", requireAdmin, requestHandler.ExportAll)
		requests.PUT("/export/:id", requireAdmin, requestHandler.ExportOne)
	}
}
