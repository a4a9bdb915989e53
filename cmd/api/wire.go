//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 使用方式：
//   wire gen ./cmd/api
// 生成wire_gen.go后，main.go可改用InitializeApp()替代手动组装。
// 两条装配路径必须保持一致，新增依赖时同步维护。
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshop/internal/application"
	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	appRequest "github.com/xiebiao/bookshop/internal/application/request"
	apptransfer "github.com/xiebiao/bookshop/internal/application/transfer"
	appuser "github.com/xiebiao/bookshop/internal/application/user"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/infrastructure/transfer"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
	provideLogger,
	provideTransferStore,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewTxManager,
	wire.Bind(new(application.Transactor), new(*mysql.TxManager)),
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewOrderRepository,
	mysql.NewRequestRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appRequest.NewReconciler,

	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewAddStockUseCase,
	appbook.NewWriteOffUseCase,
	provideStaleBooksUseCase,

	apporder.NewCreateOrderUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewCancelOrderUseCase,
	apporder.NewSetOrderStatusUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewListCompletedUseCase,
	apporder.NewCountCompletedUseCase,
	apporder.NewEarnedSumUseCase,

	appRequest.NewCreateRequestUseCase,
	appRequest.NewGroupedRequestsUseCase,
	appRequest.NewListRequestsUseCase,

	apptransfer.NewBookTransferUseCase,
	apptransfer.NewOrderTransferUseCase,
	apptransfer.NewRequestTransferUseCase,

	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	redis.NewSessionStore,
	wire.Bind(new(middleware.TokenBlacklist), new(*redis.SessionStore)),
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewOrderHandler,
	handler.NewRequestHandler,
	handler.NewAuthHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire)
}

// provideLogger 从配置创建日志器
func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		EnableCaller: cfg.Log.EnableCaller,
	})
}

// provideTransferStore 从配置创建数据文件存储
func provideTransferStore(cfg *config.Config) (*transfer.Store, error) {
	return transfer.NewStore(cfg.Transfer.Dir)
}

// provideStaleBooksUseCase 呆滞用例需要从配置提取阈值
func provideStaleBooksUseCase(repo book.Repository, cfg *config.Config) *appbook.StaleBooksUseCase {
	return appbook.NewStaleBooksUseCase(repo, cfg.Inventory.StaleAfter)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	zapLogger *zap.Logger,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	requestHandler *handler.RequestHandler,
	authHandler *handler.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zapLogger))
	r.Use(middleware.Metrics())

	registerRoutes(r, bookHandler, orderHandler, requestHandler, authHandler, authMiddleware)
	return r
}

// InitializeApp 初始化整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
