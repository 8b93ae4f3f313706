package router

import (
	"time"

	"acaimanager/internal/config"
	"acaimanager/internal/handler"
	"acaimanager/internal/infra"
	"acaimanager/internal/middleware"
	"acaimanager/internal/repository"
	"acaimanager/internal/service"
	"acaimanager/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(200, time.Minute)) // 200 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	storage := infra.NewLocalStorage(cfg.UploadStoragePath, cfg.PublicBaseURL)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	composicaoRepo := repository.NewComposicaoRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	canalRepo := repository.NewCanalRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	despesaRepo := repository.NewDespesaRepository(db)
	fechamentoRepo := repository.NewFechamentoRepository(db)
	configRepo := repository.NewConfiguracaoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	produtoSvc := service.NewProdutoService(produtoRepo)
	composicaoSvc := service.NewComposicaoService(composicaoRepo, fornecedorRepo)
	fornecedorSvc := service.NewFornecedorService(fornecedorRepo, composicaoRepo)
	canalSvc := service.NewCanalService(canalRepo)
	configuracaoSvc := service.NewConfiguracaoService(configRepo, storage)

	dashboardSvc := service.NewDashboardService(vendaRepo, despesaRepo, fechamentoRepo, configRepo, rdb)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	vendaSvc := service.NewVendaService(vendaRepo, produtoRepo, canalRepo, despesaRepo, dashboardSvc, cfg.PoliticaPrecificacao)
	despesaSvc := service.NewDespesaService(despesaRepo, dashboardSvc)
	fechamentoSvc := service.NewFechamentoService(fechamentoRepo, vendaRepo, despesaRepo, configRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	composicoesH := handler.NewComposicoesHandler(composicaoSvc)
	fornecedoresH := handler.NewFornecedoresHandler(fornecedorSvc)
	canaisH := handler.NewCanaisHandler(canalSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	despesasH := handler.NewDespesasHandler(despesaSvc)
	fechamentosH := handler.NewFechamentosHandler(fechamentoSvc, cfg.PDFStoragePath)
	configuracoesH := handler.NewConfiguracoesHandler(configuracaoSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Uploaded assets (store logos) served straight from disk
	r.Static("/uploads", cfg.UploadStoragePath)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — single-owner app, every route needs a valid token
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)
		v1.GET("/dashboard", dashboardH.Resumo)

		vendas := v1.Group("/vendas")
		{
			vendas.POST("", vendasH.Registrar)
			vendas.GET("", vendasH.Listar)
			vendas.GET("/:id", vendasH.Obter)
			vendas.PUT("/:id", vendasH.Atualizar)
			vendas.DELETE("/:id", vendasH.Excluir)
		}

		produtos := v1.Group("/produtos")
		{
			produtos.POST("", produtosH.Criar)
			produtos.GET("", produtosH.Listar)
			produtos.PUT("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Excluir)
		}

		composicoes := v1.Group("/composicoes")
		{
			composicoes.POST("", composicoesH.Criar)
			composicoes.GET("", composicoesH.Listar)
			composicoes.GET("/:id", composicoesH.Obter)
			composicoes.PUT("/:id", composicoesH.Atualizar)
			composicoes.DELETE("/:id", composicoesH.Excluir)
		}

		fornecedores := v1.Group("/fornecedores")
		{
			fornecedores.POST("", fornecedoresH.Criar)
			fornecedores.GET("", fornecedoresH.Listar)
			fornecedores.PUT("/:id", fornecedoresH.Atualizar)
			fornecedores.DELETE("/:id", fornecedoresH.Excluir)
		}

		canais := v1.Group("/canais")
		{
			canais.POST("", canaisH.Criar)
			canais.GET("", canaisH.Listar)
			canais.PUT("/:id", canaisH.Atualizar)
			canais.DELETE("/:id", canaisH.Excluir)
		}

		despesas := v1.Group("/despesas")
		{
			// Fixed segments before the :id wildcard
			despesas.POST("/tipos", despesasH.CriarTipo)
			despesas.GET("/tipos", despesasH.ListarTipos)
			despesas.POST("/gerar-recorrentes", despesasH.GerarRecorrentes)

			despesas.POST("", despesasH.Criar)
			despesas.GET("", despesasH.Listar)
			despesas.PUT("/:id", despesasH.Atualizar)
			despesas.DELETE("/:id", despesasH.Excluir)
			despesas.PATCH("/:id/pagar", despesasH.MarcarPaga)
		}

		fechamentos := v1.Group("/fechamentos")
		{
			fechamentos.GET("", fechamentosH.Resumo)
			fechamentos.POST("/transferencia", fechamentosH.RegistrarTransferencia)
			fechamentos.GET("/relatorio", fechamentosH.BaixarRelatorio)
			fechamentos.POST("/relatorio/enviar", fechamentosH.EnviarRelatorio)
		}

		configuracoes := v1.Group("/configuracoes")
		{
			configuracoes.GET("", configuracoesH.Obter)
			configuracoes.PUT("", configuracoesH.Atualizar)
			configuracoes.POST("/logo", configuracoesH.UploadLogo)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
