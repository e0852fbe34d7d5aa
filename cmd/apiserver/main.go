package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gestiparc/gestiparc/internal/apiserver/database"
	"github.com/gestiparc/gestiparc/internal/apiserver/handler"
	"github.com/gestiparc/gestiparc/internal/apiserver/middleware"
	"github.com/gestiparc/gestiparc/internal/auth/jwt"
	"github.com/gestiparc/gestiparc/internal/common/config"
	"github.com/gestiparc/gestiparc/pkg/logger"
	"github.com/gestiparc/gestiparc/pkg/metrics"
	"github.com/gestiparc/gestiparc/pkg/trace"
	"github.com/gestiparc/gestiparc/pkg/version"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiserver version %s\n", version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   "apiserver",
		Short: "gestiparc API server",
		Long:  `gestiparc API server tracks equipment, establishments, reports and missions behind a token-gated REST surface`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", "apiserver.yaml", "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

func run() {
	cfg, cfgPath, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", cfgPath, err)
	}

	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	lg.Info("starting apiserver",
		zap.String("version", version.Get()),
		zap.String("config", cfgPath))

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		lg.Fatal("failed to open database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		lg.Fatal("failed to initialize database schema", zap.Error(err))
	}

	if err := seedSuperAdmin(ctx, db, cfg); err != nil {
		lg.Fatal("failed to seed admin user", zap.Error(err))
	}

	jwtService, err := jwt.NewService(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Duration:  cfg.JWT.Duration,
	})
	if err != nil {
		lg.Fatal("failed to create JWT service", zap.Error(err))
	}

	if cfg.Tracing.Enabled {
		shutdown, err := trace.InitTracing(ctx, "gestiparc-apiserver", cfg.Tracing.Endpoint, lg)
		if err != nil {
			lg.Fatal("failed to initialize tracing", zap.Error(err))
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	m := metrics.New("gestiparc")

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(lg))
	r.Use(middleware.CORS())
	r.Use(m.Middleware())
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware("gestiparc-apiserver"))
	}

	r.GET("/metrics", gin.WrapH(m.Handler()))

	h := handler.NewHandler(db, jwtService, lg)
	h.RegisterRoutes(r, middleware.JWTAuthMiddleware(jwtService))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	lg.Info("listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		lg.Fatal("server exited", zap.Error(err))
	}
}

// seedSuperAdmin inserts the configured admin credentials on first boot.
// Subsequent boots find the existing row and leave it untouched.
func seedSuperAdmin(ctx context.Context, db database.Database, cfg *config.APIServerConfig) error {
	if cfg.SuperAdmin.Username == "" || cfg.SuperAdmin.Password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.EnsureUser(ctx, &database.User{
		Username: cfg.SuperAdmin.Username,
		Password: string(hash),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
