// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariebrainware/hospital-directory/config"
	"github.com/ariebrainware/hospital-directory/endpoint"
	"github.com/ariebrainware/hospital-directory/identity"
	"github.com/ariebrainware/hospital-directory/middleware"
	"github.com/ariebrainware/hospital-directory/model"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "hospital-directory",
		Short:         "Hospital directory and booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
	rootCmd.AddCommand(serveCmd(), migrateCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		util.Logger().Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup()
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			util.Logger().Info().Msg("schema is up to date")
			return closeDatabase(db)
		},
	}
}

// setup loads the configuration and prepares logging.
func setup() *config.Config {
	cfg := config.LoadConfig()
	util.InitLogger(cfg.LogLevel, cfg.LogFormat)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	return cfg
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := config.ConnectMySQL(cfg)
	if err != nil {
		return nil, fmt.Errorf("error connecting to MySQL: %w", err)
	}
	if err := model.Migrate(db); err != nil {
		return nil, fmt.Errorf("error migrating schema: %w", err)
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newProvider(cfg *config.Config) (identity.Provider, identity.UserDirectory, error) {
	switch cfg.AuthMode {
	case config.AuthModeJWT:
		if cfg.JWTSecret == "" {
			return nil, nil, errors.New("JWTSECRET is required when AUTH_MODE=jwt")
		}
		return identity.NewJWTProvider(cfg.JWTSecret), nil, nil
	case config.AuthModeRemote:
		if cfg.OAuthURL == "" {
			return nil, nil, errors.New("OAUTH_URL is required when AUTH_MODE=remote")
		}
		remote := identity.NewRemoteProvider(cfg.OAuthURL, 10*time.Second)
		return identity.NewCachedProvider(remote, cfg.AuthCacheTTL), remote, nil
	default:
		return nil, nil, fmt.Errorf("unknown AUTH_MODE %q", cfg.AuthMode)
	}
}

func runServer(ctx context.Context) error {
	cfg := setup()
	log := util.Logger()

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(db)
	util.SetAuditLoggerDB(db)

	rdb, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		// Rate limiting fails open without Redis.
		log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	if cfg.GeoIPDBPath != "" {
		if err := util.InitGeoIP(cfg.GeoIPDBPath); err != nil {
			log.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip database not loaded")
		} else {
			defer util.CloseGeoIP()
		}
	}

	provider, directory, err := newProvider(cfg)
	if err != nil {
		return err
	}

	router := endpoint.SetupRouter(endpoint.RouterOptions{
		AppName:   cfg.AppName,
		DB:        db,
		Provider:  provider,
		Directory: directory,
		Redis:     rdb,
		RateLimit: middleware.RateLimitConfig{Limit: cfg.RateLimit, Window: cfg.RateWindow},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("auth_mode", cfg.AuthMode).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
