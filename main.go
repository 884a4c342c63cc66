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

	"github.com/ariebrainware/dentist-api/auth"
	"github.com/ariebrainware/dentist-api/config"
	"github.com/ariebrainware/dentist-api/endpoint"
	"github.com/ariebrainware/dentist-api/messaging"
	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/service"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// @title           Dentist API
// @version         1.0
// @description     Clinic backend: patient registration, complaint queue, follow-ups, catalogs and role-based access.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	rootCmd := &cobra.Command{
		Use:          "dentist-api",
		Short:        "Dentist clinic API server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			if _, err := openDatabase(cfg); err != nil {
				return err
			}
			log.Info().Str("driver", cfg.DBDriver).Msg("migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var name, phone, password, role string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert reference data and optionally a staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			if err := model.SeedReferenceData(db); err != nil {
				return err
			}
			log.Info().Msg("reference data seeded")

			if phone == "" {
				return nil
			}
			r, err := model.ParseRole(role)
			if err != nil {
				return err
			}
			accounts := service.NewAccountService(db, auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL, cfg.TokenIssuer),
				util.NewSessionStore(nil), service.NewClock(cfg.Location()))
			user, err := accounts.EnsureStaff(cmd.Context(), service.Credentials{Name: name, PhoneNumber: phone, Password: password}, r)
			if err != nil {
				return err
			}
			log.Info().Uint("user_id", user.ID).Str("role", user.Role.String()).Msg("staff account ready")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "staff name")
	cmd.Flags().StringVar(&phone, "phone", "", "staff phone number")
	cmd.Flags().StringVar(&password, "password", "", "staff password")
	cmd.Flags().StringVar(&role, "role", "admin", "staff role: admin or dentist")
	return cmd
}

func tokenCmd() *cobra.Command {
	var name, phone, role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a token without a password, for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			r, err := model.ParseRole(role)
			if err != nil {
				return err
			}
			token, err := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL, cfg.TokenIssuer).Encode(auth.Claims{
				Name:        util.CapitalizeName(name),
				PhoneNumber: phone,
				Role:        r,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "account name")
	cmd.Flags().StringVar(&phone, "phone", "", "account phone number")
	cmd.Flags().StringVar(&role, "role", "patient", "account role")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func bootstrap() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	log := config.NewLogger(cfg)
	util.SetSecurityLogger(log)
	util.SetPhonePolicy(util.PhonePolicy{Min: cfg.PhoneMin, Max: cfg.PhoneMax})
	return cfg, log, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := model.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func runServer() error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			log.Warn().Err(err).Msg("sentry disabled")
		}
		defer sentry.Flush(2 * time.Second)
	}

	if err := util.RegisterBindingValidators(); err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	util.SetSecurityLoggerDB(db)

	ctx := context.Background()
	rdb, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	if rdb == nil {
		log.Warn().Msg("redis disabled: tokens cannot be revoked and login is not rate limited")
	} else {
		defer rdb.Close()
	}

	if err := util.InitGeoIP(cfg.GeoIPDBPath); err != nil {
		log.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip lookups disabled")
	}
	defer util.CloseGeoIP()

	gin.SetMode(cfg.GinMode)
	h := endpoint.NewHandler(cfg, db, rdb, log)
	router := endpoint.NewRouter(h, cfg)
	defer h.Queue.Close()

	if cfg.ReminderEnabled {
		sender := messaging.NewWhatsAppClient(cfg.WhatsAppAPIURL, cfg.WhatsAppAccessToken, cfg.WhatsAppCountryCode, log)
		job := messaging.NewReminderJob(h.FollowUps, sender, cfg.Location(), cfg.ReminderAt, log)
		if err := job.Start(); err != nil {
			return fmt.Errorf("start reminders: %w", err)
		}
		defer job.Stop()
		log.Info().Time("next_run", job.NextRun()).Msg("follow-up reminders scheduled")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	// Open event streams only end once the broadcaster closes.
	h.Queue.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
