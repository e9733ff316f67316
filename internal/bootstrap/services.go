package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/casernelab/firequiz/config"
	"github.com/casernelab/firequiz/internal/adapters/authroles"
	"github.com/casernelab/firequiz/internal/adapters/oidc"
	"github.com/casernelab/firequiz/internal/adapters/reaper"
	redisadapter "github.com/casernelab/firequiz/internal/adapters/redis"
	"github.com/casernelab/firequiz/internal/data"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth         *service.AuthService
	SSO          *service.SSOService // nil unless AUTH_MODE=oidc
	Users        *service.UserService
	Quizzes      *service.QuizService
	GameSessions *service.GameSessionService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	UserRepo        *data.UserRepo
	RememberRepo    *data.RememberTokenRepo
	QuizRepo        *data.QuizRepo
	QuestionRepo    *data.QuestionRepo
	GameSessionRepo *data.GameSessionRepo
	Sessions        *redisadapter.SessionStore
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, client redis.UniversalClient) *serviceRepositories {
	return &serviceRepositories{
		UserRepo:        data.NewUserRepo(db),
		RememberRepo:    data.NewRememberTokenRepo(db),
		QuizRepo:        data.NewQuizRepo(db),
		QuestionRepo:    data.NewQuestionRepo(db),
		GameSessionRepo: data.NewGameSessionRepo(db),
		Sessions:        redisadapter.NewSessionStore(client),
	}
}

func newAuthService(repos *serviceRepositories, cfg config.AuthConfig) *service.AuthService {
	return service.NewAuthService(service.AuthServiceOptions{
		Users:       credentialStore{repo: repos.UserRepo},
		Remember:    repos.RememberRepo,
		Sessions:    repos.Sessions,
		SessionTTL:  cfg.SessionTTL,
		RememberTTL: cfg.RememberTTL,
	})
}

// newSSOService builds the OIDC stack. Discovery hits the issuer over the
// network, so this only runs when AUTH_MODE=oidc.
func newSSOService(cfg config.AuthConfig, auth *service.AuthService) (*service.SSOService, error) {
	provider, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     cfg.OIDC.ClientID,
		ClientSecret: cfg.OIDC.ClientSecret,
		RedirectURL:  cfg.OIDC.RedirectURL,
		Scope:        cfg.OIDC.Scope,
		IssuerURL:    cfg.OIDC.IssuerURL,
	})
	if err != nil {
		return nil, fmt.Errorf("build oidc provider: %w", err)
	}

	return service.NewSSOService(service.SSOServiceOptions{
		Provider: provider,
		Roles: authroles.StaticRoleMapper{
			AdminGroup:     cfg.OIDC.AdminGroup,
			EncadrantGroup: cfg.OIDC.EncadrantGroup,
		},
		Auth: auth,
	}), nil
}

// NewServices wires repositories into the service container.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil {
		return ServiceContainer{}, errors.New("service deps are required")
	}

	appCfg := deps.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	repos := buildRepositories(deps.DB, deps.RedisClient)
	authService := newAuthService(repos, appCfg.Auth)

	var ssoService *service.SSOService
	if appCfg.Auth.Mode == config.AuthModeOIDC {
		sso, err := newSSOService(appCfg.Auth, authService)
		if err != nil {
			return ServiceContainer{}, err
		}
		ssoService = sso
	}

	return ServiceContainer{
		Auth: authService,
		SSO:  ssoService,
		Users: service.NewUserService(service.UserServiceOptions{
			Users: repos.UserRepo,
		}),
		Quizzes: service.NewQuizService(service.QuizServiceOptions{
			Quizzes:   repos.QuizRepo,
			Questions: repos.QuestionRepo,
		}),
		GameSessions: service.NewGameSessionService(service.GameSessionServiceOptions{
			Sessions: repos.GameSessionRepo,
			Quizzes:  repos.QuizRepo,
		}),
	}, nil
}

// ServiceOrchestrationConfig contains dependencies for running services.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	DB       *sql.DB
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunServicesWithShutdown starts all enabled services and manages their
// lifecycle. It blocks until SIGINT/SIGTERM arrives or a service fails, then
// stops the remaining services and waits for them to drain.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	enabled, err := cfg.Config.GetEnabledServices()
	if err != nil {
		return fmt.Errorf("determine enabled services: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if enabled[config.ServiceModeHTTP] {
		server := NewHTTPServer(&HTTPServerConfig{
			Config:   cfg.Config,
			Services: cfg.Services,
			Logger:   logger,
		})
		g.Go(func() error {
			logger.Info("starting HTTP server", "addr", server.Addr)
			if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", serveErr)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return ShutdownHTTPServer(ShutdownConfig{Server: server, Logger: logger})
		})
	}

	if enabled[config.ServiceModeReaper] {
		runner, runnerErr := reaper.NewRunner(reaper.RunnerOptions{
			DB:       cfg.DB,
			Interval: cfg.Config.Reaper.Interval,
			Logger:   logger,
		})
		if runnerErr != nil {
			return fmt.Errorf("wire reaper: %w", runnerErr)
		}
		g.Go(func() error {
			return runner.Run(ctx)
		})
	}

	return g.Wait()
}

// credentialStore narrows the full user repository to the lookup and create
// operations the auth service needs.
type credentialStore struct {
	repo *data.UserRepo
}

func (s credentialStore) FindByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error) {
	return s.repo.GetByUsernameOrEmail(ctx, identifier)
}

func (s credentialStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s credentialStore) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	return s.repo.Create(ctx, req)
}
