package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	httpin "scheduling/internal/adapters/in/http"
	"scheduling/internal/adapters/out/authz"
	"scheduling/internal/adapters/out/kafka"
	"scheduling/internal/adapters/out/policyfile"
	"scheduling/internal/adapters/out/postgres"
	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/core/ports"
	"scheduling/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     *policy.Policy
	authorizer ports.RoleAuthorizer
	producer   ports.NotificationProducer
	logger     *slog.Logger
	now        func() time.Time
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	cfg = cfg.WithDefaults()

	p := policy.DefaultPolicy()
	if cfg.PolicyFile != "" {
		loaded, err := policyfile.Load(cfg.PolicyFile)
		if err != nil {
			return CompositionRoot{}, err
		}
		p = loaded
	}

	authorizer, err := newAuthorizer(cfg)
	if err != nil {
		return CompositionRoot{}, err
	}

	producer, err := newProducer(cfg, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, cfg.KafkaScheduleEventTopic),
		policy:     p,
		authorizer: authorizer,
		producer:   producer,
		logger:     logger,
		now:        time.Now,
	}, nil
}

func newAuthorizer(cfg Config) (*authz.RoleAuthorizer, error) {
	if cfg.AuthzPolicyFile != "" {
		return authz.NewRoleAuthorizerFromFile(cfg.AuthzPolicyFile)
	}
	return authz.NewRoleAuthorizer(authz.DefaultPolicy())
}

func newProducer(cfg Config, logger *slog.Logger) (ports.NotificationProducer, error) {
	var brokers []string
	for _, b := range strings.Split(cfg.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return kafka.NewLogProducer(logger), nil
	}
	return kafka.NewProducer(kafka.ProducerConfig{Brokers: brokers}, logger)
}

// Close releases the notification producer.
func (c *CompositionRoot) Close() error {
	return c.producer.Close()
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProposeScheduleCommandHandler() commands.ProposeScheduleCommandHandler {
	var f commands.NegotiationUoWFactory = FuncNegotiationUoWFactory(func() commands.NegotiationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProposeScheduleCommandHandler(f, c.authorizer, c.policy, c.now)
}

func (c *CompositionRoot) CreateRespondToScheduleCommandHandler() commands.RespondToScheduleCommandHandler {
	var f commands.NegotiationUoWFactory = FuncNegotiationUoWFactory(func() commands.NegotiationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRespondToScheduleCommandHandler(f, c.authorizer, c.now)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchNotificationsCommandHandler(f, c.producer, c.logger, c.now)
}

func (c *CompositionRoot) CreateGetActiveProposalQueryHandler() queries.GetActiveProposalQueryHandler {
	return queries.NewGetActiveProposalQueryHandler(c.gormDB, c.authorizer)
}

func (c *CompositionRoot) CreateGetScheduleHistoryQueryHandler() queries.GetScheduleHistoryQueryHandler {
	return queries.NewGetScheduleHistoryQueryHandler(c.gormDB, c.authorizer)
}

func (c *CompositionRoot) CreateEvaluateCandidateQueryHandler() queries.EvaluateCandidateQueryHandler {
	return queries.NewEvaluateCandidateQueryHandler(c.policy, c.now)
}

func (c *CompositionRoot) CreateGetAvailableWindowsQueryHandler() queries.GetAvailableWindowsQueryHandler {
	return queries.NewGetAvailableWindowsQueryHandler(c.policy)
}

func (c *CompositionRoot) CreateHTTPRouter() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateRegisterOrderCommandHandler(),
		c.CreateProposeScheduleCommandHandler(),
		c.CreateRespondToScheduleCommandHandler(),
		c.CreateGetActiveProposalQueryHandler(),
		c.CreateGetScheduleHistoryQueryHandler(),
		c.CreateEvaluateCandidateQueryHandler(),
		c.CreateGetAvailableWindowsQueryHandler(),
		c.logger,
	)
	return httpin.NewRouter(server, httpin.RouterConfig{
		SigningKey: []byte(c.cfg.JWTSecret),
		Logger:     c.logger,
	})
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	cmd, err := commands.NewDispatchNotificationsCommand(
		c.cfg.DispatchBatchSize,
		c.cfg.DispatchMaxAttempts,
		c.cfg.DispatchClaimTimeout,
	)
	if err != nil {
		return nil, fmt.Errorf("dispatch settings: %w", err)
	}

	job := jobs.NewNotificationDispatchJob(
		c.CreateDispatchNotificationsCommandHandler(),
		cmd,
		c.cfg.DispatchSpec,
		c.cfg.DispatchRunTimeout,
		c.logger,
	)
	return jobs.NewJobManager(job), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNegotiationUoWFactory func() commands.NegotiationUoW

func (f FuncNegotiationUoWFactory) Create() commands.NegotiationUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
