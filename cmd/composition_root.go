package cmd

import (
	"log/slog"

	httpadapter "rider/internal/adapters/in/http"
	"rider/internal/adapters/out/riderapi"
	"rider/internal/core/application/usecases/commands"
	"rider/internal/core/application/usecases/queries"
	"rider/internal/core/application/workflow"
	"rider/internal/jobs"
)

type CompositionRoot struct {
	config Config
	client *riderapi.Client
	views  *workflow.Registry
	logger *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	client, err := riderapi.NewClient(riderapi.Config{
		BaseURL: config.BackendBaseURL,
		Token:   config.BackendToken,
		Timeout: config.BackendTimeout,
		ActorID: config.RiderActorID,
	}, nil, logger)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config: config,
		client: client,
		logger: logger,
	}
	c.views = workflow.NewRegistry(workflow.Dependencies{
		Tabs:    c.CreateFetchTabQueryHandler(),
		Details: c.CreateGetDeliveryQueryHandler(),
		Actions: c.CreateInvokeActionCommandHandler(),
		Bind:    riderapi.WithToken,
		Logger:  logger,
	})
	return c, nil
}

func (c *CompositionRoot) CreateInvokeActionCommandHandler() commands.InvokeActionCommandHandler {
	return commands.NewInvokeActionCommandHandler(c.client, c.logger)
}

func (c *CompositionRoot) CreateFetchTabQueryHandler() queries.FetchTabQueryHandler {
	return queries.NewFetchTabQueryHandler(c.client)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.client)
}

func (c *CompositionRoot) CreateGetDeliveryCoordinatesQueryHandler() queries.GetDeliveryCoordinatesQueryHandler {
	return queries.NewGetDeliveryCoordinatesQueryHandler(c.client)
}

func (c *CompositionRoot) CreateListMyDeliveriesQueryHandler() queries.ListMyDeliveriesQueryHandler {
	return queries.NewListMyDeliveriesQueryHandler(c.client)
}

func (c *CompositionRoot) Views() *workflow.Registry {
	return c.views
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.views,
		c.CreateGetDeliveryQueryHandler(),
		c.CreateGetDeliveryCoordinatesQueryHandler(),
		c.CreateListMyDeliveriesQueryHandler(),
		c.CreateFetchTabQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.views, jobs.Config{
		RefreshSpec:    c.config.WorklistRefreshSpec,
		RefreshTimeout: c.config.BackendTimeout,
		ViewIdleTTL:    c.config.ViewIdleTTL,
	}, c.logger)
}
