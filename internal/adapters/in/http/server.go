package http

import (
	"log/slog"
	"net/http"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/order"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerOrderHandler     commands.RegisterOrderCommandHandler
	proposeScheduleHandler   commands.ProposeScheduleCommandHandler
	respondToScheduleHandler commands.RespondToScheduleCommandHandler

	// Query handlers
	getActiveProposalHandler  queries.GetActiveProposalQueryHandler
	getScheduleHistoryHandler queries.GetScheduleHistoryQueryHandler
	evaluateCandidateHandler  queries.EvaluateCandidateQueryHandler
	getWindowsHandler         queries.GetAvailableWindowsQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerOrderHandler commands.RegisterOrderCommandHandler,
	proposeScheduleHandler commands.ProposeScheduleCommandHandler,
	respondToScheduleHandler commands.RespondToScheduleCommandHandler,
	getActiveProposalHandler queries.GetActiveProposalQueryHandler,
	getScheduleHistoryHandler queries.GetScheduleHistoryQueryHandler,
	evaluateCandidateHandler queries.EvaluateCandidateQueryHandler,
	getWindowsHandler queries.GetAvailableWindowsQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerOrderHandler:      registerOrderHandler,
		proposeScheduleHandler:    proposeScheduleHandler,
		respondToScheduleHandler:  respondToScheduleHandler,
		getActiveProposalHandler:  getActiveProposalHandler,
		getScheduleHistoryHandler: getScheduleHistoryHandler,
		evaluateCandidateHandler:  evaluateCandidateHandler,
		getWindowsHandler:         getWindowsHandler,
		logger:                    logger.With("component", "HTTPServer"),
	}
}

// RegisterOrder handles PUT /api/v1/orders/{orderId} - mirrors an order from the order store.
func (s *Server) RegisterOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.RegisterOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRegisterOrderCommand(
		uuidFromAPI(orderId), uuidFromAPI(body.BuyerId), uuidFromAPI(body.SellerId), status,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.registerOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetScheduleHistory handles GET /api/v1/orders/{orderId}/schedules - every schedule of the order.
func (s *Server) GetScheduleHistory(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetScheduleHistoryQuery(uuidFromAPI(orderId), actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.getScheduleHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Schedule, len(views))
	for i, view := range views {
		response[i] = scheduleToAPI(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ProposeSchedule handles POST /api/v1/orders/{orderId}/schedules - proposes a delivery slot.
func (s *Server) ProposeSchedule(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.ProposeScheduleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	candidate, err := candidateFromAPI(body)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewProposeScheduleCommand(uuidFromAPI(orderId), actorFrom(ctx), candidate)
	if err != nil {
		return s.fail(ctx, err)
	}

	proposal, err := s.proposeScheduleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, scheduleToAPI(queries.NewScheduleView(proposal)))
}

// GetActiveProposal handles GET /api/v1/orders/{orderId}/schedules/active - the proposal awaiting a response.
func (s *Server) GetActiveProposal(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetActiveProposalQuery(uuidFromAPI(orderId), actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.getActiveProposalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, scheduleToAPI(view))
}

// RespondToActiveProposal handles POST /api/v1/orders/{orderId}/schedules/active/response.
func (s *Server) RespondToActiveProposal(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.RespondToActiveProposalJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	action, err := schedule.ParseAction(string(body.Action))
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRespondToActiveScheduleCommand(uuidFromAPI(orderId), actorFrom(ctx), action, body.Notes)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, cmd)
}

// RespondToSchedule handles POST /api/v1/schedules/{scheduleId}/response - confirms or rejects a proposal.
func (s *Server) RespondToSchedule(ctx echo.Context, scheduleId openapi_types.UUID) error {
	var body servers.RespondToScheduleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	action, err := schedule.ParseAction(string(body.Action))
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRespondToScheduleCommand(uuidFromAPI(scheduleId), actorFrom(ctx), action, body.Notes)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, cmd)
}

func (s *Server) respond(ctx echo.Context, cmd commands.RespondToScheduleCommand) error {
	resolved, err := s.respondToScheduleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, scheduleToAPI(queries.NewScheduleView(resolved)))
}

// EvaluateCandidate handles POST /api/v1/schedules/evaluate - a verdict without storing anything.
func (s *Server) EvaluateCandidate(ctx echo.Context) error {
	var body servers.EvaluateCandidateJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	candidate, err := candidateFromAPI(body)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewEvaluateCandidateQuery(candidate)
	if err != nil {
		return s.fail(ctx, err)
	}

	verdict, err := s.evaluateCandidateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, verdictToAPI(verdict))
}

// GetZoneWindows handles GET /api/v1/zones/{zone}/windows - the ordinance as it applies to one zone.
func (s *Server) GetZoneWindows(ctx echo.Context, zone string) error {
	parsed, err := policy.ParseZone(zone)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetAvailableWindowsQuery(parsed)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.getWindowsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, zoneWindowsToAPI(response))
}

func uuidFromAPI(id openapi_types.UUID) kernel.UUID {
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return u
}
