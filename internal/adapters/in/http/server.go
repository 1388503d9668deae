// Package http is the REST adapter. Handlers translate JSON requests into
// commands and queries and map domain errors onto status codes.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"giftexchange/internal/core/application/usecases/commands"
	"giftexchange/internal/core/application/usecases/queries"
	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/core/domain/services"
	"giftexchange/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// MatchFailedMessage is returned with 422 when the recipient engine gave up.
const MatchFailedMessage = "matching failed, try again"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	draftHandler commands.DraftPickOrderCommandHandler
	matchHandler commands.MatchRecipientsCommandHandler
	saveHandler  commands.SaveRosterCommandHandler

	// Query handlers
	getRosterHandler   queries.GetRosterQueryHandler
	listRostersHandler queries.ListRostersQueryHandler

	logger *slog.Logger
}

func NewServer(
	draftHandler commands.DraftPickOrderCommandHandler,
	matchHandler commands.MatchRecipientsCommandHandler,
	saveHandler commands.SaveRosterCommandHandler,
	getRosterHandler queries.GetRosterQueryHandler,
	listRostersHandler queries.ListRostersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		draftHandler:       draftHandler,
		matchHandler:       matchHandler,
		saveHandler:        saveHandler,
		getRosterHandler:   getRosterHandler,
		listRostersHandler: listRostersHandler,
		logger:             logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the API on e. metrics may be nil.
func (s *Server) RegisterRoutes(e *echo.Echo, metrics http.Handler) {
	api := e.Group("/api")
	api.GET("/health", s.Health)
	api.POST("/draft-pick-order", s.DraftPickOrder)
	api.POST("/match", s.Match)
	api.POST("/groups/save", s.SaveGroups)
	api.GET("/groups/load/:filename", s.LoadGroups)
	api.GET("/groups/list", s.ListGroups)

	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
}

// Health handles GET /api/health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{Status: "OK"})
}

// DraftPickOrder handles POST /api/draft-pick-order - drafts ranks only.
func (s *Server) DraftPickOrder(ctx echo.Context) error {
	var req GroupsRequest
	if err := ctx.Bind(&req); err != nil || req.Groups == nil {
		return badRequest(ctx, "Groups must be an array")
	}

	cmd, err := commands.NewDraftPickOrderCommand(toEntries(req.Groups))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.draftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DraftResponse{
		Success:      true,
		TotalMembers: result.TotalMembers,
		Groups:       fromEntries(result.Groups),
	})
}

// Match handles POST /api/match - runs a full draw.
func (s *Server) Match(ctx echo.Context) error {
	var req MatchRequest
	if err := ctx.Bind(&req); err != nil || req.Groups == nil {
		return badRequest(ctx, "Groups must be an array")
	}

	cmd, err := commands.NewMatchRecipientsCommand(toEntries(req.Groups), req.SendEmails)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.matchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MatchResponse{
		Success:       true,
		Message:       result.Message,
		RunID:         result.RunID.String(),
		Attempts:      result.Attempts,
		Members:       fromPairings(result.Pairings),
		Groups:        fromEntries(result.Groups),
		Notifications: fromNotifications(result.Notifications),
	})
}

// SaveGroups handles POST /api/groups/save.
func (s *Server) SaveGroups(ctx echo.Context) error {
	var req SaveRequest
	if err := ctx.Bind(&req); err != nil || req.Groups == nil {
		return badRequest(ctx, "Groups must be an array")
	}

	cmd, err := commands.NewSaveRosterCommand(req.Filename, toEntries(req.Groups))
	if err != nil {
		return badRequest(ctx, "Filename is required")
	}

	key, err := s.saveHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	filename := key + ".json"
	return ctx.JSON(http.StatusOK, SaveResponse{
		Success:  true,
		Message:  "Groups saved to " + filename,
		Filename: filename,
	})
}

// LoadGroups handles GET /api/groups/load/:filename.
func (s *Server) LoadGroups(ctx echo.Context) error {
	query, err := queries.NewGetRosterQuery(ctx.Param("filename"))
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.getRosterHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoadResponse{
		Success: true,
		Name:    resp.Name,
		SavedAt: resp.SavedAt,
		Groups:  fromEntries(resp.Groups),
	})
}

// ListGroups handles GET /api/groups/list.
func (s *Server) ListGroups(ctx echo.Context) error {
	keys, err := s.listRostersHandler.Handle(ctx.Request().Context(), queries.NewListRostersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	files := make([]string, 0, len(keys))
	for _, k := range keys {
		files = append(files, k+".json")
	}
	return ctx.JSON(http.StatusOK, ListResponse{Success: true, Files: files})
}

func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: "File not found"})
	case errors.Is(err, services.ErrAssignmentFailed):
		// the match handler already logged the failure with its run id
		return ctx.JSON(http.StatusUnprocessableEntity, Error{Code: http.StatusUnprocessableEntity, Message: MatchFailedMessage})
	case isInputError(err):
		return badRequest(ctx, err.Error())
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed", "path", ctx.Path(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: "Internal server error"})
	}
}

func isInputError(err error) bool {
	return errors.Is(err, roster.ErrInvalidInput) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

func badRequest(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: msg})
}
