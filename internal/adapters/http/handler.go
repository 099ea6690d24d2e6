package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/cardstore-go/internal/app"
	"github.com/randomtoy/cardstore-go/internal/domain"
)

// errMalformedBody marks a POST body that is not a JSON object of strings.
var errMalformedBody = errors.New("malformed request body")

type Handler struct {
	svc *app.CardService
}

func NewHandler(svc *app.CardService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/cards", h.ListCards)
	e.GET("/cards/:id", h.GetCard)
	e.POST("/cards", h.CreateCard)
	e.DELETE("/cards/:id", h.DeleteCard)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListCards(c echo.Context) error {
	cards, err := h.svc.ListCards(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, cards)
}

func (h *Handler) GetCard(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return mapError(c, domain.ErrCardNotFound)
	}

	card, err := h.svc.GetCard(c.Request().Context(), id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, card)
}

func (h *Handler) CreateCard(c echo.Context) error {
	req, err := decodeCreateRequest(c.Request().Body)
	if err != nil {
		return mapError(c, err)
	}

	card, err := h.svc.CreateCard(c.Request().Context(), req.toInput())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, card)
}

func (h *Handler) DeleteCard(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return mapError(c, domain.ErrCardNotFound)
	}

	card, err := h.svc.DeleteCard(c.Request().Context(), id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, DeleteCardResponse{
		Message: fmt.Sprintf(msgCardRemovedFmt, id),
		Card:    card,
	})
}

// parseID reads the :id path parameter. A non-integer id can never match a
// stored card, so callers treat !ok as not found.
func parseID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeCreateRequest treats an empty body as an empty object. Keys are
// matched exactly, so "SUIT" does not count as "suit".
func decodeCreateRequest(body io.Reader) (CreateCardRequest, error) {
	if body == nil {
		return CreateCardRequest{}, nil
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return CreateCardRequest{}, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return CreateCardRequest{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return CreateCardRequest{}, fmt.Errorf("%w: %v", errMalformedBody, err)
	}

	var req CreateCardRequest
	if err := stringField(fields, "suit", &req.Suit); err != nil {
		return CreateCardRequest{}, err
	}
	if err := stringField(fields, "value", &req.Value); err != nil {
		return CreateCardRequest{}, err
	}
	return req, nil
}

// stringField leaves dst empty when key is absent or null.
func stringField(fields map[string]json.RawMessage, key string, dst *string) error {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	var s *string
	if err := json.Unmarshal(v, &s); err != nil {
		return fmt.Errorf("%w: field %s: %v", errMalformedBody, key, err)
	}
	if s != nil {
		*dst = *s
	}
	return nil
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		// Produced by echo itself, e.g. the body limit while reading.
		return he
	case errors.Is(err, domain.ErrCardNotFound):
		return c.JSON(http.StatusNotFound, MessageResponse{Message: msgCardNotFound})
	case errors.Is(err, domain.ErrMissingFields):
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: msgMissingFields})
	case errors.Is(err, errMalformedBody):
		slog.Debug("rejected request body", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: msgMalformedBody})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, MessageResponse{Message: msgInternalError})
	}
}
