package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/lexloop/vocab_server/internal/logging"
	"github.com/lexloop/vocab_server/internal/middleware"
	"github.com/lexloop/vocab_server/internal/service"
	"github.com/lexloop/vocab_server/internal/transport"
)

type WordHTTP struct {
	Svc *service.WordService
}

func (h *WordHTTP) CreateWord(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "word_create")

	claim, ok := middleware.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	var req transport.CreateWordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("word_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	word, err := h.Svc.CreateWord(ctx, claim.ID, req)
	if err != nil {
		l.Error("word_create_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create word")
	}

	l.Info("word_create_success")
	return c.JSON(http.StatusCreated, transport.NewWordRefResponse(word))
}

func (h *WordHTTP) GetWords(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "word_list")

	claim, ok := middleware.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	words, err := h.Svc.GetWordsByOwner(ctx, claim.ID)
	if err != nil {
		l.Error("word_list_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list words")
	}

	resp := make([]transport.WordResponse, 0, len(words))
	for i := range words {
		resp = append(resp, transport.NewWordResponse(&words[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *WordHTTP) GetWord(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "word_get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("word_get_error", "status", 400, "reason", "id not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id not a uuid")
	}

	word, err := h.Svc.GetWord(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("word_get_error", "status", 404, "reason", "word not found")
			return echo.NewHTTPError(http.StatusNotFound, "word not found")
		}
		l.Error("word_get_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get word")
	}

	return c.JSON(http.StatusOK, transport.NewWordResponse(word))
}

func (h *WordHTTP) UpdateWord(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "word_update")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("word_update_error", "status", 400, "reason", "id not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id not a uuid")
	}

	var req transport.UpdateWordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("word_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if _, err := h.Svc.UpdateWord(ctx, req, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("word_update_error", "status", 404, "reason", "word not found")
			return echo.NewHTTPError(http.StatusNotFound, "word not found")
		}
		l.Error("word_update_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update word")
	}

	l.Info("word_update_success")
	return c.NoContent(http.StatusNoContent)
}

func (h *WordHTTP) DeleteWord(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "word_delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("word_delete_error", "status", 400, "reason", "id not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id not a uuid")
	}

	if err := h.Svc.DeleteWord(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("word_delete_error", "status", 404, "reason", "word not found")
			return echo.NewHTTPError(http.StatusNotFound, "word not found")
		}
		l.Error("word_delete_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete word")
	}

	l.Info("word_delete_success")
	return c.NoContent(http.StatusNoContent)
}
