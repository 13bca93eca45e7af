package api

import (
	"context"
	"net/http"
	"strconv"

	reqdto "cafe-menu-service/internal/handler/dto/request"
	resdto "cafe-menu-service/internal/handler/dto/response"
	"cafe-menu-service/internal/handler/httperr"
	"cafe-menu-service/internal/handler/middleware"
	"cafe-menu-service/internal/pkg/errs"
	"cafe-menu-service/internal/usecase/commands"
	"cafe-menu-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CodeRequestInvalid = "request.invalid"
	CodeIDInvalid      = "request.id_invalid"
	CodeLimitInvalid   = "request.limit_invalid"
)

var errUnauthorized = errs.New("cafe identity missing from context")

type MenuHandler struct {
	cmds commands.MenuCommands
	q    queries.MenuQueries
}

func NewMenuHandler(cmds commands.MenuCommands, q queries.MenuQueries) *MenuHandler {
	return &MenuHandler{cmds: cmds, q: q}
}

// @Summary Create menu
// @Description Create a menu in the New state from its full content
// @Tags menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MenuRequest true "Menu content"
// @Success 201 {object} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /menus [post]
func (h *MenuHandler) Create(c *gin.Context) {
	cafeID, ok := cafeFromContext(c)
	if !ok {
		return
	}
	req, ok := bindMenuRequest(c)
	if !ok {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), cafeID, req)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), cafeID, result.MenuID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/menus/"+result.MenuID.String())
	c.JSON(http.StatusCreated, resdto.FromMenuView(view))
}

// @Summary Get menu
// @Description Get a menu of the caller's cafe by ID
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Success 200 {object} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menus/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	cafeID, menuID, ok := cafeAndMenu(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), cafeID, menuID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuView(view))
}

// @Summary Get active menu
// @Description Get the menu currently served by the caller's cafe
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MenuResponse
// @Failure 404 {object} httperr.Response
// @Router /menus/active [get]
func (h *MenuHandler) GetActive(c *gin.Context) {
	cafeID, ok := cafeFromContext(c)
	if !ok {
		return
	}
	view, err := h.q.GetActive(c.Request.Context(), cafeID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuView(view))
}

// @Summary List menus
// @Description List the cafe's menus, newest first, with keyset pagination
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Param state query string false "new, published or active"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.MenuListResponse
// @Failure 400 {object} httperr.Response
// @Router /menus [get]
func (h *MenuHandler) List(c *gin.Context) {
	cafeID, ok := cafeFromContext(c)
	if !ok {
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithDomainError(c, errs.Validation(errs.NewDetail("limit", CodeLimitInvalid, "limit must be an integer")))
			return
		}
		limit = queries.ValidateLimit(iv)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListByCafe(c.Request.Context(), cafeID, queries.MenuFilters{State: c.Query("state")}, cursor, limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuList(items, next))
}

// @Summary Sync menu
// @Description Replace the menu content with the desired state. Sections and items are matched by id; entries without an id are created and missing ones are removed.
// @Tags menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Param request body reqdto.MenuRequest true "Desired menu content"
// @Success 200 {object} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menus/{id} [put]
func (h *MenuHandler) Sync(c *gin.Context) {
	cafeID, menuID, ok := cafeAndMenu(c)
	if !ok {
		return
	}
	req, ok := bindMenuRequest(c)
	if !ok {
		return
	}
	if err := h.cmds.Sync(c.Request.Context(), cafeID, menuID, req); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondWithMenu(c, cafeID, menuID)
}

// @Summary Publish menu
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Success 200 {object} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /menus/{id}/publish [post]
func (h *MenuHandler) Publish(c *gin.Context) {
	h.transition(c, h.cmds.Publish)
}

// @Summary Activate menu
// @Description Make a published menu the cafe's active menu; the previous active menu returns to Published
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Success 200 {object} resdto.MenuResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /menus/{id}/activate [post]
func (h *MenuHandler) Activate(c *gin.Context) {
	h.transition(c, h.cmds.Activate)
}

// @Summary Deactivate menu
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Success 200 {object} resdto.MenuResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /menus/{id}/deactivate [post]
func (h *MenuHandler) Deactivate(c *gin.Context) {
	h.transition(c, h.cmds.Deactivate)
}

// @Summary Delete menu
// @Description Soft delete a menu that is not active
// @Tags menus
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /menus/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	cafeID, menuID, ok := cafeAndMenu(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), cafeID, menuID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clone menu
// @Description Copy a menu into a new menu in the New state
// @Tags menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Source menu ID"
// @Param request body reqdto.CloneMenuRequest false "Name of the copy"
// @Success 201 {object} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menus/{id}/clone [post]
func (h *MenuHandler) Clone(c *gin.Context) {
	cafeID, menuID, ok := cafeAndMenu(c)
	if !ok {
		return
	}
	var req reqdto.CloneMenuRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortInvalidBody(c, err)
			return
		}
	}
	result, err := h.cmds.Clone(c.Request.Context(), cafeID, menuID, req.CloneName())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), cafeID, result.MenuID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/menus/"+result.MenuID.String())
	c.JSON(http.StatusCreated, resdto.FromMenuView(view))
}

func (h *MenuHandler) transition(c *gin.Context, op func(ctx context.Context, cafeID, menuID uuid.UUID) error) {
	cafeID, menuID, ok := cafeAndMenu(c)
	if !ok {
		return
	}
	if err := op(c.Request.Context(), cafeID, menuID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondWithMenu(c, cafeID, menuID)
}

func (h *MenuHandler) respondWithMenu(c *gin.Context, cafeID, menuID uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), cafeID, menuID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuView(view))
}

func bindMenuRequest(c *gin.Context) (commands.MenuRequest, bool) {
	var req reqdto.MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return commands.MenuRequest{}, false
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return commands.MenuRequest{}, false
	}
	return cmd, true
}

func abortInvalidBody(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request",
		[]errs.Detail{errs.NewDetail("", CodeRequestInvalid, "request body is not valid JSON for this endpoint")})
}

func cafeFromContext(c *gin.Context) (uuid.UUID, bool) {
	cafeID, ok := middleware.GetCafeID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return cafeID, true
}

func cafeAndMenu(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	cafeID, ok := cafeFromContext(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	menuID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id",
			[]errs.Detail{errs.NewDetail("id", CodeIDInvalid, "id must be a UUID")})
		return uuid.Nil, uuid.Nil, false
	}
	return cafeID, menuID, true
}
