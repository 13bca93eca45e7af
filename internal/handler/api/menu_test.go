//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"cafe-menu-service/internal/domain/menu"
	"cafe-menu-service/internal/handler/api"
	resdto "cafe-menu-service/internal/handler/dto/response"
	"cafe-menu-service/internal/handler/middleware"
	"cafe-menu-service/internal/pkg/errs"
	"cafe-menu-service/internal/usecase/commands"
	"cafe-menu-service/internal/usecase/queries"
	"cafe-menu-service/tests/common/builder"
	"cafe-menu-service/tests/common/httptest"
	"cafe-menu-service/tests/common/testutil"
	commandsmock "cafe-menu-service/tests/mock/commands"
	queriesmock "cafe-menu-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MenuHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMenuCommands
	mockQueries  *queriesmock.MockMenuQueries
	handler      *api.MenuHandler

	cafeID uuid.UUID
	menu   *menu.Menu
	view   *queries.MenuView
}

func (s *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMenuCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMenuQueries(s.mockCtrl)
	s.handler = api.NewMenuHandler(s.mockCommands, s.mockQueries)

	b := builder.NewMenuBuilder().WithRichContent()
	s.cafeID = b.CafeID
	s.menu = b.MustBuild()
	s.view = builder.BuildView(s.menu)

	// Stand-in for RequireAuth: any bearer token is a manager of the test cafe
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetIdentity(c, uuid.New(), s.cafeID, middleware.RoleManager)
		c.Next()
	}

	menus := s.router.Group("/api/menus", authMiddleware)
	menus.GET("", s.handler.List)
	menus.GET("/active", s.handler.GetActive)
	menus.GET("/:id", s.handler.Get)
	menus.POST("", s.handler.Create)
	menus.PUT("/:id", s.handler.Sync)
	menus.POST("/:id/clone", s.handler.Clone)
	menus.POST("/:id/publish", s.handler.Publish)
	menus.POST("/:id/activate", s.handler.Activate)
	menus.POST("/:id/deactivate", s.handler.Deactivate)
	menus.DELETE("/:id", s.handler.Delete)

	// Route without auth to check the handler's own identity guard
	s.router.GET("/anonymous/menus/:id", s.handler.Get)
}

func (s *MenuHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMenuHandlerSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}

func (s *MenuHandlerTestSuite) menuURL(suffix string) string {
	return "/api/menus/" + s.menu.ID().String() + suffix
}

func (s *MenuHandlerTestSuite) expectView() {
	s.mockQueries.EXPECT().GetByID(gomock.Any(), s.cafeID, s.menu.ID()).Return(s.view, nil).Times(1)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *MenuHandlerTestSuite) TestCreate() {
	url := "/api/menus"
	reqBody := builder.NewMenuBuilder().WithRichContent().BuildRequestDTO()

	s.Run("success: returns 201 Created with the stored menu", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.cafeID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req commands.MenuRequest) (*commands.MenuResult, error) {
				s.Equal("Lunch", req.Name)
				s.Require().Len(req.Sections, 2)
				s.Equal("07:00", req.Sections[0].AvailableFrom.String())
				return &commands.MenuResult{MenuID: s.menu.ID()}, nil
			}).Times(1)
		s.expectView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.MenuResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/menus/" + s.menu.ID().String()})
		s.Equal(s.menu.ID(), body.ID)
		s.Equal("new", body.State)
		s.Require().Len(body.Sections, 2)
		pancakes := body.Sections[0].Items[0]
		s.Equal("8", pancakes.Price.Amount)
		s.Equal("0.25", pancakes.Price.Discount)
		s.Equal("6", pancakes.Price.FinalAmount)
		s.Require().NotNil(pancakes.Image)
		s.Equal("menus/pancakes_thumb.jpg", pancakes.Image.ThumbnailPath)
		s.Len(pancakes.Ingredients, 2)
	})

	s.Run("error: 400 Bad Request for malformed payloads", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "name is not a string", mutate: testutil.Field("name", 42)},
			{name: "sections is not a list", mutate: testutil.Field("sections", "Mains")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
				httptest.AssertErrorCodes(s.T(), rec, api.CodeRequestInvalid)
			})
		}
	})

	s.Run("error: 400 for an unparseable availability time", func() {
		bad := builder.NewMenuBuilder().BuildRequestDTO()
		from := "7am"
		bad.Sections[0].AvailableFrom = &from

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		details := httptest.ErrorDetails(s.T(), rec)
		s.Require().Len(details, 1)
		s.Equal("sections[0].available_from", details[0].Field)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name: "domain validation error",
				commandsError: errs.Validation(
					errs.NewDetail("name", menu.CodeMenuNameRequired, "name is required"),
					errs.NewDetail("sections[0].items[0].price", menu.CodeItemPriceRequired, "price is required"),
				),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.cafeID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "database error")
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *MenuHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK with MenuResponse", func() {
		s.expectView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.menuURL(""), nil, "bearer-token")

		var body resdto.MenuResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.menu.ID(), body.ID)
		s.Equal(s.cafeID, body.CafeID)
		s.Require().NotNil(body.Sections[0].AvailableTo)
		s.Equal("11:30", *body.Sections[0].AvailableTo)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/menus/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		httptest.AssertErrorCodes(s.T(), rec, api.CodeIDInvalid)
	})

	s.Run("error: 404 Not Found for missing menu", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.cafeID, s.menu.ID()).
			Return(nil, errs.NotFound(menu.CodeMenuNotFound, "menu not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.menuURL(""), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
		httptest.AssertErrorCodes(s.T(), rec, menu.CodeMenuNotFound)
	})

	s.Run("error: 401 when no cafe identity reached the handler", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/anonymous/menus/"+s.menu.ID().String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *MenuHandlerTestSuite) TestGetActive() {
	s.Run("success: returns the active menu", func() {
		s.mockQueries.EXPECT().GetActive(gomock.Any(), s.cafeID).Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/menus/active", nil, "bearer-token")

		var body resdto.MenuResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.menu.ID(), body.ID)
	})

	s.Run("error: 404 when the cafe has no active menu", func() {
		s.mockQueries.EXPECT().GetActive(gomock.Any(), s.cafeID).
			Return(nil, errs.NotFound(menu.CodeMenuNotFound, "menu not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/menus/active", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *MenuHandlerTestSuite) TestList() {
	s.Run("success: returns the page and the next cursor", func() {
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().
			ListByCafe(gomock.Any(), s.cafeID, queries.MenuFilters{State: "published"}, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.MenuListItem{builder.BuildListItem(s.menu)}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/menus?state=published&limit=5&after=abc", nil, "bearer-token")

		var body resdto.MenuListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Menus, 1)
		s.Equal(2, body.Menus[0].SectionCount)
		s.Equal(3, body.Menus[0].ItemCount)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-page", *body.NextCursor)
	})

	s.Run("success: defaults and clamps the limit", func() {
		gomock.InOrder(
			s.mockQueries.EXPECT().ListByCafe(gomock.Any(), s.cafeID, queries.MenuFilters{}, nil, queries.DefaultListLimit).
				Return([]*queries.MenuListItem{}, nil, nil),
			s.mockQueries.EXPECT().ListByCafe(gomock.Any(), s.cafeID, queries.MenuFilters{}, nil, queries.MaxListLimit).
				Return([]*queries.MenuListItem{}, nil, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/menus", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"menus":[]}`, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/menus?limit=500", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/menus?limit=ten", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		httptest.AssertErrorCodes(s.T(), rec, api.CodeLimitInvalid)
	})

	s.Run("error: 400 for an invalid cursor", func() {
		s.mockQueries.EXPECT().ListByCafe(gomock.Any(), s.cafeID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Validation(errs.NewDetail("after", queries.CodeCursorInvalid, "invalid cursor encoding"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/menus?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		httptest.AssertErrorCodes(s.T(), rec, queries.CodeCursorInvalid)
	})
}

// ================================================================================
// TestSync
// ================================================================================

func (s *MenuHandlerTestSuite) TestSync() {
	reqBody := builder.NewMenuBuilder().BuildRequestDTO()

	s.Run("success: returns 200 OK with the synced menu", func() {
		s.mockCommands.EXPECT().Sync(gomock.Any(), s.cafeID, s.menu.ID(), gomock.Any()).Return(nil).Times(1)
		s.expectView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.menuURL(""), reqBody, "bearer-token")

		var body resdto.MenuResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.menu.ID(), body.ID)
	})

	s.Run("error: every violation is returned at once", func() {
		s.mockCommands.EXPECT().Sync(gomock.Any(), s.cafeID, s.menu.ID(), gomock.Any()).
			Return(errs.Validation(
				errs.NewDetail("sections[0].id", menu.CodeSectionNotFound, "section not found"),
				errs.NewDetail("sections", menu.CodeSectionDuplicateName, "duplicate section names: mains"),
				errs.NewDetail("sections[1].items[0].price.amount", menu.CodePriceAmountInvalid, "price amount must be greater than zero"),
			)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.menuURL(""), reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		httptest.AssertErrorCodes(s.T(), rec, menu.CodeSectionNotFound, menu.CodeSectionDuplicateName, menu.CodePriceAmountInvalid)
	})

	s.Run("error: 404 for a missing menu", func() {
		s.mockCommands.EXPECT().Sync(gomock.Any(), s.cafeID, s.menu.ID(), gomock.Any()).
			Return(errs.NotFound(menu.CodeMenuNotFound, "menu not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.menuURL(""), reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestLifecycle
// ================================================================================

func (s *MenuHandlerTestSuite) TestLifecycle() {
	testCases := []struct {
		name   string
		suffix string
		expect func() *gomock.Call
	}{
		{
			name:   "publish",
			suffix: "/publish",
			expect: func() *gomock.Call { return s.mockCommands.EXPECT().Publish(gomock.Any(), s.cafeID, s.menu.ID()) },
		},
		{
			name:   "activate",
			suffix: "/activate",
			expect: func() *gomock.Call { return s.mockCommands.EXPECT().Activate(gomock.Any(), s.cafeID, s.menu.ID()) },
		},
		{
			name:   "deactivate",
			suffix: "/deactivate",
			expect: func() *gomock.Call { return s.mockCommands.EXPECT().Deactivate(gomock.Any(), s.cafeID, s.menu.ID()) },
		},
	}

	for _, tc := range testCases {
		s.Run("success: "+tc.name+" returns the menu", func() {
			tc.expect().Return(nil).Times(1)
			s.expectView()

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.menuURL(tc.suffix), nil, "bearer-token")
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		})

		s.Run("error: "+tc.name+" conflict maps to 409", func() {
			tc.expect().Return(errs.Conflict(menu.CodeMenuNotPublished, "menu must be published before activation")).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.menuURL(tc.suffix), nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Conflict")
			httptest.AssertErrorCodes(s.T(), rec, menu.CodeMenuNotPublished)
		})
	}

	s.Run("success: delete returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.cafeID, s.menu.ID()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.menuURL(""), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: deleting the active menu maps to 409", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.cafeID, s.menu.ID()).
			Return(errs.Conflict(menu.CodeMenuActiveNotDeletable, "active menu cannot be deleted")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.menuURL(""), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Conflict")
	})
}

// ================================================================================
// TestClone
// ================================================================================

func (s *MenuHandlerTestSuite) TestClone() {
	cloneID := uuid.New()
	cloneView := builder.BuildView(s.menu)
	cloneView.ID = cloneID

	s.Run("success: body name is used", func() {
		s.mockCommands.EXPECT().Clone(gomock.Any(), s.cafeID, s.menu.ID(), "Dinner").
			Return(&commands.MenuResult{MenuID: cloneID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.cafeID, cloneID).Return(cloneView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.menuURL("/clone"), map[string]any{"name": " Dinner "}, "bearer-token")

		var body resdto.MenuResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/menus/" + cloneID.String()})
		s.Equal(cloneID, body.ID)
	})

	s.Run("success: empty body keeps the source name", func() {
		s.mockCommands.EXPECT().Clone(gomock.Any(), s.cafeID, s.menu.ID(), "").
			Return(&commands.MenuResult{MenuID: cloneID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.cafeID, cloneID).Return(cloneView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.menuURL("/clone"), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 404 for a deleted source", func() {
		s.mockCommands.EXPECT().Clone(gomock.Any(), s.cafeID, s.menu.ID(), "").
			Return(nil, errs.NotFound(menu.CodeMenuNotFound, "menu not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.menuURL("/clone"), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
