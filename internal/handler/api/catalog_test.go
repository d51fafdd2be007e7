//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"chefpartner/internal/handler/api"
	resdto "chefpartner/internal/handler/dto/response"
	"chefpartner/internal/usecase/queries"
	"chefpartner/tests/common/httptest"
	queriesmock "chefpartner/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/catalog/brands/:slug/categories", s.handler.GetCategoryCounts)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestGetCategoryCounts() {
	views := []*queries.CategoryCountView{
		{CategoryID: uuid.New(), Name: "Ovens", Path: "/rm/oven", Depth: 2, DirectCount: 5, HierarchicalCount: 8},
		{CategoryID: uuid.New(), Name: "Combi Steamers", Path: "/rm/oven/combi", Depth: 3, DirectCount: 3, HierarchicalCount: 3},
	}

	s.Run("success: returns category counts", func() {
		s.mockQueries.EXPECT().GetCategoryCounts(gomock.Any(), "rational").
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/brands/rational/categories", nil, "")

		var resp []resdto.CategoryCountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp, 2)
		s.Equal(int64(8), resp[0].HierarchicalCount)
	})

	s.Run("error: returns 404 for unknown brand", func() {
		s.mockQueries.EXPECT().GetCategoryCounts(gomock.Any(), "nope").
			Return(nil, queries.ErrBrandNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/brands/nope/categories", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Brand not found")
	})

	s.Run("error: returns 500 on query failure", func() {
		s.mockQueries.EXPECT().GetCategoryCounts(gomock.Any(), "rational").
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/brands/rational/categories", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
