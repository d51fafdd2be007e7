//go:build unit

package queries_test

import (
	"context"
	"testing"

	"chefpartner/internal/domain/catalog"
	"chefpartner/internal/infra"
	"chefpartner/internal/pkg/errs"
	"chefpartner/internal/usecase/queries"
	queriesmock "chefpartner/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogQueriesTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockCategories *queriesmock.MockCategoryReadStore
	queries        queries.CatalogQueries
}

func (s *CatalogQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCategories = queriesmock.NewMockCategoryReadStore(s.mockCtrl)
	s.queries = queries.NewCatalogQueries(s.mockCategories)
}

func (s *CatalogQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogQueriesSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}

func (s *CatalogQueriesTestSuite) TestGetCategoryCounts_RollsUpDescendants() {
	ovenID := uuid.New()
	combiID := uuid.New()
	rows := []catalog.CategoryRow{
		{ID: ovenID, Path: "/rm/oven", Depth: 2, Name: "Ovens"},
		{ID: combiID, Path: "/rm/oven/combi", Depth: 3, Name: "Combi Steamers"},
	}

	s.mockCategories.EXPECT().FindRowsByBrand(gomock.Any(), "rational").Return(rows, nil)
	s.mockCategories.EXPECT().DirectProductCounts(gomock.Any(), "rational").
		Return(map[uuid.UUID]int64{ovenID: 5, combiID: 3}, nil)

	views, err := s.queries.GetCategoryCounts(context.Background(), "rational")

	s.Require().NoError(err)
	s.Require().Len(views, 2)

	byID := make(map[uuid.UUID]*queries.CategoryCountView)
	for _, v := range views {
		byID[v.CategoryID] = v
	}
	s.Equal(int64(5), byID[ovenID].DirectCount)
	s.Equal(int64(8), byID[ovenID].HierarchicalCount)
	s.Equal(int64(3), byID[combiID].DirectCount)
	s.Equal(int64(3), byID[combiID].HierarchicalCount)
}

func (s *CatalogQueriesTestSuite) TestGetCategoryCounts_UnknownBrand() {
	s.mockCategories.EXPECT().FindRowsByBrand(gomock.Any(), "nope").
		Return(nil, infra.WrapRepoErr("brand not found", errs.New("no rows"), infra.KindNotFound))

	views, err := s.queries.GetCategoryCounts(context.Background(), "nope")

	s.ErrorIs(err, queries.ErrBrandNotFound)
	s.Nil(views)
}

func (s *CatalogQueriesTestSuite) TestGetCategoryCounts_CountFetchFailureServesZeroCounts() {
	ovenID := uuid.New()
	rows := []catalog.CategoryRow{
		{ID: ovenID, Path: "/rm/oven", Depth: 2, Name: "Ovens"},
	}

	s.mockCategories.EXPECT().FindRowsByBrand(gomock.Any(), "rational").Return(rows, nil)
	s.mockCategories.EXPECT().DirectProductCounts(gomock.Any(), "rational").
		Return(nil, infra.WrapRepoErr("count fetch failed", errs.New("connection reset")))

	views, err := s.queries.GetCategoryCounts(context.Background(), "rational")

	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal(int64(0), views[0].DirectCount)
	s.Equal(int64(0), views[0].HierarchicalCount)
}

func (s *CatalogQueriesTestSuite) TestGetCategoryCounts_EmptyTree() {
	s.mockCategories.EXPECT().FindRowsByBrand(gomock.Any(), "rational").Return([]catalog.CategoryRow{}, nil)
	s.mockCategories.EXPECT().DirectProductCounts(gomock.Any(), "rational").
		Return(map[uuid.UUID]int64{}, nil)

	views, err := s.queries.GetCategoryCounts(context.Background(), "rational")

	s.Require().NoError(err)
	s.Empty(views)
}
