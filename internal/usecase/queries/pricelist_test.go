//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"chefpartner/internal/domain/pricing"
	"chefpartner/internal/infra"
	"chefpartner/internal/pkg/clock"
	"chefpartner/internal/pkg/errs"
	"chefpartner/internal/usecase/queries"
	"chefpartner/tests/common/builder"
	queriesmock "chefpartner/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PriceListQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockPartners *queriesmock.MockPartnerReadStore
	mockProducts *queriesmock.MockProductReadStore
	mockRules    *queriesmock.MockDiscountRuleReadStore
	clock        *clock.MockClock
	queries      queries.PriceListQueries
}

func (s *PriceListQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPartners = queriesmock.NewMockPartnerReadStore(s.mockCtrl)
	s.mockProducts = queriesmock.NewMockProductReadStore(s.mockCtrl)
	s.mockRules = queriesmock.NewMockDiscountRuleReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewPriceListQueries(s.mockPartners, s.mockProducts, s.mockRules, s.clock)
}

func (s *PriceListQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPriceListQueriesSuite(t *testing.T) {
	suite.Run(t, new(PriceListQueriesTestSuite))
}

func (s *PriceListQueriesTestSuite) approvedPartner() uuid.UUID {
	partnerID := uuid.New()
	s.mockPartners.EXPECT().FindByID(gomock.Any(), partnerID).
		Return(&queries.PartnerView{ID: partnerID, Name: "Gastro Nord GmbH", Approved: true}, nil)
	return partnerID
}

func productView(brandSlug string, priceCents *int64, categoryIDs ...uuid.UUID) *queries.ProductView {
	return &queries.ProductView{
		ID:          uuid.New(),
		Name:        "Convection Oven CO-900",
		SKU:         "CO-900",
		BrandSlug:   brandSlug,
		PriceCents:  priceCents,
		CategoryIDs: categoryIDs,
	}
}

func int64Ptr(v int64) *int64 { return &v }

func (s *PriceListQueriesTestSuite) TestGetPriceList_PercentageRuleApplied() {
	partnerID := s.approvedPartner()
	product := productView("rational", int64Ptr(100000))

	rule := builder.NewRuleBuilder().
		WithPartnerID(partnerID).
		WithPercentage(10).
		BuildResolved()

	s.mockProducts.EXPECT().FindByBrand(gomock.Any(), "rational").
		Return([]*queries.ProductView{product}, nil)
	s.mockRules.EXPECT().FindActiveByPartner(gomock.Any(), partnerID).
		Return([]*pricing.Rule{rule}, nil)

	items, err := s.queries.GetPriceList(context.Background(), &partnerID, "rational")

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(int64(100000), *items[0].ListPriceCents)
	s.Equal(int64(90000), *items[0].DiscountedPriceCents)
	s.Equal(10, *items[0].DiscountPercent)
	s.Equal(rule.ID(), *items[0].AppliedRuleID)
}

func (s *PriceListQueriesTestSuite) TestGetPriceList_ProductRuleBeatsBroaderScopes() {
	partnerID := s.approvedPartner()
	categoryID := uuid.New()
	product := productView("rational", int64Ptr(100000), categoryID)

	productRule := builder.NewRuleBuilder().
		WithPartnerID(partnerID).
		WithScope(pricing.ScopeProduct{ProductID: product.ID}).
		WithPercentage(5).
		BuildResolved()
	categoryRule := builder.NewRuleBuilder().
		WithPartnerID(partnerID).
		WithScope(pricing.ScopeCategory{CategoryID: categoryID}).
		WithPercentage(20).
		BuildResolved()
	allRule := builder.NewRuleBuilder().
		WithPartnerID(partnerID).
		WithPercentage(30).
		BuildResolved()

	s.mockProducts.EXPECT().FindByBrand(gomock.Any(), "rational").
		Return([]*queries.ProductView{product}, nil)
	s.mockRules.EXPECT().FindActiveByPartner(gomock.Any(), partnerID).
		Return([]*pricing.Rule{allRule, categoryRule, productRule}, nil)

	items, err := s.queries.GetPriceList(context.Background(), &partnerID, "rational")

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	// The narrower product rule wins even though broader rules discount more
	s.Equal(int64(95000), *items[0].DiscountedPriceCents)
	s.Equal(productRule.ID(), *items[0].AppliedRuleID)
}

func (s *PriceListQueriesTestSuite) TestGetPriceList_AnonymousGetsListPrices() {
	product := productView("rational", int64Ptr(100000))

	s.mockProducts.EXPECT().FindByBrand(gomock.Any(), "rational").
		Return([]*queries.ProductView{product}, nil)

	items, err := s.queries.GetPriceList(context.Background(), nil, "rational")

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(int64(100000), *items[0].ListPriceCents)
	s.Nil(items[0].DiscountedPriceCents)
	s.Nil(items[0].DiscountPercent)
	s.Nil(items[0].AppliedRuleID)
}

func (s *PriceListQueriesTestSuite) TestGetPriceList_UnapprovedPartnerGetsListPrices() {
	partnerID := uuid.New()
	product := productView("rational", int64Ptr(100000))

	s.mockPartners.EXPECT().FindByID(gomock.Any(), partnerID).
		Return(&queries.PartnerView{ID: partnerID, Name: "Pending Partner", Approved: false}, nil)
	s.mockProducts.EXPECT().FindByBrand(gomock.Any(), "rational").
		Return([]*queries.ProductView{product}, nil)

	items, err := s.queries.GetPriceList(context.Background(), &partnerID, "rational")

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Nil(items[0].DiscountedPriceCents)
}

func (s *PriceListQueriesTestSuite) TestGetPriceList_RuleFetchFailureDegradesToListPrices() {
	partnerID := s.approvedPartner()
	product := productView("rational", int64Ptr(100000))

	s.mockProducts.EXPECT().FindByBrand(gomock.Any(), "rational").
		Return([]*queries.ProductView{product}, nil)
	s.mockRules.EXPECT().FindActiveByPartner(gomock.Any(), partnerID).
		Return(nil, infra.WrapRepoErr("rule fetch failed", errs.New("connection reset")))

	items, err := s.queries.GetPriceList(context.Background(), &partnerID, "rational")

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(int64(100000), *items[0].ListPriceCents)
	s.Nil(items[0].DiscountedPriceCents)
	s.Nil(items[0].AppliedRuleID)
}

func (s *PriceListQueriesTestSuite) TestGetPriceList_PriceOnRequestProductStaysUndiscounted() {
	partnerID := s.approvedPartner()
	product := productView("rational", nil)

	rule := builder.NewRuleBuilder().
		WithPartnerID(partnerID).
		WithPercentage(10).
		BuildResolved()

	s.mockProducts.EXPECT().FindByBrand(gomock.Any(), "rational").
		Return([]*queries.ProductView{product}, nil)
	s.mockRules.EXPECT().FindActiveByPartner(gomock.Any(), partnerID).
		Return([]*pricing.Rule{rule}, nil)

	items, err := s.queries.GetPriceList(context.Background(), &partnerID, "rational")

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Nil(items[0].ListPriceCents)
	s.Nil(items[0].DiscountedPriceCents)
	s.Nil(items[0].DiscountPercent)
	s.Nil(items[0].AppliedRuleID)
}

func (s *PriceListQueriesTestSuite) TestGetPriceList_ExpiredRuleIgnored() {
	partnerID := s.approvedPartner()
	product := productView("rational", int64Ptr(100000))

	until := s.clock.Now().Add(-time.Hour)
	rule := builder.NewRuleBuilder().
		WithPartnerID(partnerID).
		WithPercentage(10).
		WithWindow(nil, &until).
		BuildResolved()

	s.mockProducts.EXPECT().FindByBrand(gomock.Any(), "rational").
		Return([]*queries.ProductView{product}, nil)
	s.mockRules.EXPECT().FindActiveByPartner(gomock.Any(), partnerID).
		Return([]*pricing.Rule{rule}, nil)

	items, err := s.queries.GetPriceList(context.Background(), &partnerID, "rational")

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Nil(items[0].DiscountedPriceCents)
}

func (s *PriceListQueriesTestSuite) TestGetPriceList_ProductFetchFailurePropagates() {
	s.mockProducts.EXPECT().FindByBrand(gomock.Any(), "rational").
		Return(nil, infra.WrapRepoErr("product fetch failed", errs.New("connection reset")))

	items, err := s.queries.GetPriceList(context.Background(), nil, "rational")

	s.Error(err)
	s.Nil(items)
}
