//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"chefpartner/internal/domain/pricing"
	"chefpartner/internal/infra"
	"chefpartner/internal/pkg/errs"
	"chefpartner/internal/usecase/commands"
	"chefpartner/internal/usecase/shared"
	"chefpartner/tests/common/builder"
	sharedmock "chefpartner/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiscountRuleCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockUoW  *sharedmock.MockUnitOfWork
	mockTx   *sharedmock.MockTx
	mockRepo *sharedmock.MockDiscountRuleRepository
	commands commands.DiscountRuleCommands
}

func (s *DiscountRuleCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockRepo = sharedmock.NewMockDiscountRuleRepository(s.mockCtrl)
	s.commands = commands.NewDiscountRuleCommands(s.mockUoW)
}

func (s *DiscountRuleCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiscountRuleCommandsSuite(t *testing.T) {
	suite.Run(t, new(DiscountRuleCommandsTestSuite))
}

func (s *DiscountRuleCommandsTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		})
	s.mockTx.EXPECT().Rules().Return(s.mockRepo).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *DiscountRuleCommandsTestSuite) TestCreate_PersistsValidRule() {
	partnerID := uuid.New()
	req := builder.NewRuleBuilder().WithPartnerID(partnerID).WithPercentage(10).BuildUpsertRequestDTO()
	wantID := uuid.New()

	s.expectWithin()
	s.mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, rule *pricing.Rule) (uuid.UUID, error) {
			s.Equal(partnerID, rule.PartnerID())
			s.Equal(pricing.TierAll, rule.Scope().Tier())
			return wantID, nil
		})

	id, err := s.commands.Create(context.Background(), partnerID, req)

	s.Require().NoError(err)
	s.Equal(wantID, id)
}

func (s *DiscountRuleCommandsTestSuite) TestCreate_RejectsInvalidDefinitions() {
	partnerID := uuid.New()

	cases := []struct {
		name   string
		mutate func(b *builder.RuleBuilder)
	}{
		{name: "zero percentage", mutate: func(b *builder.RuleBuilder) { b.Percentage = 0 }},
		{name: "percentage above 100", mutate: func(b *builder.RuleBuilder) { b.Percentage = 100.5 }},
		{name: "negative percentage", mutate: func(b *builder.RuleBuilder) { b.Percentage = -5 }},
		{name: "negative fixed amount", mutate: func(b *builder.RuleBuilder) {
			b.Type = pricing.DiscountTypeFixedAmount
			b.AmountCents = -100
		}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := builder.NewRuleBuilder().WithPartnerID(partnerID).With(tc.mutate).BuildUpsertRequestDTO()

			_, err := s.commands.Create(context.Background(), partnerID, req)

			s.ErrorIs(err, commands.ErrInvalidRuleDefinition)
		})
	}
}

func (s *DiscountRuleCommandsTestSuite) TestCreate_RejectsMismatchedTarget() {
	partnerID := uuid.New()

	// brand scope without a slug
	req := builder.NewRuleBuilder().WithPartnerID(partnerID).BuildUpsertRequestDTO()
	req.AppliesTo = "brand"
	req.BrandSlug = nil

	_, err := s.commands.Create(context.Background(), partnerID, req)

	s.ErrorIs(err, commands.ErrInvalidRuleDefinition)
}

func (s *DiscountRuleCommandsTestSuite) TestCreate_RejectsExtraneousTarget() {
	partnerID := uuid.New()

	// all scope must not carry a product id
	req := builder.NewRuleBuilder().WithPartnerID(partnerID).BuildUpsertRequestDTO()
	productID := uuid.New()
	req.ProductID = &productID

	_, err := s.commands.Create(context.Background(), partnerID, req)

	s.ErrorIs(err, commands.ErrInvalidRuleDefinition)
}

func (s *DiscountRuleCommandsTestSuite) TestCreate_RejectsInvertedValidityWindow() {
	partnerID := uuid.New()

	b := builder.NewRuleBuilder().WithPartnerID(partnerID)
	from := b.CreatedAt
	until := from.Add(-time.Hour)
	req := b.WithWindow(&from, &until).BuildUpsertRequestDTO()

	_, err := s.commands.Create(context.Background(), partnerID, req)

	s.ErrorIs(err, commands.ErrInvalidRuleDefinition)
}

func (s *DiscountRuleCommandsTestSuite) TestUpdate_KeepsRuleID() {
	partnerID := uuid.New()
	ruleID := uuid.New()
	req := builder.NewRuleBuilder().WithPartnerID(partnerID).WithPercentage(15).BuildUpsertRequestDTO()

	s.expectWithin()
	s.mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, rule *pricing.Rule) (uuid.UUID, error) {
			s.Equal(ruleID, rule.ID())
			return ruleID, nil
		})

	err := s.commands.Update(context.Background(), partnerID, ruleID, req)

	s.NoError(err)
}

func (s *DiscountRuleCommandsTestSuite) TestDelete_MapsMissingRule() {
	ruleID := uuid.New()

	s.expectWithin()
	s.mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), ruleID).
		Return(infra.WrapRepoErr("rule not found", errs.New("no rows"), infra.KindNotFound))

	err := s.commands.Delete(context.Background(), ruleID)

	s.ErrorIs(err, commands.ErrRuleNotFound)
}

func (s *DiscountRuleCommandsTestSuite) TestSetActive_MapsMissingRule() {
	ruleID := uuid.New()

	s.expectWithin()
	s.mockRepo.EXPECT().SetActive(gomock.Any(), gomock.Any(), ruleID, false).
		Return(infra.WrapRepoErr("rule not found", errs.New("no rows"), infra.KindNotFound))

	err := s.commands.SetActive(context.Background(), ruleID, false)

	s.ErrorIs(err, commands.ErrRuleNotFound)
}

func (s *DiscountRuleCommandsTestSuite) TestSetActive_Succeeds() {
	ruleID := uuid.New()

	s.expectWithin()
	s.mockRepo.EXPECT().SetActive(gomock.Any(), gomock.Any(), ruleID, true).Return(nil)

	err := s.commands.SetActive(context.Background(), ruleID, true)

	s.NoError(err)
}
