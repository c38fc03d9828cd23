package pokeapi_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokedex/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/testutils"
	"github.com/KirkDiggler/pokedex/internal/testutils/mocks"
)

type FetchTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	ctx        context.Context
}

func TestFetchSuite(t *testing.T) {
	suite.Run(t, new(FetchTestSuite))
}

func (s *FetchTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()
}

func (s *FetchTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FetchTestSuite) TestFetchSuccess() {
	mocks.ExpectFetch(s.mockClient, testutils.TestCreatureID)

	payloads, err := pokeapi.Fetch(s.ctx, s.mockClient, testutils.TestCreatureID)
	s.Require().NoError(err)
	s.Equal(testutils.CreateTestPayloads(), payloads)
}

func (s *FetchTestSuite) TestAnySubRequestFailureFailsFetch() {
	operations := []pokeapi.Operation{
		pokeapi.OperationPortrait,
		pokeapi.OperationShinyPortrait,
		pokeapi.OperationPokemon,
		pokeapi.OperationSpecies,
	}

	for _, op := range operations {
		s.Run(string(op)+" coded failure", func() {
			failure := errors.FetchFailed(fmt.Errorf("boom"), "request failed").
				WithMeta("operation", string(op))
			mocks.ExpectFetchFailure(s.mockClient, 7, op, failure)

			payloads, err := pokeapi.Fetch(s.ctx, s.mockClient, 7)
			s.Require().Error(err)
			s.Nil(payloads)
			s.True(errors.IsFetchFailed(err))
			s.Equal(string(op), errors.GetMeta(err)["operation"])
		})

		s.Run(string(op)+" plain failure", func() {
			mocks.ExpectFetchFailure(s.mockClient, 7, op, fmt.Errorf("connection reset by peer"))

			payloads, err := pokeapi.Fetch(s.ctx, s.mockClient, 7)
			s.Require().Error(err)
			s.Nil(payloads)
			s.True(errors.IsFetchFailed(err))
			s.Contains(err.Error(), "connection reset by peer")
		})
	}
}

func (s *FetchTestSuite) TestFailureCancelsSiblings() {
	s.mockClient.EXPECT().GetSprite(gomock.Any(), uint16(3), pokeapi.SpriteNormal).
		Return(nil, errors.FetchFailed(fmt.Errorf("timeout"), "request failed"))
	s.mockClient.EXPECT().GetSprite(gomock.Any(), uint16(3), pokeapi.SpriteShiny).
		DoAndReturn(func(ctx context.Context, _ uint16, _ pokeapi.SpriteVariant) ([]byte, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), uint16(3)).
		DoAndReturn(func(ctx context.Context, _ uint16) (*pokeapi.PokemonResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), uint16(3)).
		DoAndReturn(func(ctx context.Context, _ uint16) (*pokeapi.SpeciesResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	payloads, err := pokeapi.Fetch(s.ctx, s.mockClient, 3)
	s.Require().Error(err)
	s.Nil(payloads)
	s.True(errors.IsFetchFailed(err))
	s.Contains(err.Error(), "timeout")
}

func (s *FetchTestSuite) TestFetchValidatesInput() {
	_, err := pokeapi.Fetch(s.ctx, nil, 1)
	s.True(errors.IsInvalidArgument(err))

	_, err = pokeapi.Fetch(s.ctx, s.mockClient, 0)
	s.True(errors.IsInvalidArgument(err))
}
