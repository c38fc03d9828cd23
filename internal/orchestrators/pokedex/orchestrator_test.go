package pokedex_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokedex/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex/internal/pkg/idgen"
	"github.com/KirkDiggler/pokedex/internal/pkg/picker"
	"github.com/KirkDiggler/pokedex/internal/repositories/sighting"
	sightingmock "github.com/KirkDiggler/pokedex/internal/repositories/sighting/mock"
	"github.com/KirkDiggler/pokedex/internal/services/assembly"
	assemblymock "github.com/KirkDiggler/pokedex/internal/services/assembly/mock"
	"github.com/KirkDiggler/pokedex/internal/testutils"
	"github.com/KirkDiggler/pokedex/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockClient       *pokeapimock.MockClient
	mockSightingRepo *sightingmock.MockRepository
	assembler        assembly.Assembler
	now              time.Time
	ctx              context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.mockSightingRepo = sightingmock.NewMockRepository(s.ctrl)
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = context.Background()

	a, err := assembly.NewAssembler(&assembly.AssemblerConfig{})
	s.Require().NoError(err)
	s.assembler = a
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(p picker.Picker, repo sighting.Repository) pokedex.Service {
	cfg := &pokedex.Config{
		Client:      s.mockClient,
		Assembler:   s.assembler,
		Picker:      p,
		IDGenerator: idgen.NewSequential("fetch"),
		Clock:       clock.Fixed(s.now),
		Total:       893,
	}
	if repo != nil {
		cfg.SightingRepo = repo
	}

	o, err := pokedex.NewOrchestrator(cfg)
	s.Require().NoError(err)
	return o
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	testCases := []struct {
		name    string
		config  *pokedex.Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			config: &pokedex.Config{
				Client:      s.mockClient,
				Assembler:   s.assembler,
				Picker:      picker.Fixed(1),
				IDGenerator: idgen.NewSequential("fetch"),
			},
		},
		{
			name:    "nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config is required",
		},
		{
			name:    "missing dependencies",
			config:  &pokedex.Config{},
			wantErr: true,
			errMsg:  "Client",
		},
		{
			name: "total too small",
			config: &pokedex.Config{
				Client:      s.mockClient,
				Assembler:   s.assembler,
				Picker:      picker.Fixed(1),
				IDGenerator: idgen.NewSequential("fetch"),
				Total:       1,
			},
			wantErr: true,
			errMsg:  "Total",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			o, err := pokedex.NewOrchestrator(tc.config)
			if tc.wantErr {
				s.Require().Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(o)
				return
			}
			s.NoError(err)
			s.NotNil(o)
			s.Equal(pokedex.DefaultTotal, tc.config.Total)
			s.NotNil(tc.config.Clock)
		})
	}
}

func (s *OrchestratorTestSuite) TestFetchExplicitID() {
	o := s.newOrchestrator(picker.NewSequence(), nil)
	mocks.ExpectFetch(s.mockClient, 25)

	out, err := o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{ID: 25})
	s.Require().NoError(err)
	s.Equal(uint16(25), out.Record.ID())
	s.Equal(testutils.BulbasaurDescription, out.Record.Description())
	s.Equal("fetch_1", out.FetchID)
}

func (s *OrchestratorTestSuite) TestFetchRandomID() {
	o := s.newOrchestrator(picker.NewSequence(42, 7), nil)
	mocks.ExpectFetch(s.mockClient, 42)
	mocks.ExpectFetch(s.mockClient, 7)

	first, err := o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{})
	s.Require().NoError(err)
	s.Equal(uint16(42), first.Record.ID())

	second, err := o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{})
	s.Require().NoError(err)
	s.Equal(uint16(7), second.Record.ID())
	s.NotEqual(first.FetchID, second.FetchID)
}

func (s *OrchestratorTestSuite) TestIDOutOfRange() {
	o := s.newOrchestrator(picker.Fixed(1), nil)

	out, err := o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{ID: 894})
	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.IsInvalidArgument(err))

	// the upper bound itself is a valid explicit id
	mocks.ExpectFetch(s.mockClient, 893)
	_, err = o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{ID: 893})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestNilInput() {
	o := s.newOrchestrator(picker.Fixed(1), nil)

	_, err := o.FetchRecord(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = o.ListSightings(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestPickerFailure() {
	o := s.newOrchestrator(picker.NewSequence(), nil)

	_, err := o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to pick creature")
}

func (s *OrchestratorTestSuite) TestFetchFailedPropagates() {
	o := s.newOrchestrator(picker.Fixed(1), nil)

	mocks.ExpectFetchFailure(s.mockClient, 1, pokeapi.OperationPokemon,
		errors.FetchFailed(fmt.Errorf("503"), "bad status").WithMeta("operation", "pokemon"))

	out, err := o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{ID: 1})
	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.IsFetchFailed(err))
	s.Equal("pokemon", errors.GetMeta(err)["operation"])
	s.Equal("fetch_1", errors.GetMeta(err)["fetch_id"])
}

func (s *OrchestratorTestSuite) TestDescriptionUnavailablePropagates() {
	ja, err := assembly.NewAssembler(&assembly.AssemblerConfig{Language: "ja"})
	s.Require().NoError(err)
	s.assembler = ja

	o := s.newOrchestrator(picker.Fixed(1), s.mockSightingRepo)
	mocks.ExpectFetch(s.mockClient, 1)

	out, err := o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{ID: 1})
	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.IsDescriptionUnavailable(err))
	s.False(errors.IsFetchFailed(err))
}

func (s *OrchestratorTestSuite) TestAssemblerErrorPropagates() {
	mockAssembler := assemblymock.NewMockAssembler(s.ctrl)
	s.assembler = mockAssembler
	o := s.newOrchestrator(picker.Fixed(1), nil)
	mocks.ExpectFetch(s.mockClient, 1)

	mockAssembler.EXPECT().Assemble(gomock.Any()).
		Return(nil, errors.MalformedPayloadf("creature %d has 0 types, want 1 or 2", 1))

	_, err := o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{ID: 1})
	s.Require().Error(err)
	s.True(errors.IsMalformedPayload(err))
}

func (s *OrchestratorTestSuite) TestSightingIsRecorded() {
	o := s.newOrchestrator(picker.Fixed(1), s.mockSightingRepo)
	mocks.ExpectFetch(s.mockClient, 1)

	var recorded sighting.RecordInput
	s.mockSightingRepo.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input sighting.RecordInput) (*sighting.RecordOutput, error) {
			recorded = input
			return &sighting.RecordOutput{Length: 1}, nil
		})

	out, err := o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{})
	s.Require().NoError(err)

	s.Same(out.Record, recorded.Entity)
	s.Equal("1", recorded.Entity.GetID())
	s.Equal(entities.EntityTypeCreature, recorded.Entity.GetType())
	s.Equal(testutils.TestCreatureName, recorded.Name)
	s.Equal("fetch_1", recorded.FetchID)
	s.Equal(s.now, recorded.SeenAt)
}

func (s *OrchestratorTestSuite) TestRecordMustDescribeRequestedID() {
	testCases := []struct {
		name      string
		payloadID uint16
	}{
		{name: "another creature in range", payloadID: 6},
		{name: "outside the catalog", payloadID: 10001},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			o := s.newOrchestrator(picker.Fixed(1), s.mockSightingRepo)
			mocks.ExpectMismatchedFetch(s.mockClient, 5, tc.payloadID)

			out, err := o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{ID: 5})
			s.Require().Error(err)
			s.Nil(out)
			s.True(errors.IsMalformedPayload(err))
			s.Equal(tc.payloadID, errors.GetMeta(err)["record_id"])
			s.Equal("fetch_1", errors.GetMeta(err)["fetch_id"])
		})
	}
}

func (s *OrchestratorTestSuite) TestSightingFailureDoesNotFailFetch() {
	o := s.newOrchestrator(picker.Fixed(1), s.mockSightingRepo)
	mocks.ExpectFetch(s.mockClient, 1)

	s.mockSightingRepo.EXPECT().Record(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("connection refused"))

	out, err := o.FetchRecord(s.ctx, &pokedex.FetchRecordInput{ID: 1})
	s.Require().NoError(err)
	s.Equal(testutils.TestCreatureName, out.Record.Name())
}

func (s *OrchestratorTestSuite) TestListSightings() {
	s.Run("not configured", func() {
		o := s.newOrchestrator(picker.Fixed(1), nil)
		_, err := o.ListSightings(s.ctx, &pokedex.ListSightingsInput{})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("returns history", func() {
		o := s.newOrchestrator(picker.Fixed(1), s.mockSightingRepo)
		want := []sighting.Sighting{{Type: "creature", ID: "4", Name: "charmander", FetchID: "fetch_9", SeenAt: s.now}}

		s.mockSightingRepo.EXPECT().List(gomock.Any(), sighting.ListInput{Limit: 5}).
			Return(&sighting.ListOutput{Sightings: want}, nil)

		out, err := o.ListSightings(s.ctx, &pokedex.ListSightingsInput{Limit: 5})
		s.Require().NoError(err)
		s.Equal(want, out.Sightings)
	})

	s.Run("repository error", func() {
		o := s.newOrchestrator(picker.Fixed(1), s.mockSightingRepo)
		s.mockSightingRepo.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errors.InvalidArgument("limit must not be negative"))

		_, err := o.ListSightings(s.ctx, &pokedex.ListSightingsInput{Limit: -1})
		s.True(errors.IsInvalidArgument(err))
	})
}
