package shell_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
	pokedexmock "github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex/mock"
	"github.com/KirkDiggler/pokedex/internal/shell"
	"github.com/KirkDiggler/pokedex/internal/testutils"
)

type ShellTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *pokedexmock.MockService
	shell       *shell.Shell
	ctx         context.Context
}

func TestShellSuite(t *testing.T) {
	suite.Run(t, new(ShellTestSuite))
}

func (s *ShellTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = pokedexmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	sh, err := shell.New(&shell.Config{Service: s.mockService})
	s.Require().NoError(err)
	s.shell = sh
}

func (s *ShellTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ShellTestSuite) TestNew() {
	_, err := shell.New(nil)
	s.Error(err)

	_, err = shell.New(&shell.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Service")
}

func (s *ShellTestSuite) TestInitialState() {
	view := s.shell.Snapshot()
	s.Equal(shell.StateNoRecordYet, view.State)
	s.Nil(view.Record)
	s.Equal("Loading - Pokédex", s.shell.Title())
}

func (s *ShellTestSuite) TestSearchLoadsRecord() {
	record := testutils.CreateTestRecord()
	s.mockService.EXPECT().FetchRecord(gomock.Any(), &pokedex.FetchRecordInput{}).
		Return(&pokedex.FetchRecordOutput{Record: record, FetchID: "fetch_1"}, nil)

	view, err := s.shell.Search(s.ctx)
	s.Require().NoError(err)
	s.Equal(shell.StateLoaded, view.State)
	s.Same(record, view.Record)
	s.Equal("fetch_1", view.FetchID)
	s.Equal(view, s.shell.Snapshot())
	s.Equal("bulbasaur - Pokédex", s.shell.Title())
}

func (s *ShellTestSuite) TestShowPassesID() {
	s.mockService.EXPECT().FetchRecord(gomock.Any(), &pokedex.FetchRecordInput{ID: 1}).
		Return(&pokedex.FetchRecordOutput{Record: testutils.CreateTestRecord()}, nil)

	_, err := s.shell.Show(s.ctx, 1)
	s.NoError(err)
}

func (s *ShellTestSuite) TestFailureThenRetry() {
	failure := errors.FetchFailed(fmt.Errorf("503"), "bad status").WithMeta("fetch_id", "fetch_1")
	gomock.InOrder(
		s.mockService.EXPECT().FetchRecord(gomock.Any(), gomock.Any()).Return(nil, failure),
		s.mockService.EXPECT().FetchRecord(gomock.Any(), gomock.Any()).
			Return(&pokedex.FetchRecordOutput{Record: testutils.CreateTestRecord(), FetchID: "fetch_2"}, nil),
	)

	view, err := s.shell.Search(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsFetchFailed(err))
	s.Equal(shell.StateFailed, view.State)
	s.Nil(view.Record)
	s.Equal("fetch_1", view.FetchID)
	s.Equal("Whoops! - Pokédex", s.shell.Title())

	view, err = s.shell.Search(s.ctx)
	s.Require().NoError(err)
	s.Equal(shell.StateLoaded, view.State)
	s.Nil(view.Err)
}

func (s *ShellTestSuite) TestSearchRejectedWhileLoading() {
	started := make(chan struct{})
	release := make(chan struct{})
	first := testutils.CreateTestRecord()
	second := testutils.CreateTestRecord()

	var during shell.View
	gomock.InOrder(
		s.mockService.EXPECT().FetchRecord(gomock.Any(), gomock.Any()).
			Return(&pokedex.FetchRecordOutput{Record: first}, nil),
		s.mockService.EXPECT().FetchRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, *pokedex.FetchRecordInput) (*pokedex.FetchRecordOutput, error) {
				during = s.shell.Snapshot()
				close(started)
				<-release
				return &pokedex.FetchRecordOutput{Record: second}, nil
			}),
	)

	_, err := s.shell.Search(s.ctx)
	s.Require().NoError(err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = s.shell.Search(s.ctx)
	}()

	<-started
	s.Equal(shell.StateLoading, during.State)
	s.Nil(during.Record)
	s.Equal(shell.StateLoading, s.shell.Snapshot().State)
	s.Nil(s.shell.Snapshot().Record)
	s.Equal("Loading - Pokédex", s.shell.Title())

	_, err = s.shell.Search(s.ctx)
	s.True(errors.IsFailedPrecondition(err))

	close(release)
	wg.Wait()
	s.Equal(shell.StateLoaded, s.shell.Snapshot().State)
	s.Same(second, s.shell.Snapshot().Record)
}

func (s *ShellTestSuite) TestPanickingFetchSettlesState() {
	gomock.InOrder(
		s.mockService.EXPECT().FetchRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, *pokedex.FetchRecordInput) (*pokedex.FetchRecordOutput, error) {
				panic("boom")
			}),
		s.mockService.EXPECT().FetchRecord(gomock.Any(), gomock.Any()).
			Return(&pokedex.FetchRecordOutput{Record: testutils.CreateTestRecord()}, nil),
	)

	s.Panics(func() { _, _ = s.shell.Search(s.ctx) })

	view := s.shell.Snapshot()
	s.Equal(shell.StateFailed, view.State)
	s.Error(view.Err)

	view, err := s.shell.Search(s.ctx)
	s.Require().NoError(err)
	s.Equal(shell.StateLoaded, view.State)
}

func (s *ShellTestSuite) TestStateString() {
	s.Equal("no_record_yet", shell.StateNoRecordYet.String())
	s.Equal("loading", shell.StateLoading.String())
	s.Equal("loaded", shell.StateLoaded.String())
	s.Equal("failed", shell.StateFailed.String())
	s.Equal("unknown", shell.State(42).String())
}
