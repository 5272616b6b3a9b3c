package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rollrogue/rollrogue-api/internal/engine/phase"
	"github.com/rollrogue/rollrogue-api/internal/entities"
	"github.com/rollrogue/rollrogue-api/internal/errors"
	v1alpha1 "github.com/rollrogue/rollrogue-api/internal/handlers/api/v1alpha1"
	"github.com/rollrogue/rollrogue-api/internal/orchestrators/game"
	gamemock "github.com/rollrogue/rollrogue-api/internal/orchestrators/game/mock"
)

type GameHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *gamemock.MockService
	server      *httptest.Server
}

func (s *GameHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = gamemock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewGameHandler(&v1alpha1.GameHandlerConfig{
		GameService: s.mockService,
	})
	s.Require().NoError(err)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	s.server = httptest.NewServer(mux)
}

func (s *GameHandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *GameHandlerTestSuite) post(path string, body any) (*http.Response, v1alpha1.ActionResponse) {
	var reqBody bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&reqBody).Encode(body))
	}

	resp, err := http.Post(s.server.URL+path, "application/json", &reqBody)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	var decoded v1alpha1.ActionResponse
	if resp.StatusCode < 400 {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&decoded))
	}
	return resp, decoded
}

func (s *GameHandlerTestSuite) TestConfigValidation() {
	_, err := v1alpha1.NewGameHandler(&v1alpha1.GameHandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *GameHandlerTestSuite) TestStartNewRun() {
	state := phase.NewGame("run_1")
	s.mockService.EXPECT().
		StartNewRun(gomock.Any(), gomock.Any()).
		Return(&game.StartNewRunOutput{State: state}, nil)

	resp, decoded := s.post("/v1alpha1/runs", nil)

	s.Equal(http.StatusCreated, resp.StatusCode)
	s.True(decoded.Applied)
	s.Require().NotNil(decoded.State)
	s.Equal("run_1", decoded.State.RunID)
	s.Equal("level_play", decoded.State.Phase)
	s.Equal(entities.StartingMoney, decoded.State.Money)
	s.Equal(1, decoded.State.HandLevels["full_house"])
}

func (s *GameHandlerTestSuite) TestGetState() {
	state := phase.NewGame("run_1")
	s.mockService.EXPECT().
		GetState(gomock.Any(), &game.GetStateInput{RunID: "run_1"}).
		Return(&game.GetStateOutput{State: state}, nil)

	resp, err := http.Get(s.server.URL + "/v1alpha1/runs/run_1")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)

	var decoded v1alpha1.ActionResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&decoded))
	s.Equal("run_1", decoded.State.RunID)
	s.Equal(entities.RollsPerHand, decoded.State.RollsRemaining)
}

func (s *GameHandlerTestSuite) TestGetStateNotFound() {
	s.mockService.EXPECT().
		GetState(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("run not found"))

	resp, err := http.Get(s.server.URL + "/v1alpha1/runs/run_missing")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *GameHandlerTestSuite) TestSelectHand() {
	s.Run("parses the hand name", func() {
		state := phase.NewGame("run_1")
		s.mockService.EXPECT().
			SelectHand(gomock.Any(), &game.SelectHandInput{
				RunID: "run_1",
				Hand:  entities.HandLargeStraight,
			}).
			Return(&game.ActionOutput{State: state, Applied: true}, nil)

		resp, decoded := s.post("/v1alpha1/runs/run_1/hand/select",
			v1alpha1.SelectHandRequest{Hand: "large_straight"})

		s.Equal(http.StatusOK, resp.StatusCode)
		s.True(decoded.Applied)
	})

	s.Run("unknown hand is a bad request", func() {
		resp, _ := s.post("/v1alpha1/runs/run_1/hand/select",
			v1alpha1.SelectHandRequest{Hand: "yachtzee"})

		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}

func (s *GameHandlerTestSuite) TestCompleteRoll() {
	s.Run("passes five dice through", func() {
		state := phase.NewGame("run_1")
		s.mockService.EXPECT().
			CompleteRoll(gomock.Any(), &game.CompleteRollInput{
				RunID:  "run_1",
				Values: [5]int{1, 2, 3, 4, 5},
			}).
			Return(&game.ActionOutput{State: state, Applied: true}, nil)

		resp, _ := s.post("/v1alpha1/runs/run_1/roll/complete",
			v1alpha1.CompleteRollRequest{Values: []int{1, 2, 3, 4, 5}})

		s.Equal(http.StatusOK, resp.StatusCode)
	})

	s.Run("wrong dice count is a bad request", func() {
		resp, _ := s.post("/v1alpha1/runs/run_1/roll/complete",
			v1alpha1.CompleteRollRequest{Values: []int{1, 2, 3}})

		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}

func (s *GameHandlerTestSuite) TestRejectedActionIsOK() {
	state := phase.NewGame("run_1")
	s.mockService.EXPECT().
		TriggerRoll(gomock.Any(), &game.TriggerRollInput{RunID: "run_1"}).
		Return(&game.ActionOutput{State: state, Applied: false}, nil)

	resp, decoded := s.post("/v1alpha1/runs/run_1/roll/trigger", nil)

	s.Equal(http.StatusOK, resp.StatusCode, "rejection is not an HTTP error")
	s.False(decoded.Applied)
	s.NotNil(decoded.State)
}

func (s *GameHandlerTestSuite) TestOpenDiceEditor() {
	s.Run("parses the upgrade type", func() {
		state := phase.NewGame("run_1")
		s.mockService.EXPECT().
			OpenDiceEditor(gomock.Any(), &game.OpenDiceEditorInput{
				RunID:   "run_1",
				Upgrade: entities.EnhancementMult,
			}).
			Return(&game.ActionOutput{State: state, Applied: true}, nil)

		resp, _ := s.post("/v1alpha1/runs/run_1/editor/open",
			v1alpha1.OpenDiceEditorRequest{Upgrade: "mult"})

		s.Equal(http.StatusOK, resp.StatusCode)
	})

	s.Run("unknown type is a bad request", func() {
		resp, _ := s.post("/v1alpha1/runs/run_1/editor/open",
			v1alpha1.OpenDiceEditorRequest{Upgrade: "wild"})

		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}

func (s *GameHandlerTestSuite) TestMalformedBody() {
	resp, err := http.Post(s.server.URL+"/v1alpha1/runs/run_1/hand/select",
		"application/json", bytes.NewBufferString("{not json"))
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *GameHandlerTestSuite) TestShopViewShape() {
	// A state in the upgrade pick carries the shop and its options.
	state := phase.NewGame("run_1")
	state.Phase = entities.PhaseShopPickUpgrade
	state.Shop.DiceOffer = entities.EnhancementPoints
	state.Shop.Options = [3]entities.Hand{
		entities.HandOnes, entities.HandFullHouse, entities.HandSixes,
	}

	s.mockService.EXPECT().
		SelectUpgradeItem(gomock.Any(), gomock.Any()).
		Return(&game.ActionOutput{State: state, Applied: true}, nil)

	_, decoded := s.post("/v1alpha1/runs/run_1/shop/upgrade-item", nil)

	s.Require().NotNil(decoded.State.Shop)
	s.Equal("points", decoded.State.Shop.DiceOffer)
	s.Equal([]string{"ones", "full_house", "sixes"}, decoded.State.Shop.Options)
	s.Nil(decoded.State.Editor, "editor view only inside the editor")
}

func TestGameHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GameHandlerTestSuite))
}
