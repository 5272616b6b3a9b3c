// Package v1alpha1 exposes the game action API over JSON/HTTP. Each action
// from the engine's surface is one POST endpoint; the handler only decodes,
// delegates to the game service, and encodes the resulting snapshot.
package v1alpha1

import (
	"encoding/json"
	"net/http"

	"github.com/rollrogue/rollrogue-api/internal/entities"
	"github.com/rollrogue/rollrogue-api/internal/errors"
	"github.com/rollrogue/rollrogue-api/internal/orchestrators/game"
)

// GameHandlerConfig holds dependencies for the game handler
type GameHandlerConfig struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *GameHandlerConfig) Validate() error {
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// GameHandler serves the run action API
type GameHandler struct {
	gameService game.Service
}

// NewGameHandler creates a new game handler with the given configuration
func NewGameHandler(cfg *GameHandlerConfig) (*GameHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &GameHandler{gameService: cfg.GameService}, nil
}

// RegisterRoutes attaches every endpoint to the mux
func (h *GameHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1alpha1/runs", h.StartNewRun)
	mux.HandleFunc("GET /v1alpha1/runs/{id}", h.GetState)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/level/start", h.StartLevel)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/roll/trigger", h.TriggerRoll)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/roll/complete", h.CompleteRoll)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/dice/lock", h.ToggleDiceLock)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/hand/select", h.SelectHand)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/hand/deselect", h.DeselectHand)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/hand/accept", h.AcceptHand)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/reveal/update", h.UpdateReveal)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/hand/finalize", h.FinalizeHand)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/win-animation/clear", h.ClearWinAnimation)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/cash-out", h.CashOutNow)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/shop/open", h.OpenShop)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/shop/upgrade-item", h.SelectUpgradeItem)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/shop/pick-upgrade", h.PickUpgradeHand)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/shop/cancel-pick", h.CancelUpgradePick)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/editor/open", h.OpenDiceEditor)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/editor/die", h.SelectEditorDie)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/editor/face", h.SelectEditorFace)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/editor/apply", h.ApplyDiceUpgrade)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/editor/cancel", h.CancelDiceEditor)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/shop/next-level", h.CloseShopNextLevel)
	mux.HandleFunc("POST /v1alpha1/runs/{id}/overview/toggle", h.ToggleOverview)
}

// StartNewRun creates a fresh run
func (h *GameHandler) StartNewRun(w http.ResponseWriter, r *http.Request) {
	output, err := h.gameService.StartNewRun(r.Context(), &game.StartNewRunInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, &ActionResponse{Applied: true, State: toStateView(output.State)})
}

// GetState returns the current snapshot
func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	output, err := h.gameService.GetState(r.Context(), &game.GetStateInput{RunID: r.PathValue("id")})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &ActionResponse{Applied: true, State: toStateView(output.State)})
}

// StartLevel resets level state and enters play
func (h *GameHandler) StartLevel(w http.ResponseWriter, r *http.Request) {
	var req StartLevelRequest
	if !decode(w, r, &req) {
		return
	}
	h.action(w, r)(h.gameService.StartLevel(r.Context(), &game.StartLevelInput{
		RunID:      r.PathValue("id"),
		LevelIndex: req.LevelIndex,
	}))
}

// TriggerRoll requests a dice throw
func (h *GameHandler) TriggerRoll(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.TriggerRoll(r.Context(), &game.TriggerRollInput{
		RunID: r.PathValue("id"),
	}))
}

// CompleteRoll reports the settled faces
func (h *GameHandler) CompleteRoll(w http.ResponseWriter, r *http.Request) {
	var req CompleteRollRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Values) != entities.NumDice {
		errors.WriteHTTP(w, errors.InvalidArgumentf("expected %d dice values, got %d",
			entities.NumDice, len(req.Values)))
		return
	}
	var values [entities.NumDice]int
	copy(values[:], req.Values)
	h.action(w, r)(h.gameService.CompleteRoll(r.Context(), &game.CompleteRollInput{
		RunID:  r.PathValue("id"),
		Values: values,
	}))
}

// ToggleDiceLock flips a die lock
func (h *GameHandler) ToggleDiceLock(w http.ResponseWriter, r *http.Request) {
	var req ToggleLockRequest
	if !decode(w, r, &req) {
		return
	}
	h.action(w, r)(h.gameService.ToggleDiceLock(r.Context(), &game.ToggleDiceLockInput{
		RunID: r.PathValue("id"),
		Die:   req.Die,
	}))
}

// SelectHand picks the hand to score
func (h *GameHandler) SelectHand(w http.ResponseWriter, r *http.Request) {
	var req SelectHandRequest
	if !decode(w, r, &req) {
		return
	}
	hand, ok := entities.ParseHand(req.Hand)
	if !ok {
		errors.WriteHTTP(w, errors.InvalidArgumentf("unknown hand: %q", req.Hand))
		return
	}
	h.action(w, r)(h.gameService.SelectHand(r.Context(), &game.SelectHandInput{
		RunID: r.PathValue("id"),
		Hand:  hand,
	}))
}

// DeselectHand clears the hand selection
func (h *GameHandler) DeselectHand(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.DeselectHand(r.Context(), &game.DeselectHandInput{
		RunID: r.PathValue("id"),
	}))
}

// AcceptHand starts the scoring reveal
func (h *GameHandler) AcceptHand(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.AcceptHand(r.Context(), &game.AcceptHandInput{
		RunID: r.PathValue("id"),
	}))
}

// UpdateReveal advances the reveal sequence
func (h *GameHandler) UpdateReveal(w http.ResponseWriter, r *http.Request) {
	var req UpdateRevealRequest
	if !decode(w, r, &req) {
		return
	}
	h.action(w, r)(h.gameService.UpdateReveal(r.Context(), &game.UpdateRevealInput{
		RunID: r.PathValue("id"),
		Step:  req.Step,
	}))
}

// FinalizeHand commits the revealed score
func (h *GameHandler) FinalizeHand(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.FinalizeHand(r.Context(), &game.FinalizeHandInput{
		RunID: r.PathValue("id"),
	}))
}

// ClearWinAnimation releases the win animation lock
func (h *GameHandler) ClearWinAnimation(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.ClearWinAnimation(r.Context(), &game.ClearWinAnimationInput{
		RunID: r.PathValue("id"),
	}))
}

// CashOutNow banks a won level
func (h *GameHandler) CashOutNow(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.CashOutNow(r.Context(), &game.CashOutNowInput{
		RunID: r.PathValue("id"),
	}))
}

// OpenShop applies rewards and enters the shop
func (h *GameHandler) OpenShop(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.OpenShop(r.Context(), &game.OpenShopInput{
		RunID: r.PathValue("id"),
	}))
}

// SelectUpgradeItem opens the upgrade pick
func (h *GameHandler) SelectUpgradeItem(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.SelectUpgradeItem(r.Context(), &game.SelectUpgradeItemInput{
		RunID: r.PathValue("id"),
	}))
}

// PickUpgradeHand buys a hand upgrade
func (h *GameHandler) PickUpgradeHand(w http.ResponseWriter, r *http.Request) {
	var req PickUpgradeRequest
	if !decode(w, r, &req) {
		return
	}
	hand, ok := entities.ParseHand(req.Hand)
	if !ok {
		errors.WriteHTTP(w, errors.InvalidArgumentf("unknown hand: %q", req.Hand))
		return
	}
	h.action(w, r)(h.gameService.PickUpgradeHand(r.Context(), &game.PickUpgradeHandInput{
		RunID: r.PathValue("id"),
		Hand:  hand,
	}))
}

// CancelUpgradePick leaves the upgrade pick without buying
func (h *GameHandler) CancelUpgradePick(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.CancelUpgradePick(r.Context(), &game.CancelUpgradePickInput{
		RunID: r.PathValue("id"),
	}))
}

// OpenDiceEditor enters the dice editor
func (h *GameHandler) OpenDiceEditor(w http.ResponseWriter, r *http.Request) {
	var req OpenDiceEditorRequest
	if !decode(w, r, &req) {
		return
	}
	upgrade, ok := entities.ParseEnhancementType(req.Upgrade)
	if !ok {
		errors.WriteHTTP(w, errors.InvalidArgumentf("unknown upgrade type: %q", req.Upgrade))
		return
	}
	h.action(w, r)(h.gameService.OpenDiceEditor(r.Context(), &game.OpenDiceEditorInput{
		RunID:   r.PathValue("id"),
		Upgrade: upgrade,
	}))
}

// SelectEditorDie picks the die to enhance
func (h *GameHandler) SelectEditorDie(w http.ResponseWriter, r *http.Request) {
	var req SelectEditorDieRequest
	if !decode(w, r, &req) {
		return
	}
	h.action(w, r)(h.gameService.SelectEditorDie(r.Context(), &game.SelectEditorDieInput{
		RunID: r.PathValue("id"),
		Die:   req.Die,
	}))
}

// SelectEditorFace picks the face to enhance
func (h *GameHandler) SelectEditorFace(w http.ResponseWriter, r *http.Request) {
	var req SelectEditorFaceRequest
	if !decode(w, r, &req) {
		return
	}
	h.action(w, r)(h.gameService.SelectEditorFace(r.Context(), &game.SelectEditorFaceInput{
		RunID: r.PathValue("id"),
		Face:  req.Face,
	}))
}

// ApplyDiceUpgrade commits the pending enhancement
func (h *GameHandler) ApplyDiceUpgrade(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.ApplyDiceUpgrade(r.Context(), &game.ApplyDiceUpgradeInput{
		RunID: r.PathValue("id"),
	}))
}

// CancelDiceEditor leaves the editor without buying
func (h *GameHandler) CancelDiceEditor(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.CancelDiceEditor(r.Context(), &game.CancelDiceEditorInput{
		RunID: r.PathValue("id"),
	}))
}

// CloseShopNextLevel advances to the next level or the win screen
func (h *GameHandler) CloseShopNextLevel(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.CloseShopNextLevel(r.Context(), &game.CloseShopNextLevelInput{
		RunID: r.PathValue("id"),
	}))
}

// ToggleOverview flips the UI overview flag
func (h *GameHandler) ToggleOverview(w http.ResponseWriter, r *http.Request) {
	h.action(w, r)(h.gameService.ToggleOverview(r.Context(), &game.ToggleOverviewInput{
		RunID: r.PathValue("id"),
	}))
}

// action returns the shared response writer for ActionOutput results.
func (h *GameHandler) action(w http.ResponseWriter, _ *http.Request) func(*game.ActionOutput, error) {
	return func(output *game.ActionOutput, err error) {
		if err != nil {
			errors.WriteHTTP(w, err)
			return
		}
		writeJSON(w, http.StatusOK, &ActionResponse{
			Applied: output.Applied,
			State:   toStateView(output.State),
		})
	}
}

// decode reads a JSON request body, reporting failures as InvalidArgument.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		errors.WriteHTTP(w, errors.InvalidArgument("malformed request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
