// Package heuristic scores Shobu positions for the alpha-beta searcher.
//
// A score blends ten features with a fixed weight vector. Every feature is a
// pure function of the evaluated state, the state before the last move and
// that move; the evaluator's player is the point of view throughout.
package heuristic

import (
	"shobu/game"
)

const NumFeatures = 10

// Weights is parallel to the feature list.
type Weights [NumFeatures]float64

// DefaultWeights favour material and near-terminal material, with small
// nudges for capture safety, the centre and mobility.
var DefaultWeights = Weights{0.3, 0.6, 0.05, 0, 0.005, 0, 0, 0.05, 0, 0}

// Names are used as log fields, in feature order.
var Names = [NumFeatures]string{
	"material_by_region",
	"near_terminal_material",
	"central_cells",
	"sandwich_pressure",
	"mobility",
	"net_captures",
	"captures",
	"capture_safety",
	"weakest_region_capture",
	"regional_thresholds",
}

// feature scores state for ev's player. prior is the state before move and
// is nil when no move led to state.
type feature func(ev *Evaluator, state game.State, prior *game.State, move game.Move) float64

var features = [NumFeatures]feature{
	materialByRegion,
	nearTerminalMaterial,
	centralCells,
	sandwichPressure,
	mobility,
	netCaptures,
	captures,
	captureSafety,
	weakestRegionCapture,
	regionalThresholds,
}

type Evaluator struct {
	player  game.Player
	rules   game.Rules
	weights Weights
}

func New(player game.Player, rules game.Rules, weights Weights) *Evaluator {
	return &Evaluator{
		player:  player,
		rules:   rules,
		weights: weights,
	}
}

func (ev *Evaluator) Player() game.Player {
	return ev.player
}

func (ev *Evaluator) Weights() Weights {
	return ev.weights
}

// Evaluate returns exactly 1 for a won position, exactly 0 for a lost one and
// the weighted feature sum otherwise.
func (ev *Evaluator) Evaluate(state game.State, prior *game.State, move game.Move) float64 {
	if u := ev.rules.Utility(state, ev.player); u > 0 {
		return 1
	} else if u < 0 {
		return 0
	}

	score := 0.0
	for i, f := range features {
		if ev.weights[i] == 0 {
			continue
		}
		score += ev.weights[i] * f(ev, state, prior, move)
	}
	return score
}

// Breakdown returns every raw feature value, whatever its weight.
func (ev *Evaluator) Breakdown(state game.State, prior *game.State, move game.Move) [NumFeatures]float64 {
	var values [NumFeatures]float64
	for i, f := range features {
		values[i] = f(ev, state, prior, move)
	}
	return values
}
