package services

import (
	"encoding/json"
	"fmt"
	"os"
)

// LatentFactorScorer runs inference over a serialized matrix-factorization
// model: predicted rating = globalMean + userBias + itemBias + p_u . q_i.
// Missing users or items fall back to the biases that are present.
type LatentFactorScorer struct {
	GlobalMean  float64              `json:"globalMean"`
	UserBiases  map[string]float64   `json:"userBiases"`
	ItemBiases  map[string]float64   `json:"itemBiases"`
	UserFactors map[string][]float64 `json:"userFactors"`
	ItemFactors map[string][]float64 `json:"itemFactors"`
}

func LoadLatentFactorScorer(path string) (*LatentFactorScorer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var scorer LatentFactorScorer
	if err := json.Unmarshal(data, &scorer); err != nil {
		return nil, fmt.Errorf("failed to decode model file: %w", err)
	}

	return &scorer, nil
}

func (s *LatentFactorScorer) Score(userID string, movieID string) float64 {
	score := s.GlobalMean + s.UserBiases[userID] + s.ItemBiases[movieID]

	userFactors := s.UserFactors[userID]
	itemFactors := s.ItemFactors[movieID]
	if len(userFactors) != len(itemFactors) {
		return score
	}

	for i := range userFactors {
		score += userFactors[i] * itemFactors[i]
	}

	return score
}
