package model

import (
	"fmt"
	"math"
	"time"
)

// TrainingExample is one labeled transaction in the training log. Examples
// come from the seed catalogue on cold start or from user corrections, and
// are only ever appended; a retrain always consumes the full log.
type TrainingExample struct {
	Timestamp   time.Time `json:"timestamp"`
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Merchant    string    `json:"merchant,omitempty"`
	Category    string    `json:"category"`
	UserID      string    `json:"userId"`
	Amount      float64   `json:"amount"`
}

// Validate ensures the example is safe to append to the training log.
func (e *TrainingExample) Validate() error {
	if e.Category == "" {
		return fmt.Errorf("training example requires a category")
	}
	if e.Description == "" {
		return fmt.Errorf("training example requires a description")
	}
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return fmt.Errorf("amount must be finite, got %v", e.Amount)
	}
	if e.Amount < 0 {
		return fmt.Errorf("amount must be non-negative, got %.2f", e.Amount)
	}
	return nil
}
