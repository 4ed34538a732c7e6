package eventmodels

import (
	"fmt"
	"time"
)

// ScanParams are the user-facing controls for one scan pass.
type ScanParams struct {
	MinUnderpricing float64
	MinProbability  float64
	MaxSymbols      int
	Delay           time.Duration
}

func (p ScanParams) Validate() error {
	if p.MinUnderpricing < 0 {
		return fmt.Errorf("ScanParams: Validate: minimum underpricing must be non-negative, got %v", p.MinUnderpricing)
	}

	if p.MinProbability < 0 || p.MinProbability > 1 {
		return fmt.Errorf("ScanParams: Validate: minimum probability must be between 0 and 1, got %v", p.MinProbability)
	}

	if p.MaxSymbols < 0 {
		return fmt.Errorf("ScanParams: Validate: max symbols must be non-negative, got %v", p.MaxSymbols)
	}

	if p.Delay < 0 {
		return fmt.Errorf("ScanParams: Validate: delay must be non-negative, got %v", p.Delay)
	}

	return nil
}
