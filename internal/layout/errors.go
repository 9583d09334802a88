package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalancedGroup indicates open/close group tokens that do not nest
	// like brackets. This is a producer bug, not a formatting condition.
	ErrUnbalancedGroup = errors.New("layout: unbalanced group")
	// ErrUnbalancedRegion indicates comma-region tokens that do not nest
	// like brackets.
	ErrUnbalancedRegion = errors.New("layout: unbalanced comma region")
)

func unbalancedAt(base error, index int) error {
	return fmt.Errorf("%w at token %d", base, index)
}
