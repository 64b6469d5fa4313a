package pricing

import (
	"fmt"
	"math"

	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/constants"
)

const MaxPiecesPerAxis = 10_000

// DetectSplit returns nil when the request fits the material. Oversize requests
// are tiled when the material allows it and rejected otherwise.
func DetectSplit(m *domain.Material, widthMm, heightMm float64) (*domain.SplitInfo, error) {
	maxW, hasW := axisLimit(m.MaxWidthMm)
	maxH, hasH := axisLimit(m.MaxHeightMm)

	overW := hasW && widthMm > maxW
	overH := hasH && heightMm > maxH
	if !overW && !overH {
		return nil, nil
	}

	if !m.AllowSplit {
		return nil, fmt.Errorf("%w: %gx%g mm on %s (max %s x %s)",
			constants.ErrExceedsMaxSize, widthMm, heightMm, m.Name, limitString(m.MaxWidthMm), limitString(m.MaxHeightMm))
	}

	wide, high := 1, 1
	if hasW {
		pieces := math.Ceil(widthMm / maxW)
		if pieces > MaxPiecesPerAxis {
			return nil, fmt.Errorf("%w: %g pieces across on %s", constants.ErrExceedsMaxSize, pieces, m.Name)
		}
		wide = int(pieces)
	}
	if hasH {
		pieces := math.Ceil(heightMm / maxH)
		if pieces > MaxPiecesPerAxis {
			return nil, fmt.Errorf("%w: %g pieces high on %s", constants.ErrExceedsMaxSize, pieces, m.Name)
		}
		high = int(pieces)
	}

	return &domain.SplitInfo{
		IsSplit:     true,
		PiecesWide:  wide,
		PiecesHigh:  high,
		TotalPieces: wide * high,
	}, nil
}

func axisLimit(v *float64) (float64, bool) {
	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}

func limitString(v *float64) string {
	if l, ok := axisLimit(v); ok {
		return fmt.Sprintf("%g", l)
	}
	return "-"
}
