// Package market resolves resale-price evidence for vehicle parts from the
// eBay marketplace.
package market

import (
	"context"

	"parts-analyzer/models"
)

// Resolver answers "what does this part sell for" in one vehicle context.
// Implementations never fail: upstream problems degrade to a zero signal.
type Resolver interface {
	Resolve(ctx context.Context, vehicle models.Vehicle, partName string) models.PriceSignal
}
