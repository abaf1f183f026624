// Package costume scores outfit selections against a project's required
// style and applies the acceptance policy by match tier.
package costume

import (
	"math"

	"github.com/talgya/cover-life/internal/catalog"
)

// Point budget: three mandatory garment slots worth 5 points each, plus up
// to five accessories worth 1 point each, capped at 17.
const (
	GarmentPoints   = 5
	AccessoryPoints = 1
	MaxAccessories  = 5
	PointCap        = 17
)

// Match tier thresholds on the 0-100 match percent.
const (
	FailBelow  = 51 // below this the costume check fails
	LockedFrom = 81 // from this the costume locks permanently
)

// Tier is the acceptance outcome of a costume submission.
type Tier int

const (
	TierFail     Tier = iota // <51%: deadline +7 days, retry after cool-off
	TierRevisable            // 51-80%: accepted, may be revised
	TierLocked               // >=81%: accepted and locked
)

// TierFor buckets a match percent.
func TierFor(percent int) Tier {
	switch {
	case percent < FailBelow:
		return TierFail
	case percent < LockedFrom:
		return TierRevisable
	default:
		return TierLocked
	}
}

// Selection is an outfit submission: chosen item ids per slot plus
// accessories.
type Selection struct {
	TopID       string   `json:"top_id"`
	BottomID    string   `json:"bottom_id"`
	ShoesID     string   `json:"shoes_id"`
	AccessoryIDs []string `json:"accessory_ids"`
}

// Items returns every item id in the selection.
func (s Selection) Items() []string {
	out := make([]string, 0, 3+len(s.AccessoryIDs))
	for _, id := range []string{s.TopID, s.BottomID, s.ShoesID} {
		if id != "" {
			out = append(out, id)
		}
	}
	out = append(out, s.AccessoryIDs...)
	return out
}

// suitable reports whether an item's style tag fits the required style.
func suitable(item catalog.StyleTag, required catalog.StyleTag) bool {
	return item == catalog.StyleBoth || required == catalog.StyleBoth || item == required
}

// Score computes the suitability points and match percent for a selection
// against the required style. Pure: same inputs always give the same result,
// and adding suitable items never lowers the score (up to the point cap).
func Score(sel Selection, required catalog.StyleTag) (points, percent int) {
	score := 0
	for _, id := range []string{sel.TopID, sel.BottomID, sel.ShoesID} {
		item, ok := catalog.ClothingByID(id)
		if !ok || item.Slot == catalog.SlotAccessory {
			continue
		}
		if suitable(item.Style, required) {
			score += GarmentPoints
		}
	}

	counted := 0
	for _, id := range sel.AccessoryIDs {
		if counted >= MaxAccessories {
			break
		}
		item, ok := catalog.ClothingByID(id)
		if !ok || item.Slot != catalog.SlotAccessory {
			continue
		}
		counted++
		if suitable(item.Style, required) {
			score += AccessoryPoints
		}
	}

	if score > PointCap {
		score = PointCap
	}
	return score, int(math.Round(float64(score) / PointCap * 100))
}

// PurchaseCost sums the prices of selected items the player does not own
// yet. Owned is the player's wardrobe as a set of item ids.
func PurchaseCost(sel Selection, owned map[string]bool) int {
	total := 0
	for _, id := range sel.Items() {
		if owned[id] {
			continue
		}
		if item, ok := catalog.ClothingByID(id); ok {
			total += item.Price
		}
	}
	return total
}

// RetryCoolOff and DeadlineExtension are the penalty terms of a failed
// costume check: the project deadline moves out 7 days and the player may
// retry after 7 days.
const (
	RetryCoolOff      = 7
	DeadlineExtension = 7
)
