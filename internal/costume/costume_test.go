package costume

import (
	"testing"

	"github.com/talgya/cover-life/internal/catalog"
)

func fullFemaleSelection() Selection {
	return Selection{
		TopID:    "inv_top_crop_pink",
		BottomID: "inv_bottom_pleated_skirt",
		ShoesID:  "inv_shoes_platform_boots",
		AccessoryIDs: []string{
			"inv_acc_choker", "inv_acc_hair_ribbon",
		},
	}
}

func TestScoreFullMatch(t *testing.T) {
	sel := fullFemaleSelection()
	points, percent := Score(sel, catalog.StyleFemale)
	if points != 17 {
		t.Fatalf("points = %d, want 17", points)
	}
	if percent != 100 {
		t.Fatalf("percent = %d, want 100", percent)
	}
}

func TestScoreIsPure(t *testing.T) {
	sel := fullFemaleSelection()
	_, first := Score(sel, catalog.StyleFemale)
	for i := 0; i < 10; i++ {
		if _, got := Score(sel, catalog.StyleFemale); got != first {
			t.Fatalf("score not deterministic: %d then %d", first, got)
		}
	}
}

func TestScoreMonotonicWithSuitableItems(t *testing.T) {
	sel := Selection{TopID: "inv_top_crop_pink"}
	_, prev := Score(sel, catalog.StyleFemale)

	sel.BottomID = "inv_bottom_pleated_skirt"
	_, withBottom := Score(sel, catalog.StyleFemale)
	if withBottom < prev {
		t.Fatalf("adding a suitable garment lowered the score: %d -> %d", prev, withBottom)
	}

	sel.ShoesID = "inv_shoes_platform_boots"
	_, withShoes := Score(sel, catalog.StyleFemale)
	if withShoes < withBottom {
		t.Fatalf("adding a suitable garment lowered the score: %d -> %d", withBottom, withShoes)
	}

	sel.AccessoryIDs = append(sel.AccessoryIDs, "inv_acc_choker")
	_, withAcc := Score(sel, catalog.StyleFemale)
	if withAcc < withShoes {
		t.Fatalf("adding a suitable accessory lowered the score: %d -> %d", withShoes, withAcc)
	}
}

func TestScoreUnsuitableGarment(t *testing.T) {
	sel := Selection{
		TopID:    "inv_top_leather_jacket", // male style
		BottomID: "inv_bottom_pleated_skirt",
		ShoesID:  "inv_shoes_platform_boots",
	}
	points, _ := Score(sel, catalog.StyleFemale)
	if points != 10 {
		t.Fatalf("points = %d, want 10 (two suitable garments)", points)
	}
}

func TestScoreAccessoryCap(t *testing.T) {
	sel := fullFemaleSelection()
	sel.AccessoryIDs = []string{
		"inv_acc_choker", "inv_acc_hair_ribbon", "inv_acc_lace_gloves",
		"inv_acc_fingerless_gloves", "inv_acc_ear_cuffs",
		"inv_acc_choker", // sixth entry must not count
	}
	points, _ := Score(sel, catalog.StyleFemale)
	if points != 17 {
		t.Fatalf("points = %d, want cap 17", points)
	}
}

func TestScoreBothStyleProjectAcceptsAll(t *testing.T) {
	sel := Selection{
		TopID:    "inv_top_leather_jacket",
		BottomID: "inv_bottom_pleated_skirt",
		ShoesID:  "inv_shoes_white_sneakers",
	}
	points, _ := Score(sel, catalog.StyleBoth)
	if points != 15 {
		t.Fatalf("points = %d, want 15", points)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		percent int
		want    Tier
	}{
		{percent: 0, want: TierFail},
		{percent: 50, want: TierFail},
		{percent: 51, want: TierRevisable},
		{percent: 80, want: TierRevisable},
		{percent: 81, want: TierLocked},
		{percent: 100, want: TierLocked},
	}
	for _, tt := range tests {
		if got := TierFor(tt.percent); got != tt.want {
			t.Fatalf("TierFor(%d) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestPurchaseCostSkipsOwned(t *testing.T) {
	sel := Selection{TopID: "inv_top_crop_pink", BottomID: "inv_bottom_pleated_skirt"}
	owned := map[string]bool{"inv_top_crop_pink": true}
	// Only the skirt (800) is unowned.
	if got := PurchaseCost(sel, owned); got != 800 {
		t.Fatalf("cost = %d, want 800", got)
	}
}
