package costume

import (
	"testing"

	"github.com/talgya/cover-life/internal/catalog"
)

func TestAutoSelectOwnedFirst(t *testing.T) {
	owned := map[string]bool{}
	for _, id := range catalog.DefaultWardrobe {
		owned[id] = true
	}

	sel := AutoSelect(catalog.StyleFemale, owned, 0)

	if sel.TopID == "" || sel.BottomID == "" || sel.ShoesID == "" {
		t.Fatalf("mandatory slot left empty with a full default wardrobe: %+v", sel)
	}
	if cost := PurchaseCost(sel, owned); cost != 0 {
		t.Fatalf("zero budget selection costs %d", cost)
	}
	if _, percent := Score(sel, catalog.StyleFemale); percent < FailBelow {
		t.Fatalf("default wardrobe scores %d%%, want passing", percent)
	}
}

func TestAutoSelectBuysWithinBudget(t *testing.T) {
	sel := AutoSelect(catalog.StyleFemale, map[string]bool{}, 100000)

	if sel.TopID == "" || sel.BottomID == "" || sel.ShoesID == "" {
		t.Fatalf("mandatory slot empty with an unlimited budget: %+v", sel)
	}
	if len(sel.AccessoryIDs) == 0 {
		t.Fatal("no accessories picked with budget to spare")
	}
	seen := map[string]bool{}
	for _, id := range sel.Items() {
		if seen[id] {
			t.Fatalf("item %s picked twice", id)
		}
		seen[id] = true
	}
	if _, percent := Score(sel, catalog.StyleFemale); percent < LockedFrom {
		t.Fatalf("unlimited budget scores %d%%, want locked tier", percent)
	}
}

func TestAutoSelectEmptyWhenUnaffordable(t *testing.T) {
	sel := AutoSelect(catalog.StyleFemale, map[string]bool{}, 0)

	for _, id := range sel.Items() {
		if id != "" {
			t.Fatalf("picked %s with no money and no wardrobe", id)
		}
	}
}
