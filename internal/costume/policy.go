package costume

import (
	"sort"

	"github.com/talgya/cover-life/internal/catalog"
)

// AutoSelect assembles the best affordable outfit for a required style:
// owned suitable items first (they cost nothing), then the cheapest
// suitable purchases that fit the budget, slot by slot. Accessories are
// added only with budget to spare. An empty slot stays empty when nothing
// suitable is affordable.
func AutoSelect(required catalog.StyleTag, owned map[string]bool, budget int) Selection {
	var sel Selection

	used := map[string]bool{}
	pick := func(slot catalog.Slot) string {
		var candidates []catalog.ClothingItem
		for _, item := range catalog.Clothes {
			if item.Slot != slot || used[item.ID] || !suitable(item.Style, required) {
				continue
			}
			candidates = append(candidates, item)
		}
		sort.Slice(candidates, func(i, j int) bool {
			iOwned, jOwned := owned[candidates[i].ID], owned[candidates[j].ID]
			if iOwned != jOwned {
				return iOwned
			}
			return candidates[i].Price < candidates[j].Price
		})
		for _, item := range candidates {
			if owned[item.ID] {
				used[item.ID] = true
				return item.ID
			}
			if item.Price <= budget {
				budget -= item.Price
				used[item.ID] = true
				return item.ID
			}
		}
		return ""
	}

	sel.TopID = pick(catalog.SlotTop)
	sel.BottomID = pick(catalog.SlotBottom)
	sel.ShoesID = pick(catalog.SlotShoes)

	for len(sel.AccessoryIDs) < MaxAccessories {
		id := pick(catalog.SlotAccessory)
		if id == "" {
			break
		}
		sel.AccessoryIDs = append(sel.AccessoryIDs, id)
	}

	return sel
}
