package catalog

// Gift is a purchasable present. A gift that suits the recipient's behavior
// model gives the matched relationship bonus, otherwise the base one.
type Gift struct {
	ID             string
	Name           string
	Price          int
	SuitableModels []string
}

// Gifts is the gift catalog. Suitable models use the NPC behavior model
// names.
var Gifts = []Gift{
	{ID: "gift_energy_bars", Name: "Energy Bar Box", Price: 500, SuitableModels: []string{"Burner", "Machine"}},
	{ID: "gift_dream_journal", Name: "Dream Journal", Price: 650, SuitableModels: []string{"Dreamer", "Sunshine"}},
	{ID: "gift_metronome", Name: "Pocket Metronome", Price: 900, SuitableModels: []string{"Perfectionist", "Machine"}},
	{ID: "gift_plush_mascot", Name: "Plush Mascot", Price: 700, SuitableModels: []string{"Sunshine", "Dreamer"}},
	{ID: "gift_mystery_box", Name: "Mystery Box", Price: 1200, SuitableModels: []string{"Wildcard", "Fox"}},
	{ID: "gift_silk_scarf", Name: "Silk Scarf", Price: 1000, SuitableModels: []string{"Fox", "Perfectionist"}},
	{ID: "gift_noise_earplugs", Name: "Practice Earplugs", Price: 450, SuitableModels: []string{"SilentPro", "Machine"}},
	{ID: "gift_tea_set", Name: "Herbal Tea Set", Price: 800, SuitableModels: []string{"SilentPro", "Sunshine"}},
}

// GiftByID looks a gift up by id; ok is false for unknown ids.
func GiftByID(id string) (Gift, bool) {
	for _, g := range Gifts {
		if g.ID == id {
			return g, true
		}
	}
	return Gift{}, false
}
