package catalog

// Slot identifies where a clothing item is worn. Top, bottom and shoes are
// the mandatory outfit slots; accessories are optional extras.
type Slot string

const (
	SlotTop       Slot = "top"
	SlotBottom    Slot = "bottom"
	SlotShoes     Slot = "shoes"
	SlotAccessory Slot = "accessory"
)

// StyleTag marks which dance style an item suits.
type StyleTag string

const (
	StyleFemale StyleTag = "F"
	StyleMale   StyleTag = "M"
	StyleBoth   StyleTag = "Both"
)

// ClothingItem is one purchasable wardrobe entry.
type ClothingItem struct {
	ID    string
	Name  string
	Slot  Slot
	Style StyleTag
	Price int
}

// DefaultWardrobe is what a new player owns before any purchases.
var DefaultWardrobe = []string{
	"inv_shoes_white_sneakers",
	"inv_top_white_tshirt",
	"inv_bottom_black_baggy",
}

// Clothes is the full clothing catalog.
var Clothes = []ClothingItem{
	// Tops
	{ID: "inv_top_white_tshirt", Name: "White T-Shirt", Slot: SlotTop, Style: StyleBoth, Price: 400},
	{ID: "inv_top_crop_pink", Name: "Pink Crop Top", Slot: SlotTop, Style: StyleFemale, Price: 900},
	{ID: "inv_top_satin_blouse", Name: "Satin Blouse", Slot: SlotTop, Style: StyleFemale, Price: 1200},
	{ID: "inv_top_oversize_hoodie", Name: "Oversize Hoodie", Slot: SlotTop, Style: StyleMale, Price: 1100},
	{ID: "inv_top_leather_jacket", Name: "Leather Jacket", Slot: SlotTop, Style: StyleMale, Price: 1800},
	{ID: "inv_top_mesh_longsleeve", Name: "Mesh Longsleeve", Slot: SlotTop, Style: StyleBoth, Price: 1000},

	// Bottoms
	{ID: "inv_bottom_black_baggy", Name: "Black Baggy Pants", Slot: SlotBottom, Style: StyleBoth, Price: 500},
	{ID: "inv_bottom_pleated_skirt", Name: "Pleated Skirt", Slot: SlotBottom, Style: StyleFemale, Price: 800},
	{ID: "inv_bottom_denim_shorts", Name: "Denim Shorts", Slot: SlotBottom, Style: StyleFemale, Price: 700},
	{ID: "inv_bottom_cargo_pants", Name: "Cargo Pants", Slot: SlotBottom, Style: StyleMale, Price: 900},
	{ID: "inv_bottom_track_pants", Name: "Track Pants", Slot: SlotBottom, Style: StyleMale, Price: 650},

	// Shoes
	{ID: "inv_shoes_white_sneakers", Name: "White Sneakers", Slot: SlotShoes, Style: StyleBoth, Price: 900},
	{ID: "inv_shoes_platform_boots", Name: "Platform Boots", Slot: SlotShoes, Style: StyleFemale, Price: 1500},
	{ID: "inv_shoes_combat_boots", Name: "Combat Boots", Slot: SlotShoes, Style: StyleMale, Price: 1400},
	{ID: "inv_shoes_heeled_ankle", Name: "Heeled Ankle Boots", Slot: SlotShoes, Style: StyleFemale, Price: 1600},
	{ID: "inv_shoes_high_tops", Name: "High Tops", Slot: SlotShoes, Style: StyleMale, Price: 1000},

	// Accessories
	{ID: "inv_acc_choker", Name: "Velvet Choker", Slot: SlotAccessory, Style: StyleFemale, Price: 300},
	{ID: "inv_acc_hair_ribbon", Name: "Hair Ribbon", Slot: SlotAccessory, Style: StyleFemale, Price: 200},
	{ID: "inv_acc_chain_necklace", Name: "Chain Necklace", Slot: SlotAccessory, Style: StyleMale, Price: 450},
	{ID: "inv_acc_snapback", Name: "Snapback Cap", Slot: SlotAccessory, Style: StyleMale, Price: 400},
	{ID: "inv_acc_fingerless_gloves", Name: "Fingerless Gloves", Slot: SlotAccessory, Style: StyleBoth, Price: 350},
	{ID: "inv_acc_ear_cuffs", Name: "Ear Cuffs", Slot: SlotAccessory, Style: StyleBoth, Price: 300},
	{ID: "inv_acc_belt_chain", Name: "Belt Chain", Slot: SlotAccessory, Style: StyleMale, Price: 380},
	{ID: "inv_acc_lace_gloves", Name: "Lace Gloves", Slot: SlotAccessory, Style: StyleFemale, Price: 320},
}

// ClothingByID looks an item up by id; ok is false for unknown ids.
func ClothingByID(id string) (ClothingItem, bool) {
	for _, c := range Clothes {
		if c.ID == id {
			return c, true
		}
	}
	return ClothingItem{}, false
}
