// Package shop implements the in-game store: the weekly-limited tonic,
// stackable gifts, one-time clothing purchases, and the expense log.
package shop

import (
	"errors"

	"github.com/talgya/cover-life/internal/catalog"
)

const (
	TonicPrice           = 300
	TonicPurchasesPerWeek = 5
	TonicUsesPerWeek      = 1
	TonicTirednessRelief  = 10
)

var (
	ErrInsufficientFunds  = errors.New("shop: insufficient funds")
	ErrPurchaseLimit      = errors.New("shop: weekly purchase limit reached")
	ErrUseLimit           = errors.New("shop: weekly use limit reached")
	ErrUnknownItem        = errors.New("shop: unknown item")
	ErrAlreadyOwned       = errors.New("shop: item already owned")
	ErrNotInInventory     = errors.New("shop: item not in inventory")
)

// ExpenseCategory labels a money outflow in the log.
type ExpenseCategory string

const (
	ExpenseTraining ExpenseCategory = "training"
	ExpenseCostume  ExpenseCategory = "costume"
	ExpenseShop     ExpenseCategory = "shop"
	ExpenseGift     ExpenseCategory = "gift"
	ExpenseClothes  ExpenseCategory = "clothes"
)

// Expense is one recorded spend.
type Expense struct {
	Category ExpenseCategory `json:"category"`
	Amount   int             `json:"amount"`
	AbsDay   int             `json:"abs_day"`
}

// ExpenseLog is the append-only spend history.
type ExpenseLog struct {
	Entries []Expense `json:"entries"`
}

func (l *ExpenseLog) Add(category ExpenseCategory, amount, absDay int) {
	l.Entries = append(l.Entries, Expense{Category: category, Amount: amount, AbsDay: absDay})
}

func (l *ExpenseLog) Total() int {
	sum := 0
	for _, e := range l.Entries {
		sum += e.Amount
	}
	return sum
}

func (l *ExpenseLog) TotalByCategory(category ExpenseCategory) int {
	sum := 0
	for _, e := range l.Entries {
		if e.Category == category {
			sum += e.Amount
		}
	}
	return sum
}

// WeeklyCounters tracks the tonic limits. Reset on every week boundary.
type WeeklyCounters struct {
	TonicPurchases int `json:"tonic_purchases"`
	TonicUses      int `json:"tonic_uses"`
}

func (w *WeeklyCounters) Reset() {
	w.TonicPurchases = 0
	w.TonicUses = 0
}

// Inventory is everything the player owns.
type Inventory struct {
	Tonics  int             `json:"tonics"`
	Gifts   map[string]int  `json:"gifts"`
	Clothes map[string]bool `json:"clothes"`
}

// NewInventory starts with the default wardrobe and nothing else.
func NewInventory() *Inventory {
	inv := &Inventory{
		Gifts:   map[string]int{},
		Clothes: map[string]bool{},
	}
	for _, id := range catalog.DefaultWardrobe {
		inv.Clothes[id] = true
	}
	return inv
}

// OwnsClothing reports whether a clothing item is in the wardrobe.
func (inv *Inventory) OwnsClothing(itemID string) bool {
	return inv.Clothes[itemID]
}

// BuyTonic purchases one tonic. Returns the price to deduct.
func BuyTonic(money int, inv *Inventory, w *WeeklyCounters) (int, error) {
	if w.TonicPurchases >= TonicPurchasesPerWeek {
		return 0, ErrPurchaseLimit
	}
	if money < TonicPrice {
		return 0, ErrInsufficientFunds
	}
	w.TonicPurchases++
	inv.Tonics++
	return TonicPrice, nil
}

// UseTonic consumes one tonic. Returns the tiredness relief to apply.
func UseTonic(inv *Inventory, w *WeeklyCounters) (int, error) {
	if inv.Tonics <= 0 {
		return 0, ErrNotInInventory
	}
	if w.TonicUses >= TonicUsesPerWeek {
		return 0, ErrUseLimit
	}
	w.TonicUses++
	inv.Tonics--
	return TonicTirednessRelief, nil
}

// BuyGift adds a gift to the stackable inventory. Returns the price.
func BuyGift(money int, inv *Inventory, giftID string) (int, error) {
	gift, ok := catalog.GiftByID(giftID)
	if !ok {
		return 0, ErrUnknownItem
	}
	if money < gift.Price {
		return 0, ErrInsufficientFunds
	}
	inv.Gifts[giftID]++
	return gift.Price, nil
}

// GiveGift removes a gift from the inventory and reports whether it matches
// the recipient's personality. The caller applies the relationship bonus.
func GiveGift(inv *Inventory, giftID, behaviorModel string) (matched bool, err error) {
	if inv.Gifts[giftID] <= 0 {
		return false, ErrNotInInventory
	}
	gift, ok := catalog.GiftByID(giftID)
	if !ok {
		return false, ErrUnknownItem
	}
	inv.Gifts[giftID]--
	if inv.Gifts[giftID] == 0 {
		delete(inv.Gifts, giftID)
	}
	for _, m := range gift.SuitableModels {
		if m == behaviorModel {
			return true, nil
		}
	}
	return false, nil
}

// BuyClothing adds a wardrobe item. Clothes are one-time purchases.
func BuyClothing(money int, inv *Inventory, itemID string) (int, error) {
	item, ok := catalog.ClothingByID(itemID)
	if !ok {
		return 0, ErrUnknownItem
	}
	if inv.Clothes[itemID] {
		return 0, ErrAlreadyOwned
	}
	if money < item.Price {
		return 0, ErrInsufficientFunds
	}
	inv.Clothes[itemID] = true
	return item.Price, nil
}
