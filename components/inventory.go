package components

import "github.com/yohamta/donburi"

// ItemStore is queried and consumed by abilities that need an item.
type ItemStore interface {
	Contains(item string) bool
	// Remove consumes one item and reports whether it was there.
	Remove(item string) bool
}

// ItemBag counts special items by name.
type ItemBag struct {
	items map[string]int
}

func NewItemBag() *ItemBag {
	return &ItemBag{items: map[string]int{}}
}

func (b *ItemBag) Add(item string) {
	b.items[item]++
}

func (b *ItemBag) Count(item string) int {
	return b.items[item]
}

func (b *ItemBag) Contains(item string) bool {
	return b.items[item] > 0
}

func (b *ItemBag) Remove(item string) bool {
	if b.items[item] <= 0 {
		return false
	}
	b.items[item]--
	if b.items[item] == 0 {
		delete(b.items, item)
	}
	return true
}

// InventoryData tracks what a player has picked up.
type InventoryData struct {
	Special         *ItemBag
	NormalCollected int
	NormalTotal     int
}

var Inventory = donburi.NewComponentType[InventoryData]()

// AllNormalCollected reports whether the level's normal collectibles are gathered.
func (i *InventoryData) AllNormalCollected() bool {
	return i.NormalTotal > 0 && i.NormalCollected >= i.NormalTotal
}
