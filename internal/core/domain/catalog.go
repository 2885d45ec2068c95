package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Item is one entry of the fixed catalog
type Item int

const (
	ItemKarakTea Item = iota
	ItemMilkTea
	ItemCoffee
	ItemRani
	ItemSoftDrinks
	ItemFreshJuice
	ItemSandwich
	ItemShawarma

	// ItemCount is the size of the catalog
	ItemCount = int(ItemShawarma) + 1
)

var itemNames = [ItemCount]string{
	ItemKarakTea:   "Karak Tea",
	ItemMilkTea:    "Milk Tea",
	ItemCoffee:     "Coffee",
	ItemRani:       "Rani",
	ItemSoftDrinks: "Soft Drinks",
	ItemFreshJuice: "Fresh Juice",
	ItemSandwich:   "Sandwich",
	ItemShawarma:   "Shawarma",
}

var itemsByName = func() map[string]Item {
	m := make(map[string]Item, ItemCount)
	for i, name := range itemNames {
		m[name] = Item(i)
	}
	return m
}()

// Catalog returns every item in catalog order
func Catalog() []Item {
	out := make([]Item, ItemCount)
	for i := range out {
		out[i] = Item(i)
	}
	return out
}

// ParseItem looks up a catalog item by its display name
func ParseItem(name string) (Item, bool) {
	it, ok := itemsByName[name]
	return it, ok
}

// String returns the display name of the item
func (i Item) String() string {
	if i < 0 || int(i) >= ItemCount {
		return fmt.Sprintf("Item(%d)", int(i))
	}
	return itemNames[i]
}

// Items holds one count per catalog item. The zero value is all-zero.
type Items [ItemCount]int64

// Get returns the count for it
func (c Items) Get(it Item) int64 {
	return c[it]
}

// Add increments the count for it. Counts saturate at math.MaxInt64.
func (c *Items) Add(it Item, n int64) {
	c[it] = saturatingAdd(c[it], n)
}

// Merge adds every count of other into c
func (c *Items) Merge(other Items) {
	for i := range c {
		c[i] = saturatingAdd(c[i], other[i])
	}
}

func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// Total returns the sum over the catalog
func (c Items) Total() int64 {
	var sum int64
	for _, n := range c {
		sum = saturatingAdd(sum, n)
	}
	return sum
}

// Map returns the counts keyed by item name, always with every catalog entry
func (c Items) Map() map[string]int64 {
	m := make(map[string]int64, ItemCount)
	for i, n := range c {
		m[itemNames[i]] = n
	}
	return m
}

// MarshalJSON encodes the counts as an object keyed by item name
func (c Items) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}
