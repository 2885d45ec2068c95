package domain

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseItem(t *testing.T) {
	for _, it := range Catalog() {
		got, ok := ParseItem(it.String())
		if !ok || got != it {
			t.Fatalf("ParseItem(%q) = %v, %v", it.String(), got, ok)
		}
	}

	for _, name := range []string{"", "karak tea", "Pizza", "Karak Tea "} {
		if _, ok := ParseItem(name); ok {
			t.Fatalf("ParseItem(%q): expected unknown", name)
		}
	}
}

func TestItemsJSONCarriesWholeCatalog(t *testing.T) {
	var items Items
	items.Add(ItemKarakTea, 5)
	items.Add(ItemCoffee, 1)

	raw, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]int64
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != ItemCount {
		t.Fatalf("expected %d keys, got %d: %s", ItemCount, len(decoded), raw)
	}
	if decoded["Karak Tea"] != 5 || decoded["Coffee"] != 1 || decoded["Shawarma"] != 0 {
		t.Fatalf("unexpected counts: %s", raw)
	}
}

func TestItemsSaturateInsteadOfWrapping(t *testing.T) {
	var a, b Items
	a.Add(ItemKarakTea, math.MaxInt64)
	b.Add(ItemKarakTea, math.MaxInt64)

	a.Merge(b)
	if got := a.Get(ItemKarakTea); got != math.MaxInt64 {
		t.Fatalf("Merge: expected saturation at MaxInt64, got %d", got)
	}

	a.Add(ItemKarakTea, 1)
	if got := a.Get(ItemKarakTea); got != math.MaxInt64 {
		t.Fatalf("Add: expected saturation at MaxInt64, got %d", got)
	}

	a.Add(ItemCoffee, math.MaxInt64)
	if got := a.Total(); got != math.MaxInt64 {
		t.Fatalf("Total: expected saturation at MaxInt64, got %d", got)
	}
}

func TestResolveLines(t *testing.T) {
	counts, unknown := ResolveLines([]OrderLine{
		{Name: "Karak Tea", Quantity: 2},
		{Name: "Coffee", Quantity: 1},
		{Name: "Karak Tea", Quantity: 3},
		{Name: "Bubble Tea", Quantity: 7},
	})

	if counts.Get(ItemKarakTea) != 5 {
		t.Fatalf("Karak Tea: expected 5, got %d", counts.Get(ItemKarakTea))
	}
	if counts.Get(ItemCoffee) != 1 {
		t.Fatalf("Coffee: expected 1, got %d", counts.Get(ItemCoffee))
	}
	if counts.Total() != 6 {
		t.Fatalf("expected total 6, got %d", counts.Total())
	}
	if len(unknown) != 1 || unknown[0] != "Bubble Tea" {
		t.Fatalf("unexpected unknown names: %v", unknown)
	}
}

func TestSummaryAccumulate(t *testing.T) {
	var a, b Items
	a.Add(ItemSandwich, 2)
	b.Add(ItemSandwich, 4)
	b.Add(ItemShawarma, 1)

	var s Summary
	s.Accumulate(a)
	s.Accumulate(b)

	if s.Orders != 2 {
		t.Fatalf("expected 2 orders, got %d", s.Orders)
	}
	if s.Items.Get(ItemSandwich) != 6 || s.Items.Get(ItemShawarma) != 1 {
		t.Fatalf("unexpected summary: %+v", s.Items.Map())
	}
}

func TestParseShopAndStatus(t *testing.T) {
	if _, ok := ParseShop("restaurant3"); ok {
		t.Fatalf("restaurant3 must be rejected")
	}
	if s, ok := ParseShop("restaurant2"); !ok || s != ShopRestaurant2 {
		t.Fatalf("ParseShop(restaurant2) = %q, %v", s, ok)
	}
	if _, ok := ParseStatus("shipped"); ok {
		t.Fatalf("shipped must be rejected")
	}
	if s, ok := ParseStatus("completed"); !ok || s != StatusCompleted {
		t.Fatalf("ParseStatus(completed) = %q, %v", s, ok)
	}
}

func TestPeriodValid(t *testing.T) {
	cases := []struct {
		p    Period
		want bool
	}{
		{Period{Month: 1, Year: 2025}, true},
		{Period{Month: 12, Year: 2025}, true},
		{Period{Month: 0, Year: 2025}, false},
		{Period{Month: 13, Year: 2025}, false},
		{Period{Month: 6, Year: 0}, false},
	}
	for _, tc := range cases {
		if got := tc.p.Valid(); got != tc.want {
			t.Fatalf("%+v.Valid() = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := NewValidationError("bad %s", "input")
	if err.Error() != "bad input" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrValidation) || !errors.Is(ErrEmptyItems, ErrValidation) {
		t.Fatalf("expected validation errors to match ErrValidation")
	}
}
