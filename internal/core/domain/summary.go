package domain

// MaxLineQuantity bounds the quantity of a single submitted line
const MaxLineQuantity = 10000

// OrderLine is one submitted {name, quantity} pair
type OrderLine struct {
	Name     string `json:"name" validate:"required"`
	Quantity int64  `json:"quantity" validate:"gte=0,lte=10000"`
}

// Summary is the derived item-count view over a query scope. It is never
// stored and always carries the whole catalog.
type Summary struct {
	Items  Items
	Orders int
}

// Accumulate adds one aggregate's counts to the summary
func (s *Summary) Accumulate(items Items) {
	s.Items.Merge(items)
	s.Orders++
}

// ResolveLines maps submitted lines onto catalog counts. Lines naming an
// item outside the catalog are returned in unknown and contribute nothing.
func ResolveLines(lines []OrderLine) (counts Items, unknown []string) {
	for _, line := range lines {
		it, ok := ParseItem(line.Name)
		if !ok {
			unknown = append(unknown, line.Name)
			continue
		}
		counts.Add(it, line.Quantity)
	}
	return counts, unknown
}
