package validate

import (
	"errors"
	"testing"

	"trichygold-order/internal/core/domain"
)

type submitRequest struct {
	Shop  string             `json:"shop" validate:"omitempty,oneof=restaurant1 restaurant2"`
	Items []domain.OrderLine `json:"items" validate:"required,min=1,dive"`
}

type lineRequest = domain.OrderLine

func TestStruct(t *testing.T) {
	v := New()

	cases := []struct {
		name    string
		in      submitRequest
		wantErr string
	}{
		{"ok", submitRequest{Items: []lineRequest{{Name: "Coffee", Quantity: 1}}}, ""},
		{"missing items", submitRequest{}, "items is required"},
		{"empty items", submitRequest{Items: []lineRequest{}}, "items must contain at least 1 element(s)"},
		{"bad shop", submitRequest{Shop: "x", Items: []lineRequest{{Name: "Coffee"}}}, "shop must be one of restaurant1 restaurant2"},
		{"negative", submitRequest{Items: []lineRequest{{Name: "Coffee", Quantity: -1}}}, "items[0].quantity must be greater than or equal to 0"},
		{"too many", submitRequest{Items: []lineRequest{{Name: "Coffee", Quantity: domain.MaxLineQuantity + 1}}}, "items[0].quantity must be less than or equal to 10000"},
		{"no name", submitRequest{Items: []lineRequest{{Quantity: 1}}}, "items[0].name is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.in)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q", tc.wantErr)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected a validation error, got %T", err)
			}
			if err.Error() != tc.wantErr {
				t.Fatalf("got %q, want %q", err.Error(), tc.wantErr)
			}
		})
	}
}
