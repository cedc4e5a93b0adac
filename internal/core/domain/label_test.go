package domain

import (
	"strings"
	"testing"
)

func TestPropertyTypeLabel(t *testing.T) {
	tests := []struct {
		propertyType PropertyType
		want         string
	}{
		{PropertyApartment, "شقة"},
		{PropertyVilla, "فيلا"},
		{PropertyCommercial, "تجاري"},
		{PropertyLand, "أرض"},
		{PropertyType(""), "أرض"},
		{PropertyType("warehouse"), "أرض"},
	}
	for _, tc := range tests {
		if got := tc.propertyType.Label(); got != tc.want {
			t.Errorf("Label(%q): got %q, want %q", tc.propertyType, got, tc.want)
		}
	}
}

func TestVehicleTypeLabel(t *testing.T) {
	tests := []struct {
		vehicleType VehicleType
		want        string
	}{
		{VehicleCar, "سيارة"},
		{VehicleMotorcycle, "دراجة نارية"},
		{VehicleTruck, "شاحنة"},
		{VehicleEquipment, "معدات"},
		{VehicleType(""), "معدات"},
		{VehicleType("tractor"), "معدات"},
	}
	for _, tc := range tests {
		if got := tc.vehicleType.Label(); got != tc.want {
			t.Errorf("Label(%q): got %q, want %q", tc.vehicleType, got, tc.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	got := FormatPrice(45.5)
	if !strings.Contains(got, "ر.س.") {
		t.Errorf("FormatPrice(45.5) = %q, missing currency suffix", got)
	}
	if got == "" {
		t.Error("FormatPrice returned empty string")
	}
	// Same amount always renders the same way.
	if again := FormatPrice(45.5); again != got {
		t.Errorf("FormatPrice not deterministic: %q vs %q", got, again)
	}
}
