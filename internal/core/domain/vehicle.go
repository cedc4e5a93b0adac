package domain

// VehicleType classifies a vehicle or equipment listing.
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleTruck      VehicleType = "truck"
	VehicleEquipment  VehicleType = "equipment"
)

// Label returns the Arabic display label, with the equipment label as the
// fallback for unrecognised codes.
func (t VehicleType) Label() string {
	switch t {
	case VehicleCar:
		return "سيارة"
	case VehicleMotorcycle:
		return "دراجة نارية"
	case VehicleTruck:
		return "شاحنة"
	default:
		return "معدات"
	}
}

// Vehicle is a vehicle or equipment listing.
type Vehicle struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	OwnerID     string      `json:"owner_id" bson:"owner_id"`
	Title       string      `json:"title" bson:"title"`
	Brand       string      `json:"brand" bson:"brand"`
	Model       string      `json:"model" bson:"model"`
	Year        int         `json:"year" bson:"year"`
	VehicleType VehicleType `json:"vehicle_type" bson:"vehicle_type"`
	Price       float64     `json:"price" bson:"price"`
	Mileage     int         `json:"mileage" bson:"mileage"`
	IsActive    bool        `json:"is_active" bson:"is_active"`
}
