package domain

// PropertyType classifies a real-estate listing.
type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyVilla      PropertyType = "villa"
	PropertyCommercial PropertyType = "commercial"
	PropertyLand       PropertyType = "land"
)

// Label returns the Arabic display label. Unrecognised codes fall back to
// the land label rather than leaking a raw enum value into the view.
func (t PropertyType) Label() string {
	switch t {
	case PropertyApartment:
		return "شقة"
	case PropertyVilla:
		return "فيلا"
	case PropertyCommercial:
		return "تجاري"
	default:
		return "أرض"
	}
}

// Property is a real-estate listing.
type Property struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	OwnerID      string       `json:"owner_id" bson:"owner_id"`
	Title        string       `json:"title" bson:"title"`
	Location     string       `json:"location" bson:"location"`
	PropertyType PropertyType `json:"property_type" bson:"property_type"`
	Price        float64      `json:"price" bson:"price"`
	Area         float64      `json:"area" bson:"area"`
	IsActive     bool         `json:"is_active" bson:"is_active"`
}
