package domain

// Category is read-only reference data grouping delivery stores.
type Category struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Icon        string `json:"icon" bson:"icon"`
	Description string `json:"description" bson:"description"`
	IsActive    bool   `json:"is_active" bson:"is_active"`
}

// Store is a delivery storefront. CategoryName is resolved by the
// repository join and never written back.
type Store struct {
	ID                    string  `json:"id" bson:"_id,omitempty"`
	OwnerID               string  `json:"owner_id" bson:"owner_id"`
	CategoryID            string  `json:"category_id" bson:"category_id"`
	CategoryName          string  `json:"category_name,omitempty" bson:"category_name,omitempty"`
	Name                  string  `json:"name" bson:"name"`
	Description           string  `json:"description" bson:"description"`
	Address               string  `json:"address" bson:"address"`
	Phone                 string  `json:"phone" bson:"phone"`
	Rating                float64 `json:"rating" bson:"rating"`
	DeliveryFee           float64 `json:"delivery_fee" bson:"delivery_fee"`
	MinimumOrder          float64 `json:"minimum_order" bson:"minimum_order"`
	EstimatedDeliveryTime int     `json:"estimated_delivery_time" bson:"estimated_delivery_time"`
	IsActive              bool    `json:"is_active" bson:"is_active"`
}
