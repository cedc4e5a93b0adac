package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// storeView is a dashboard or catalog store card.
type storeView struct {
	ID                    string  `json:"id"`
	CategoryID            string  `json:"category_id,omitempty"`
	CategoryName          string  `json:"category_name,omitempty"`
	Name                  string  `json:"name"`
	Description           string  `json:"description,omitempty"`
	Address               string  `json:"address"`
	Phone                 string  `json:"phone"`
	Rating                float64 `json:"rating"`
	DeliveryFee           float64 `json:"delivery_fee"`
	DeliveryFeeDisplay    string  `json:"delivery_fee_display"`
	MinimumOrder          float64 `json:"minimum_order"`
	MinimumOrderDisplay   string  `json:"minimum_order_display"`
	EstimatedDeliveryTime int     `json:"estimated_delivery_time"`
	IsActive              bool    `json:"is_active"`
}

// propertyView is a dashboard property card with the display label already
// resolved.
type propertyView struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Location     string  `json:"location"`
	PropertyType string  `json:"property_type"`
	TypeLabel    string  `json:"type_label"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Area         float64 `json:"area"`
	IsActive     bool    `json:"is_active"`
}

// vehicleView is a dashboard vehicle card with the display label already
// resolved.
type vehicleView struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	VehicleType  string  `json:"vehicle_type"`
	TypeLabel    string  `json:"type_label"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Mileage      int     `json:"mileage"`
	IsActive     bool    `json:"is_active"`
}

// orderView is a dashboard order row. Status labelling and badge styling
// are resolved server-side so the client never sees a raw enum.
type orderView struct {
	ID              string  `json:"id"`
	StoreID         string  `json:"store_id,omitempty"`
	StoreName       string  `json:"store_name,omitempty"`
	DeliveryAddress string  `json:"delivery_address"`
	TotalAmount     float64 `json:"total_amount"`
	TotalDisplay    string  `json:"total_display"`
	Status          string  `json:"status"`
	StatusLabel     string  `json:"status_label"`
	BadgeVariant    string  `json:"badge_variant"`
	CreatedAt       string  `json:"created_at"`
}

type dashboardStatsView struct {
	Stores     int `json:"stores"`
	Properties int `json:"properties"`
	Vehicles   int `json:"vehicles"`
	Orders     int `json:"orders"`
}

// dashboardResponse is the composite snapshot for the dashboard page.
type dashboardResponse struct {
	Stores     []storeView        `json:"stores"`
	Properties []propertyView     `json:"properties"`
	Vehicles   []vehicleView      `json:"vehicles"`
	Orders     []orderView        `json:"orders"`
	Stats      dashboardStatsView `json:"stats"`
}

// categoryView is a catalog category card with the icon key resolved
// against the fixed icon set.
type categoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// catalogResponse is the public storefront payload.
type catalogResponse struct {
	Categories []categoryView `json:"categories"`
	Stores     []storeView    `json:"stores"`
}
