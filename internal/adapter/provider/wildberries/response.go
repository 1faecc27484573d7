package wildberries

// apiResponse represents the card detail API response envelope.
type apiResponse struct {
	Data *apiData `json:"data"`
}

type apiData struct {
	Products []apiProduct `json:"products"`
}

// apiProduct holds the fields of one product card we care about.
// PriceU is the sale price in minor currency units.
type apiProduct struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PriceU       int64     `json:"priceU"`
	ReviewRating float64   `json:"reviewRating"`
	Sizes        []apiSize `json:"sizes"`
}

type apiSize struct {
	Stocks []apiStock `json:"stocks"`
}

type apiStock struct {
	Qty int64 `json:"qty"`
}
