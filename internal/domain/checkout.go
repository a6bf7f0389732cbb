package domain

// Buyer identifies the person placing an order. Orders are not persisted,
// so this is the only record of the buyer's contact details and it lives
// exactly as long as the checkout request.
type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CartItem is one entry of a checkout cart. It mirrors listing metadata but
// is supplied by the client; the checkout flow does not verify that a
// matching listing still exists.
type CartItem struct {
	ItemName    string `json:"item_name"`
	Price       string `json:"price"`
	Seller      string `json:"seller"`
	SellerEmail string `json:"seller_email"`
}

// CheckoutOrder is a transient order: a buyer plus the ordered sequence of
// cart items. No order state survives the request beyond the generated
// order identifier in the response.
type CheckoutOrder struct {
	Buyer Buyer
	Items []CartItem
}
