package api

// Common request/response structures. Success bodies carry ok=true;
// failures use shared.ErrorResponse.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"     validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserPayload is the public projection of a user.
type UserPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// MessageResponse is the generic success envelope for operations whose only
// payload is a confirmation message.
type MessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
	Token   string      `json:"token"`
}

// MeResponse defines the response for the current-session endpoint.
type MeResponse struct {
	OK   bool        `json:"ok"`
	User UserPayload `json:"user"`
}

// UploadResponse defines the successful response for the listing upload
// endpoint.
type UploadResponse struct {
	OK  bool   `json:"ok"`
	URL string `json:"url"`
}

// GalleryItem is one listing projection in the gallery response.
type GalleryItem struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	ItemName string `json:"item_name"`
	Price    string `json:"price"`
	Seller   string `json:"seller"`
}

// GalleryResponse defines the successful response for the gallery endpoint.
type GalleryResponse struct {
	OK    bool          `json:"ok"`
	Items []GalleryItem `json:"items"`
}

// CartItemPayload is one cart entry in a checkout request.
type CartItemPayload struct {
	ItemName    string `json:"item_name"`
	Price       string `json:"price"`
	Seller      string `json:"seller"`
	SellerEmail string `json:"seller_email"`
}

// CheckoutRequest defines the payload for the checkout endpoint.
type CheckoutRequest struct {
	BuyerName  string            `json:"buyer_name"  validate:"required"`
	BuyerEmail string            `json:"buyer_email" validate:"required,email"`
	BuyerPhone string            `json:"buyer_phone"`
	CartItems  []CartItemPayload `json:"cart_items"  validate:"required,min=1"`
}

// CheckoutResponse defines the successful response for the checkout
// endpoint. The order ID is generated for the response only and is not
// retrievable later.
type CheckoutResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// HealthResponse defines the liveness probe response.
type HealthResponse struct {
	Status string `json:"status"`
}
