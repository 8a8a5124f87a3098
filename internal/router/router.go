// Package router wires the HTTP surface of the marketplace API.
package router

import (
	"net/http"

	"localconnect/internal/handler"
	"localconnect/pkg/logger"
)

// Handlers collects every handler the router mounts.
type Handlers struct {
	Product   *handler.ProductHandler
	Cart      *handler.CartHandler
	Checkout  *handler.CheckoutHandler
	Order     *handler.OrderHandler
	PreOrder  *handler.PreOrderHandler
	Favorites *handler.FavoritesHandler
	Recipe    *handler.RecipeHandler
	Auth      *handler.AuthHandler
	Earnings  *handler.EarningsHandler
}

// New builds the API mux with request logging wrapped around every route.
func New(h Handlers, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	// Catalog
	mux.HandleFunc("GET /api/v1/products", h.Product.ListProducts)
	mux.HandleFunc("POST /api/v1/products", h.Product.CreateProduct)
	mux.HandleFunc("POST /api/v1/products/reset", h.Product.ResetProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", h.Product.GetProduct)
	mux.HandleFunc("PUT /api/v1/products/{id}", h.Product.UpdateProduct)
	mux.HandleFunc("DELETE /api/v1/products/{id}", h.Product.DeleteProduct)

	// Cart
	mux.HandleFunc("GET /api/v1/cart/{customer}", h.Cart.GetCart)
	mux.HandleFunc("DELETE /api/v1/cart/{customer}", h.Cart.ClearCart)
	mux.HandleFunc("POST /api/v1/cart/{customer}/items", h.Cart.AddItem)
	mux.HandleFunc("DELETE /api/v1/cart/{customer}/items/{productID}", h.Cart.RemoveItem)

	// Checkout and orders
	mux.HandleFunc("POST /api/v1/checkout", h.Checkout.Checkout)
	mux.HandleFunc("GET /api/v1/orders", h.Order.ListOrders)
	mux.HandleFunc("GET /api/v1/orders/{id}", h.Order.GetOrder)

	// Pre-orders
	mux.HandleFunc("POST /api/v1/preorders", h.PreOrder.CreatePreOrder)
	mux.HandleFunc("DELETE /api/v1/preorders", h.PreOrder.CancelPreOrder)
	mux.HandleFunc("GET /api/v1/preorders", h.PreOrder.ListPreOrders)
	mux.HandleFunc("POST /api/v1/preorders/{id}/decision", h.PreOrder.DecidePreOrder)

	// Favorites
	mux.HandleFunc("POST /api/v1/favorites/toggle", h.Favorites.ToggleFavorite)
	mux.HandleFunc("GET /api/v1/favorites", h.Favorites.ListFavorites)

	// Recipes
	mux.HandleFunc("GET /api/v1/recipes/daily", h.Recipe.DailyRecipes)
	mux.HandleFunc("POST /api/v1/recipes/generate", h.Recipe.GenerateRecipe)

	// Auth and preferences
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/v1/auth/session", h.Auth.GetSession)
	mux.HandleFunc("PUT /api/v1/auth/preferences/theme", h.Auth.SetTheme)
	mux.HandleFunc("PUT /api/v1/auth/preferences/language", h.Auth.SetLanguage)

	// Vendor earnings
	mux.HandleFunc("GET /api/v1/earnings", h.Earnings.GetEarningsReport)

	// Liveness
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return log.HTTPMiddleware(mux)
}
