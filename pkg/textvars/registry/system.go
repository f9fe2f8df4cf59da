package registry

import "time"

// systemIDPrefix prefixes the IDs of system variables so they stay stable
// across sessions.
const systemIDPrefix = "system:"

// SystemDefinitions returns the fixed seed set present in every registry.
// now seeds currentDate.
func SystemDefinitions(now time.Time) []Definition {
	defs := []Definition{
		{Name: "userName", Type: TypeString, DefaultValue: "Guest", Category: CategoryUser, Description: "Display name of the current user"},
		{Name: "userFirstName", Type: TypeString, DefaultValue: "Guest", Category: CategoryUser, Description: "First name of the current user"},
		{Name: "userEmail", Type: TypeString, DefaultValue: "", Category: CategoryUser, Description: "Email address of the current user"},
		{Name: "isLoggedIn", Type: TypeBoolean, DefaultValue: false, Category: CategoryUser, Description: "Whether the user is signed in"},
		{Name: "loyaltyPoints", Type: TypeNumber, DefaultValue: 0, Category: CategoryUser, Description: "Loyalty points balance"},
		{Name: "cartValue", Type: TypeCurrency, DefaultValue: 0, Category: CategoryCart, Format: "$", Description: "Total value of the cart"},
		{Name: "cartItemCount", Type: TypeNumber, DefaultValue: 0, Category: CategoryCart, Description: "Number of items in the cart"},
		{Name: "freeShippingThreshold", Type: TypeCurrency, DefaultValue: 500, Category: CategoryCart, Format: "$", Description: "Cart value that unlocks free shipping"},
		{Name: "discountPercent", Type: TypePercentage, DefaultValue: 0, Category: CategoryCart, Description: "Discount applied to the cart"},
		{Name: "productName", Type: TypeString, DefaultValue: "", Category: CategoryProduct, Description: "Name of the featured product"},
		{Name: "productPrice", Type: TypeCurrency, DefaultValue: 0, Category: CategoryProduct, Format: "$", Description: "Price of the featured product"},
		{Name: "offerExpiry", Type: TypeDate, DefaultValue: "", Category: CategoryProduct, Format: "DD MMM YYYY", Description: "Date the current offer ends"},
		{Name: "appName", Type: TypeString, DefaultValue: "Store", Category: CategoryApp, Description: "Name of the app"},
		{Name: "currentDate", Type: TypeDate, DefaultValue: now.UTC().Format(time.RFC3339), Category: CategoryApp, Format: "DD MMM YYYY", Description: "Date the session started"},
	}
	for i := range defs {
		defs[i].ID = systemIDPrefix + defs[i].Name
	}
	return defs
}
