// Package registry provides the typed variable store behind textvars.
//
// A Registry holds variable definitions and their current values. Every
// registry is seeded with the system variables (user, cart, product and app
// categories); hosts add custom variables with Register or by setting a value
// for an unknown name.
//
// # Basic Usage
//
//	reg := registry.New()
//	reg.SetValue("userName", "Ada")
//	reg.SetValue("cartValue", "149.90") // coerced to 149.9
//
//	reg.Register(registry.Definition{
//	    Name:         "couponCode",
//	    Type:         registry.TypeString,
//	    DefaultValue: "WELCOME10",
//	})
//
// # Coercion
//
// Values are coerced to the declared type on write:
//
//   - number, currency, percentage: numeric kinds or numeric strings, stored as float64
//   - boolean: bool or the strings "true"/"false"
//   - date: time.Time and unix seconds become RFC3339 strings, strings are kept
//   - string: anything, stringified
//
// A value that cannot be coerced leaves the previous value in place and emits
// a diag.KindCoercionFailed warning.
//
// # Thread Safety
//
// All Registry methods are safe for concurrent use. Values returns a copy and
// Range iterates over a snapshot.
package registry
