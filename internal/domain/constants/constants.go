// Package constants holds values shared across layers.
package constants

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

const (
	// UsersCollection is the Firestore collection holding user documents.
	UsersCollection = "users"

	// OrdersCollection is the per-user subcollection holding orders.
	OrdersCollection = "orders"
)
