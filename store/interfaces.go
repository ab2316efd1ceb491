package store

// KV is the durable small-value storage the store persists favorites and
// the last search query to. Implementations must tolerate removal of
// absent keys.
type KV interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool)

	// Set stores value under key
	Set(key, value string) error

	// Remove deletes key
	Remove(key string) error
}

// Keys used in the KV store.
const (
	keyFavorites  = "favorites"
	keyLastSearch = "lastSearch"
)
