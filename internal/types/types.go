// internal/types/types.go
package types

// EntityID identifies a layer, reward cluster or the player inside the entity store.
// Zero is never issued and means "no entity".
type EntityID uint64
