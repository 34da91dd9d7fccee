package world

// ResourceIndex is the derived view consumed by movement-validity and
// harvesting checks. It reads the store only; querying never generates a
// chunk, so an ungenerated cell simply reports no resource.
type ResourceIndex struct {
	store *ChunkStore
}

// NewResourceIndex wraps the store.
func NewResourceIndex(store *ChunkStore) *ResourceIndex {
	return &ResourceIndex{store: store}
}

// Has reports whether the cell currently holds a harvestable resource.
func (ri *ResourceIndex) Has(c Cell) bool {
	return ri.store.HasResourceAt(c)
}

// TileAt returns the resource tile id at the cell, or NoResource.
func (ri *ResourceIndex) TileAt(c Cell) int {
	return ri.store.ResourceTileAt(c)
}

// Remove clears the resource at the cell on behalf of the harvesting
// collaborator, reporting whether one was present. Generation itself only
// ever writes resource flags once; this is the single consumer-driven
// mutation the chunk model allows.
func (ri *ResourceIndex) Remove(c Cell) bool {
	return ri.store.removeResourceAt(c)
}
