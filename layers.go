package vroom

import "github.com/hajimehoshi/ebiten/v2"

// layerIndex groups entity ids by layer. It is a snapshot: entities
// registered after the last rebuild are not visited until the next one, and
// deleted entities are skipped by a presence check in the passes.
type layerIndex struct {
	layers [][]ID // layers[0] is layer 1
}

// rebuild recomputes the index from the registry. Within a layer ids keep
// registration order. Out-of-range layers are reset to 1. Slices are
// reused between rebuilds.
func (li *layerIndex) rebuild(r *Registry) {
	n := r.MaxLayers()
	if len(li.layers) != n {
		li.layers = make([][]ID, n)
	}
	for i := range li.layers {
		li.layers[i] = li.layers[i][:0]
	}
	r.Each(func(e *Entity) {
		// Layer is client-writable; changes take effect here.
		e.Layer = r.clampLayer(e.Layer)
		li.layers[e.Layer-1] = append(li.layers[e.Layer-1], e.ID)
	})
}

// ids returns the indexed ids for a 1-based layer.
func (li *layerIndex) ids(layer int) []ID {
	if layer < 1 || layer > len(li.layers) {
		return nil
	}
	return li.layers[layer-1]
}

// runUpdate calls OnUpdate on every indexed entity, highest layer first.
// Entities deleted earlier in the same pass are skipped.
func (li *layerIndex) runUpdate(r *Registry, step float64) {
	for l := len(li.layers) - 1; l >= 0; l-- {
		for _, id := range li.layers[l] {
			e, ok := r.Entity(id)
			if !ok || e.OnUpdate == nil {
				continue
			}
			e.OnUpdate(step)
		}
	}
}

// runRender calls OnRender on every indexed entity, layer 1 first, so
// higher layers draw on top.
func (li *layerIndex) runRender(r *Registry, dst *ebiten.Image, cam CameraView) int {
	drawn := 0
	for l := range li.layers {
		for _, id := range li.layers[l] {
			e, ok := r.Entity(id)
			if !ok || e.OnRender == nil {
				continue
			}
			e.OnRender(dst, cam)
			drawn++
		}
	}
	return drawn
}
