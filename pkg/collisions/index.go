package collisions

import (
	"math"
	"sort"

	"github.com/cbodonnell/ballpit/pkg/physics"
	"github.com/solarlune/resolv"
)

const (
	TagWall = "wall"
	TagBall = "ball"

	// CellSize is the width and height of an index cell.
	CellSize = 16
)

// Index mirrors the bounding boxes of bodies into a resolv space so point
// lookups only test bodies in nearby cells.
type Index struct {
	space   *resolv.Space
	objects map[string]*resolv.Object
	// order is the sequence in which each body was first synced.
	order map[string]int
	next  int
}

func NewIndex(width, height float64) *Index {
	return &Index{
		space:   resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), CellSize, CellSize),
		objects: make(map[string]*resolv.Object),
		order:   make(map[string]int),
	}
}

// Sync adds new bodies, moves known ones and drops bodies that are gone.
func (i *Index) Sync(bodies []*physics.Body) {
	live := make(map[string]struct{}, len(bodies))
	for _, b := range bodies {
		live[b.ID()] = struct{}{}
		bounds := b.Bounds()

		obj, ok := i.objects[b.ID()]
		if !ok {
			tag := TagBall
			if b.IsStatic() {
				tag = TagWall
			}
			obj = resolv.NewObject(bounds.Min.X, bounds.Min.Y, bounds.Width(), bounds.Height(), tag)
			obj.Data = b
			i.space.Add(obj)
			i.objects[b.ID()] = obj
			i.order[b.ID()] = i.next
			i.next++
			continue
		}

		if b.IsStatic() {
			continue
		}
		obj.Position.X = bounds.Min.X
		obj.Position.Y = bounds.Min.Y
		obj.Size.X = bounds.Width()
		obj.Size.Y = bounds.Height()
		obj.Update()
	}

	for id, obj := range i.objects {
		if _, ok := live[id]; ok {
			continue
		}
		i.space.Remove(obj)
		delete(i.objects, id)
		delete(i.order, id)
	}
}

// At returns the ids of the dynamic bodies containing the point (x, y) in
// the order they were synced, so the last id is the one drawn on top.
func (i *Index) At(x, y float64) []string {
	probe := resolv.NewObject(x, y, 1, 1)
	i.space.Add(probe)
	defer i.space.Remove(probe)

	collision := probe.Check(0, 0, TagBall)
	if collision == nil {
		return nil
	}

	var ids []string
	for _, obj := range collision.Objects {
		b, ok := obj.Data.(*physics.Body)
		if !ok || !b.Contains(x, y) {
			continue
		}
		ids = append(ids, b.ID())
	}
	sort.Slice(ids, func(a, b int) bool {
		return i.order[ids[a]] < i.order[ids[b]]
	})
	return ids
}

func (i *Index) Len() int {
	return len(i.objects)
}

// Clear removes every object from the index.
func (i *Index) Clear() {
	for id, obj := range i.objects {
		i.space.Remove(obj)
		delete(i.objects, id)
	}
	i.order = make(map[string]int)
	i.next = 0
}
