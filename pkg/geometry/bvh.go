package geometry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	// ErrEmptyBVH is returned when a BVH is built from no objects
	ErrEmptyBVH = errors.New("bvh: no objects")
	// ErrNoBoundingBox is returned when an object without a finite bounding box is put in a BVH
	ErrNoBoundingBox = errors.New("bvh: object has no bounding box")
	// ErrInvalidBoundingBox is returned when an object reports a box with min > max on some axis
	ErrInvalidBoundingBox = errors.New("bvh: object has an inverted bounding box")
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Children are either further nodes or leaf objects; Right is nil for a
// node built over a single object.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	Box   core.AABB
}

// boxedObject pairs an object with its box so construction only asks once
type boxedObject struct {
	object core.Hittable
	box    core.AABB
}

// NewBVHNode builds a BVH over objects for the shutter interval [time0, time1].
// The split axis at each level is drawn from random. The input slice is not modified.
func NewBVHNode(objects []core.Hittable, time0, time1 float64, random *rand.Rand) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	boxed := make([]boxedObject, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("object %d (%T): %w", i, object, ErrNoBoundingBox)
		}
		if !box.IsValid() {
			return nil, fmt.Errorf("object %d (%T) box %v: %w", i, object, box, ErrInvalidBoundingBox)
		}
		boxed[i] = boxedObject{object: object, box: box}
	}

	return buildBVH(boxed, random), nil
}

// buildBVH recursively splits objects at the median along a random axis
func buildBVH(objects []boxedObject, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	less := func(i, j int) bool {
		return objects[i].box.Min.Axis(axis) < objects[j].box.Min.Axis(axis)
	}

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.Left = objects[0].object
		node.Box = objects[0].box
		return node
	case 2:
		if less(0, 1) {
			node.Left, node.Right = objects[0].object, objects[1].object
		} else {
			node.Left, node.Right = objects[1].object, objects[0].object
		}
		node.Box = core.SurroundingBox(objects[0].box, objects[1].box)
		return node
	}

	sort.SliceStable(objects, less)

	mid := len(objects) / 2
	left := buildBVH(objects[:mid], random)
	right := buildBVH(objects[mid:], random)
	node.Left, node.Right = left, right
	node.Box = core.SurroundingBox(left.Box, right.Box)
	return node
}

// Hit tests the node box, then both children, narrowing the interval to the left hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var leftHit *core.HitRecord
	if n.Left != nil {
		if hit, ok := n.Left.Hit(ray, tMin, tMax); ok {
			leftHit = hit
			tMax = hit.T
		}
	}

	if n.Right != nil {
		if hit, ok := n.Right.Hit(ray, tMin, tMax); ok {
			return hit, true
		}
	}

	return leftHit, leftHit != nil
}

// BoundingBox returns the box cached at construction
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int
	LeafCount  int // objects stored below the tree
	MaxDepth   int
}

// Stats walks the tree and reports its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	for _, child := range []core.Hittable{n.Left, n.Right} {
		switch c := child.(type) {
		case nil:
		case *BVHNode:
			c.collectStats(depth+1, stats)
		default:
			stats.LeafCount++
		}
	}
}
