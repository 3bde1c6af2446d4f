package geometry

import "github.com/mkarlik/go-smallray/pkg/core"

// bvhEntry pairs geometry with its precomputed bounding box so the box is
// derived through GrowBBox exactly once during construction
type bvhEntry struct {
	geometry Geometry
	bbox     core.AABB
}

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Entries     []bvhEntry // Multiple entries for leaf nodes (nil for internal nodes)
}

// BVH is an aggregate backed by a Bounding Volume Hierarchy. It satisfies the
// same Geometry contract as the flat List; only traversal order differs, which
// matters solely for the unspecified equal-distance tie-break.
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: if we have this many or fewer entries, store them in a leaf node
const leafThreshold = 8

// NewBVH constructs a BVH aggregate from a slice of geometry
func NewBVH(geometry []Geometry) *BVH {
	if len(geometry) == 0 {
		return &BVH{Root: nil}
	}

	entries := make([]bvhEntry, len(geometry))
	for i, g := range geometry {
		entries[i] = bvhEntry{geometry: g, bbox: growOne(g)}
	}

	return &BVH{Root: buildBVH(entries, 0)}
}

// growOne derives a single geometry's bounding box through its GrowBBox contract
func growOne(g Geometry) core.AABB {
	boxMin := core.NewVec3(core.MaxDist, core.MaxDist, core.MaxDist)
	boxMax := core.NewVec3(-core.MaxDist, -core.MaxDist, -core.MaxDist)
	g.GrowBBox(&boxMin, &boxMax)
	return core.NewAABB(boxMin, boxMax)
}

// buildBVH recursively builds the BVH using median splitting along the
// longest axis of the node's bounding box
func buildBVH(entries []bvhEntry, depth int) *BVHNode {
	boundingBox := entries[0].bbox
	for i := 1; i < len(entries); i++ {
		boundingBox = boundingBox.Union(entries[i].bbox)
	}

	// Base case: few entries - create leaf node with all of them
	if len(entries) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Entries:     entries,
		}
	}

	bestAxis, splitPos := findBestSplit(boundingBox)
	if bestAxis == -1 {
		return &BVHNode{
			BoundingBox: boundingBox,
			Entries:     entries,
		}
	}

	leftEntries, rightEntries := partitionEntries(entries, bestAxis, splitPos)

	// Ensure we don't create empty partitions
	if len(leftEntries) == 0 || len(rightEntries) == 0 {
		return &BVHNode{
			BoundingBox: boundingBox,
			Entries:     entries,
		}
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(leftEntries, depth+1),
		Right:       buildBVH(rightEntries, depth+1),
	}
}

// findBestSplit picks the longest axis and its midpoint as the split position
func findBestSplit(boundingBox core.AABB) (bestAxis int, splitPos float64) {
	bestAxis = boundingBox.LongestAxis()

	var minVal, maxVal float64
	switch bestAxis {
	case 0:
		minVal, maxVal = boundingBox.Min.X, boundingBox.Max.X
	case 1:
		minVal, maxVal = boundingBox.Min.Y, boundingBox.Max.Y
	case 2:
		minVal, maxVal = boundingBox.Min.Z, boundingBox.Max.Z
	}

	// Skip if no extent along this axis
	if maxVal <= minVal {
		return -1, 0
	}

	splitPos = (minVal + maxVal) * 0.5
	return bestAxis, splitPos
}

// partitionEntries partitions entries by bounding box center against the split position
func partitionEntries(entries []bvhEntry, axis int, splitPos float64) ([]bvhEntry, []bvhEntry) {
	var leftEntries, rightEntries []bvhEntry

	for _, entry := range entries {
		center := entry.bbox.Center()
		var centerVal float64
		switch axis {
		case 0:
			centerVal = center.X
		case 1:
			centerVal = center.Y
		case 2:
			centerVal = center.Z
		}

		if centerVal < splitPos {
			leftEntries = append(leftEntries, entry)
		} else {
			rightEntries = append(rightEntries, entry)
		}
	}

	return leftEntries, rightEntries
}

// Intersect implements the Geometry interface closest-hit query
func (bvh *BVH) Intersect(ray core.Ray, isect *core.Isect) bool {
	if bvh.Root == nil {
		return false
	}
	return bvh.intersectNode(bvh.Root, ray, isect)
}

// intersectNode recursively tests ray intersection with BVH nodes,
// using isect.Dist as the running closest-hit bound
func (bvh *BVH) intersectNode(node *BVHNode, ray core.Ray, isect *core.Isect) bool {
	if !node.BoundingBox.Hit(ray, ray.TMin, isect.Dist) {
		return false
	}

	// Leaf node: linear search through all entries
	if node.Entries != nil {
		hitAnything := false
		for _, entry := range node.Entries {
			if entry.geometry.Intersect(ray, isect) {
				hitAnything = true
			}
		}
		return hitAnything
	}

	hitAnything := false
	if node.Left != nil && bvh.intersectNode(node.Left, ray, isect) {
		hitAnything = true
	}
	if node.Right != nil && bvh.intersectNode(node.Right, ray, isect) {
		hitAnything = true
	}
	return hitAnything
}

// IntersectP implements the Geometry interface any-hit query,
// returning as soon as any entry reports a hit
func (bvh *BVH) IntersectP(ray core.Ray, maxDist float64) bool {
	if bvh.Root == nil {
		return false
	}
	return bvh.intersectPNode(bvh.Root, ray, maxDist)
}

func (bvh *BVH) intersectPNode(node *BVHNode, ray core.Ray, maxDist float64) bool {
	if !node.BoundingBox.Hit(ray, ray.TMin, maxDist) {
		return false
	}

	if node.Entries != nil {
		for _, entry := range node.Entries {
			if entry.geometry.IntersectP(ray, maxDist) {
				return true
			}
		}
		return false
	}

	if node.Left != nil && bvh.intersectPNode(node.Left, ray, maxDist) {
		return true
	}
	return node.Right != nil && bvh.intersectPNode(node.Right, ray, maxDist)
}

// GrowBBox expands the given bound to include the whole hierarchy
func (bvh *BVH) GrowBBox(boxMin, boxMax *core.Vec3) {
	if bvh.Root == nil {
		return
	}
	*boxMin = boxMin.Min(bvh.Root.BoundingBox.Min)
	*boxMax = boxMax.Max(bvh.Root.BoundingBox.Max)
}

// getStats returns statistics about the BVH structure
func (bvh *BVH) getStats() bvhStats {
	if bvh.Root == nil {
		return bvhStats{}
	}

	stats := bvhStats{}
	bvh.collectStats(bvh.Root, 0, &stats)

	if stats.leafNodes > 0 {
		stats.avgDepth = stats.avgDepth / float64(stats.leafNodes)
	}

	return stats
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes   int
	leafNodes    int
	maxDepth     int
	avgDepth     float64
	totalEntries int
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *bvhStats) {
	stats.totalNodes++

	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if node.Entries != nil {
		stats.leafNodes++
		stats.totalEntries += len(node.Entries)
		stats.avgDepth += float64(depth)
	} else {
		if node.Left != nil {
			bvh.collectStats(node.Left, depth+1, stats)
		}
		if node.Right != nil {
			bvh.collectStats(node.Right, depth+1, stats)
		}
	}
}
