package prepass

import "fmt"

const (
	ViewCombined uint32 = iota
	ViewDepth
	ViewNormals
	ViewMotionVectors
	ViewDeferred
)

// Selection tells the display pass which prepass texture to sample.
type Selection struct {
	ShowDepth         bool
	ShowNormals       bool
	ShowMotionVectors bool
	ShowDeferredData  bool
	PrepassView       uint32
}

// SelectionFor derives the selection for the given view index.
// Every index from ViewDeferred upwards shows the deferred data.
func SelectionFor(index uint32) Selection {
	return Selection{
		ShowDepth:         index == ViewDepth,
		ShowNormals:       index == ViewNormals,
		ShowMotionVectors: index == ViewMotionVectors,
		ShowDeferredData:  index >= ViewDeferred,
		PrepassView:       index,
	}
}

// Label returns the display name of the selected view.
func (s Selection) Label() string {
	return Label(s.PrepassView)
}

// Caption returns the overlay heading for the selected view.
func (s Selection) Caption() string {
	return Caption(s.PrepassView)
}

// Label returns the display name of the given view index.
func Label(index uint32) string {
	switch index {
	case ViewCombined:
		return "combined"
	case ViewDepth:
		return "depth"
	case ViewNormals:
		return "normals"
	case ViewMotionVectors:
		return "motion vectors"
	default:
		return "deferred"
	}
}

// Caption returns the overlay line for the given view index.
func Caption(index uint32) string {
	return fmt.Sprintf("Prepass %d Output: %s\n", index, Label(index))
}
