package routing

// ScrollTarget returns the scroll position to apply once a navigation completes.
// Every navigation resets to the top of the viewport, including history
// traversal where a saved offset exists.
func ScrollTarget(req NavigationRequest) ScrollPosition {
	return ScrollPosition{X: 0, Y: 0}
}
