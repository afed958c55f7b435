package scene

// Package scene is the boundary to the 3D engine: plane entities with
// transforms, the world that owns them, camera poses, and the depth-axis
// tween used by page transitions. Actual rendering happens elsewhere; this
// package only tracks the state a renderer would consume.
