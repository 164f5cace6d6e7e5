// Package frames owns named coordinate frames and the rigid transforms
// registered between them.
//
// Responsibilities: isometry (rotation + translation) arithmetic, the
// time-varying reference frame graph, and transform path resolution
// between any two connected frames.
// Key types: FrameID, TransformID, Isometry, Graph.
//
// Consumers should depend on the Resolver interface rather than on
// Graph directly so tests can substitute a fixed resolver.
package frames
