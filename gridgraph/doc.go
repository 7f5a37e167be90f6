// SPDX-License-Identifier: MIT

// Package gridgraph treats a rectangular image as a 4-connected graph whose
// vertices are pixels and whose edges join orthogonal neighbours.
//
// What:
//
//   - Image wraps an immutable H×W grid of 8-bit intensities (the observation).
//   - Labeling wraps a separate, mutable H×W grid of 8-bit labels.
//   - Shape carries the dimensions and all index/coordinate arithmetic.
//   - Edges enumerates every neighbour pair exactly once; Neighbors walks
//     the up-to-four neighbours of a single pixel.
//   - Regions groups pixels of equal label into connected components.
//
// Pixels are addressed by row-major index idx = y*Width + x.
//
// Complexity:
//
//   - NewImage, NewLabeling, Clone: O(W×H) time and memory.
//   - Edges: O(W×H), yields 2·W·H − W − H pairs.
//   - Regions: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrValueOutOfRange: an intensity lies outside 0..255.
//   - ErrShapeMismatch: an Image and a Labeling disagree on dimensions.
package gridgraph
