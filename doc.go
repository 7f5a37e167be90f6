// Package mrfgrid restores corrupted grayscale images by minimising a
// pairwise Markov random field energy on the 4-connected pixel grid.
//
// What is inside?
//
//	gridgraph/  — Image (observed, immutable) and Labeling (mutable) grids,
//	              4-neighbourhood, edge iteration, equal-label regions
//	energy/     — data term (l−o)², log smoothness L·ln(1+d²/2S²),
//	              256×256 pairwise Table, total energy
//	flow/       — two-terminal Graph and exact MinCut (Dinic, Edmonds–Karp)
//	expansion/  — subgraph builder, LabelPool, Solver (alpha-expansion)
//	noise/      — Laplacian, Gaussian and salt-and-pepper corruption
//	imageio/    — PNG, JPEG, BMP and TIFF load/save
//	config/     — YAML run configuration
//	cmd/mrfrestore — command line driver
//
// One pass proposes each of the 256 intensities once, in shuffled order.
// Each proposal α is a binary "keep or switch to α" problem per pixel,
// solved exactly by one min-cut; the energy never increases.
//
// Quick start:
//
//	im, _ := gridgraph.NewImage(rows)
//	res, err := expansion.Restore(im, energy.Params{L: 10, S: 5},
//		expansion.WithPasses(2), expansion.WithSeed(1))
//
//	go install github.com/katalvlaran/mrfgrid/cmd/mrfrestore@latest
package mrfgrid
