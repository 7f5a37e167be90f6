// SPDX-License-Identifier: MIT

// Package noise corrupts grayscale grids for restoration experiments.
//
// Three models are provided, each clipped back into [0,255]:
//
//	Laplacian      additive, density 1/(2λ)·exp(−|x−μ|/λ)
//	Gaussian       additive, mean μ and standard deviation σ
//	SaltAndPepper  each pixel becomes 0 with probability p, 255 with probability p
//
// All functions take an explicit math/rand/v2 Source so runs are reproducible.
// Continuous samples come from gonum's stat/distuv.
package noise
