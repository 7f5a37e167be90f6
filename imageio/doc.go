// SPDX-License-Identifier: MIT

// Package imageio loads and stores grayscale grids as image files.
//
// Colour inputs are reduced to 8-bit luma. Supported formats are PNG, JPEG,
// BMP and TIFF; the format for writing is chosen by file extension.
package imageio
