// Package inspect provides read-only analysis helpers around the transform
// library: pixel color sampling, dominant-color extraction, and rendering
// of histograms into plain raster images for display or saving.
package inspect
