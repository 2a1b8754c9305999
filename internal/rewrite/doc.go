// Package rewrite holds the text-region edits applied to the plugin
// artifacts. Every function takes the full text and a replacement payload,
// rewrites exactly one region, and reports whether that region was found.
// Bytes outside the region are never touched.
package rewrite
