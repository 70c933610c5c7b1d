package assets

// Package assets bundles the carousel images, the ambient loops and the app
// icon into the binary and resolves them by logical name.
