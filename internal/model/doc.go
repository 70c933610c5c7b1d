package model

// Package model defines the domain data used across the app: the fixed page
// set, the clamped carousel index, and navigation directions. Values are
// plain structs driven by explicit transitions from the UI layer.
