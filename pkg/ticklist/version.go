// Package ticklist carries build-level metadata for the module.
package ticklist

// Version is the current release version.
const Version = "0.1.0"
