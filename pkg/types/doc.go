// Package types defines the ChecklistRecord and Preferences entities, the KV
// host-store interface, the backend Config, and the standard error values
// shared by the Ticklist storage system.
package types
