// Package domain contains the core domain model for figgy.
//
// The domain is engine- and terminal-agnostic: it does not depend on the FIGlet
// engine, Bubble Tea, or the filesystem. Infra/adapters map into/from these types.
package domain
