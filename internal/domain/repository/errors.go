// Package repository defines the interfaces for the persistence layer.
package repository

import "github.com/pkg/errors"

// Shared persistence errors.
var (
	// ErrTransientStorage marks failures worth retrying: serialization conflicts,
	// deadlocks and dropped connections.
	ErrTransientStorage = errors.New("transient storage error")
	// ErrStatusConflict is returned when a conditional status update matched no row.
	ErrStatusConflict = errors.New("status conflict")
)
