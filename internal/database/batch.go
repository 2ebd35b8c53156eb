package database

import (
	"context"
	"strings"
)

// AtomicBatch accumulates statements that must succeed or fail together.
// On Execute the statements are wrapped in BEGIN TRANSACTION / COMMIT
// TRANSACTION and sent in a single round trip, so partial application is
// never visible to readers.
type AtomicBatch struct {
	statements []string
	vars       map[string]interface{}
}

// NewAtomicBatch creates an empty batch
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{
		vars: make(map[string]interface{}),
	}
}

// Add appends a statement to the batch. Variables are merged into one
// namespace; callers are responsible for keeping names distinct across
// statements.
func (ab *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	ab.statements = append(ab.statements, strings.TrimRight(strings.TrimSpace(query), ";"))
	for k, v := range vars {
		ab.vars[k] = v
	}
	return ab
}

// Len reports the number of statements queued
func (ab *AtomicBatch) Len() int {
	return len(ab.statements)
}

// Execute runs the batch atomically. An empty batch is a no-op.
func (ab *AtomicBatch) Execute(ctx context.Context, db Database) error {
	if len(ab.statements) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range ab.statements {
		sb.WriteString(stmt)
		sb.WriteString(";\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return db.Execute(ctx, sb.String(), ab.vars)
}
