package database

import "context"

// Schema bootstrap. The unique indexes below are load-bearing: slug and
// username collisions must be rejected by the storage engine itself, not by
// a read-then-write check in application code.
var schemaStatements = []string{
	`DEFINE TABLE IF NOT EXISTS user SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS user_username_idx ON TABLE user COLUMNS username UNIQUE`,
	`DEFINE INDEX IF NOT EXISTS user_email_idx ON TABLE user COLUMNS email UNIQUE`,

	`DEFINE TABLE IF NOT EXISTS post_group SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS post_group_slug_idx ON TABLE post_group COLUMNS slug UNIQUE`,

	`DEFINE TABLE IF NOT EXISTS post SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS post_pub_date_idx ON TABLE post COLUMNS pub_date`,
}

// DefineSchema applies table and index definitions. All statements are
// idempotent, so it is safe to run on every startup.
func DefineSchema(ctx context.Context, db Database) error {
	for _, stmt := range schemaStatements {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return err
		}
	}
	return nil
}
