// Package users is the local credential store: a single SQLite table mapping
// unique usernames to passwords.
//
// Lookups are exact, case-sensitive string matches. Nothing is trimmed,
// normalized or hashed; values are stored and compared as entered.
//
// Absence is not an error: the Find* methods return (nil, nil) when no row
// matches, and a wrapped error only for driver failures.
//
//	repo := users.NewSQLiteRepository(db)
//	u, err := repo.Insert(ctx, "alice", "pw")
//	found, err := repo.FindByUsernameAndPassword(ctx, "alice", "pw")
package users
