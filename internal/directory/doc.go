// Package directory stores the accounts known to the authority.
//
// # Overview
//
// Repository is the contract used by the authority. Two implementations are
// provided:
//
//   - MemoryRepository: a mutex-guarded map keyed by email. This is the
//     default and mirrors the dashboard's in-process user list.
//   - SQLRepository: database/sql over the pure-Go SQLite driver, with the
//     schema managed by goose migrations. Open only accepts in-memory
//     SQLite DSNs, so neither backend outlives the process.
//
// Both implementations copy accounts on the way in and out; callers never
// share memory with the stored records.
//
// # Errors
//
// Lookups of unknown accounts return common.ErrorNotFound. Creating (or
// re-keying) an account onto an email that is already taken returns
// common.ErrEmailAlreadyRegistered. Emails are compared exactly, including case.
//
// Typical usage
//
//	repo, closeRepo, err := directory.Open(ctx, cfg.DirectoryDSN)
//	if err != nil {
//		return err
//	}
//	defer closeRepo()
//
//	if err := directory.Seed(ctx, repo, cfg.SeedAdmin()); err != nil {
//		return err
//	}
//	acc, err := repo.GetByEmail(ctx, "demo@farm.com")
package directory
