// Package scribe is the Composition Root for the Scribe note keeper.
//
// It connects the core domain (notes, formatting, the compose and edit state
// machine) with the storage adapters using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// A notebook is an ordered list of short notes, newest first. Each note carries
// its own formatting (font family, size, text case and alignment) drawn from
// fixed sets. The whole collection lives under a single key of a blob store and
// is rewritten after every change, so any key/value backend can hold it.
//
// Features:
//
//   - **Hexagonal Architecture**: `pkg/core` knows only the `core.BlobStore` port.
//   - **Adapters**: in-memory, files (atomic writes, change watching), SQLite and MongoDB.
//   - **Explicit Edit Sessions**: `core.Composer` is a small state machine that keeps
//     creating a note and editing another mutually exclusive.
//   - **Rollback on Failure**: a failed write leaves the in-memory collection untouched.
//
// Usage:
//
//	nb, err := scribe.Open(ctx, scribe.WithPath("./notes"))
//	if err != nil {
//		return err
//	}
//	defer nb.Close()
//
//	note, err := nb.Store.Create(ctx, "Buy milk", core.DefaultFormatting())
package scribe
