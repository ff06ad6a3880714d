// Package quire is the Composition Root for the quire content store.
//
// It connects the core domain (chapters, questions, derived views) with the
// persistence adapter (a single JSON state document in a vault directory)
// using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Quire is the content engine of a single-user study book: a fixed set of
// chapters holding rich-text questions, with bookmarks, search, random pick,
// and snapshot backup/restore. The canonical state is one document; every
// mutation is a pure transform followed by an atomic whole-document save, and
// every view is recomputed from the latest snapshot.
//
// Features:
//
//   - **Single Source of Truth**: One persisted document; derived views are
//     never stored.
//   - **Pure Mutation API**: Rename, upsert, delete, and bookmark transforms
//     that never touch their input.
//   - **Atomic Persistence**: Temp-file + rename saves with no partial-write
//     visibility.
//   - **Snapshot Backup/Restore**: Validated JSON export/import with full
//     field fidelity.
//   - **Change Notification**: fsnotify-based watch so long-lived readers can
//     reload when another process saves.
//
// Usage:
//
//	// Open a vault session with functional options
//	sess, err := quire.Open("./vault",
//		quire.WithLogger(logger),
//	)
//
//	// Save a question
//	err = sess.UpsertQuestion("1", quire.QuestionDraft{
//		Title: "What is a norm?",
//		Type:  core.TypeShort,
//	})
package quire
