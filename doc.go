// Package docket is the composition root for docket task lists.
//
// A task list is a JSON array of tasks kept under one storage key. The
// core.Manager keeps that array and a visual surface (rows with a status,
// a completion checkbox and a visibility flag) in step: every operation
// rewrites the whole array first and only then touches the rows, so a
// reload always shows what the last successful operation left.
//
// Storage is pluggable through core.Backend:
//
//   - fs: one <key>.json file per collection under a hidden .docket
//     directory, written atomically and watched with fsnotify.
//   - redis: one string value per collection under a key prefix.
//   - sqlite: a key/value table in a local database file.
//   - memory: a process-local map, for tests and demos.
//
// Usage:
//
//	list := surface.NewList()
//	m, err := docket.Open(ctx, "./work",
//		docket.WithSurface(list),
//		docket.WithLogger(logger),
//	)
//
//	task, err := m.Create(ctx, "write the report")
//	_, err = m.SetStatus(ctx, task.ID, core.StatusInProgress)
package docket
