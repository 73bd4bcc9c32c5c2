// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage persists the shortage request collection.

Two backends implement the same Store contract:

  - FileStore: the whole collection as one JSON array document, rewritten on
    every change. The default; the file is hand-readable.
  - SQLiteStore: a local modernc.org/sqlite database. Pure Go, in-process,
    no server involved.

# Failure Policy

Store operations deliberately return no errors. I/O and decode failures are
logged through slog and the store carries on with best-effort in-memory
state:

  - a failed load starts from an empty collection
  - a failed write leaves memory correct and the durable copy stale

This is the right trade for a single-user desk tool; the caller cannot do
anything useful with a disk error mid-session. Constructors do report
errors (an unopenable database is worth stopping for).

# Copies

GetAll always hands back an independent copy. Callers can sort, filter and
mutate the result freely; the persisted collection only changes through
Save, Update and Delete.

The package does no locking: the execution model is a single caller thread,
and concurrent processes sharing one data file are unsupported (last writer
wins).
*/
package storage
