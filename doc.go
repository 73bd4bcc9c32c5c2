// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Lowstock shortage tracker.

Lowstock records resource shortages around an office ("out of coffee in the
kitchen"), keeps one live request per resource and room, and lets the
reporter or an administrator clear them once restocked.

# Starting

	go run . -f team.json

Or with a SQLite data file:

	go run . -t sqlite -f team.db

# Configuration

Optional settings (flag / env):

  - -f / LOWSTOCK_FILE: data file path (default: lowstock.json)
  - -t / LOWSTOCK_STORE: store backend, json or sqlite (default: json)
  - -user / LOWSTOCK_USER: skip the login prompt with this name
  - -admin / LOWSTOCK_ADMIN=1: preset user is an administrator

A .env file in the working directory is picked up automatically.

# Architecture

A small layered design with the store as the single source of truth:

  - menu: interactive prompt loop and input validation
  - service: business rules (create-or-upgrade, permissioned delete,
    filtered retrieval)
  - storage: durable Store contract with JSON file and SQLite backends
  - models: domain types and enums
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
