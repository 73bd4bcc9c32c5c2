// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags take priority, then environment variables, then defaults. A .env
file in the working directory is loaded first (via godotenv) so local
development settings don't need exporting; a missing .env is fine.

# Settings

  - LOWSTOCK_FILE (-f): data file path (default lowstock.json, or
    lowstock.db for the sqlite store)
  - LOWSTOCK_STORE (-t): store backend, json or sqlite (default json)
  - LOWSTOCK_USER (-user): preset user name, skips the login prompt
  - LOWSTOCK_ADMIN=1 (-admin): treat the preset user as an administrator
*/
package cliparse
