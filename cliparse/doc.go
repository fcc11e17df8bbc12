// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing for the Huddleboard server.

Configuration comes from CLI flags with environment variable fallback:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - Port (-p / PORT): server port, default 4319
  - DatabaseURL (-d / DATABASE_URL): required connection string
  - DatabaseType (-t / DATABASE_TYPE): "sqlite" (default) or "postgres"
  - AdminKeySalt (-admin-salt / ADMIN_KEY_SALT): required HMAC secret for
    the board admin key

CLI flags take precedence over environment variables. Secrets should be
supplied through the environment (or a .env file loaded by main); the
flags exist for local development.
*/
package cliparse
