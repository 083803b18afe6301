// Package auth checks usernames and passwords for the login view.
//
// Two backends implement [Authenticator]: [Memory] for development and tests,
// and [Postgres] backed by the lizardui_users table. Passwords are stored as
// bcrypt hashes. Apply [Migrations] with db.Migrate before using Postgres.
package auth
