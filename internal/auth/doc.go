// Package auth implements the credential and session workflows:
// registration, login, session lookup and the password/token adapters
// they sit on.
//
// Sessions are stateless. Login issues an HS256-signed token with a
// configurable lifetime; verification checks signature and expiry only,
// so logout simply discards the client-held cookie.
//
// # Configuration
//
//	AUTH_JWT_SECRET=<secret>   # Token signing secret (ephemeral if empty)
//	AUTH_TOKEN_TTL=24h         # Session token lifetime
//	AUTH_BCRYPT_COST=12        # bcrypt cost factor
//
// # Usage
//
//	repo := users.NewRepository(db.DB)
//	svc := auth.NewService(repo, cfg.Auth)
//	user, token, err := svc.Login(email, password)
package auth
