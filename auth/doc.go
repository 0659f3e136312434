// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential primitives: entry codes, password
hashing, and token issuance.

# Entry Codes

Participants log in with a short code handed out by an administrator:

	code, err := auth.GenerateEntryCode()  // e.g. "A3F01B"

Codes are 6 uppercase hex characters. Uniqueness across the whole roster
(including soft-deleted participants) is enforced by the database UNIQUE
constraint; callers retry generation on conflict.

# Passwords

Admin passwords are bcrypt-hashed:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, candidate)

# Tokens

Both roles authenticate with a 24-hour HS256 JWT:

	token, err := auth.SignToken(subjectID, models.RoleAdmin, secret)
	claims, err := auth.ParseToken(token, secret)

Claims carry the subject ID and a role that is fixed at issuance. Parsing
rejects expired tokens, bad signatures, and non-HMAC signing methods with
ErrInvalidToken.

# ID Generation

Random hex IDs for test fixtures and non-entity identifiers:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
