package service

// TokenIssuer exposes the token issuer constant to external tests.
const TokenIssuer = tokenIssuer
