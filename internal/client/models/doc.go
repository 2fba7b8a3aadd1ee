// Package models holds the client-side domain types shared by the account,
// listing, profile and session packages.
package models
