// Package models defines the view-models decoded from backend responses.
// None of them is persisted by the client; every panel fetches its own copy.
package models
