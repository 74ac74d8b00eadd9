package model

import "github.com/google/uuid"

// DefaultListName marks ungrouped watchlist entries. Entries tagged with it
// never appear in the collections view.
const DefaultListName = "Default"

type WatchlistEntry struct {
	Email    string
	MovieID  uuid.UUID
	ListName string
}

// CollectionMovie is a watchlisted movie hydrated with its rating summary.
type CollectionMovie struct {
	Movie
	Summary RatingSummary
}

type Collection struct {
	Name   string
	Movies []CollectionMovie
}
