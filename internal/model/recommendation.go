package model

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationKind string

const (
	KindNormal  RecommendationKind = "normal"
	KindPairing RecommendationKind = "pairing"
)

type Recommendation struct {
	ID        uuid.UUID
	Email     string
	MovieID1  uuid.UUID
	MovieID2  *uuid.UUID
	Message   string
	Kind      RecommendationKind
	Likes     int
	CreatedAt time.Time
}

func (r Recommendation) IsPairing() bool {
	return r.Kind == KindPairing && r.MovieID2 != nil
}
