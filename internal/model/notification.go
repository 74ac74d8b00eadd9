package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationNormalRecommendation  NotificationType = "normal_recommendation"
	NotificationPairingRecommendation NotificationType = "pairing_recommendation"
	NotificationMoviePromotion        NotificationType = "m_promotion"
	NotificationGenrePromotion        NotificationType = "g_promotion"
	NotificationReviews               NotificationType = "reviews"
	NotificationPromotions            NotificationType = "promotions"
	NotificationDiscussions           NotificationType = "discussions"
)

// NotificationDisplay is the render metadata for a notification type,
// resolved once at the boundary instead of re-interpreted per render.
type NotificationDisplay struct {
	Icon        string
	Color       string
	Border      string
	DualPosters bool
}

var notificationDisplays = map[NotificationType]NotificationDisplay{
	NotificationNormalRecommendation:  {Icon: "film", Color: "amber", Border: "amber"},
	NotificationPairingRecommendation: {Icon: "film", Color: "amber", Border: "amber", DualPosters: true},
	NotificationMoviePromotion:        {Icon: "megaphone", Color: "purple", Border: "purple"},
	NotificationGenrePromotion:        {Icon: "megaphone", Color: "purple", Border: "purple"},
	NotificationReviews:               {Icon: "star", Color: "blue", Border: "blue"},
	NotificationPromotions:            {Icon: "megaphone", Color: "purple", Border: "purple"},
	NotificationDiscussions:           {Icon: "chat", Color: "green", Border: "green"},
}

var genericNotificationDisplay = NotificationDisplay{Icon: "bell", Color: "gray", Border: "gray"}

func (t NotificationType) Display() NotificationDisplay {
	if d, ok := notificationDisplays[t]; ok {
		return d
	}
	return genericNotificationDisplay
}

type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"
)

type Notification struct {
	ID        uuid.UUID
	Email     string
	Type      NotificationType
	Text      string
	MovieID   *uuid.UUID
	MovieID2  *uuid.UUID
	Status    NotificationStatus
	CreatedAt time.Time
}

// FeedItem is a notification hydrated with display metadata and poster
// links for the referenced movies.
type FeedItem struct {
	Notification
	Display    NotificationDisplay
	PosterURL  string
	PosterURL2 string
}

// Feed partitions a user's notifications by recency. Both buckets keep the
// source order (createdAt descending).
type Feed struct {
	New     []FeedItem
	Earlier []FeedItem
}
