package app

import (
	"os"

	"github.com/cineverse/core/internal/config"
	http_analytics "github.com/cineverse/core/internal/delivery/http/analytics"
	http_auth "github.com/cineverse/core/internal/delivery/http/auth"
	http_banner "github.com/cineverse/core/internal/delivery/http/banner"
	http_discussion "github.com/cineverse/core/internal/delivery/http/discussion"
	http_init "github.com/cineverse/core/internal/delivery/http/init"
	http_session_middleware "github.com/cineverse/core/internal/delivery/http/middleware/session"
	http_movie "github.com/cineverse/core/internal/delivery/http/movie"
	http_notification "github.com/cineverse/core/internal/delivery/http/notification"
	http_recommendation "github.com/cineverse/core/internal/delivery/http/recommendation"
	http_review "github.com/cineverse/core/internal/delivery/http/review"
	http_user "github.com/cineverse/core/internal/delivery/http/user"
	http_watchlist "github.com/cineverse/core/internal/delivery/http/watchlist"
	ws_discussion "github.com/cineverse/core/internal/delivery/ws/discussion"
	infra_ai "github.com/cineverse/core/internal/infra/ai"
	infra_postgres_analytics "github.com/cineverse/core/internal/infra/postgres/analytics"
	infra_postgres_banner "github.com/cineverse/core/internal/infra/postgres/banner"
	infra_postgres_discussion "github.com/cineverse/core/internal/infra/postgres/discussion"
	infra_pg_init "github.com/cineverse/core/internal/infra/postgres/init"
	infra_postgres_movie "github.com/cineverse/core/internal/infra/postgres/movie"
	infra_postgres_notification "github.com/cineverse/core/internal/infra/postgres/notification"
	infra_postgres_recommendation "github.com/cineverse/core/internal/infra/postgres/recommendation"
	infra_postgres_review "github.com/cineverse/core/internal/infra/postgres/review"
	infra_postgres_user "github.com/cineverse/core/internal/infra/postgres/user"
	infra_postgres_watchlist "github.com/cineverse/core/internal/infra/postgres/watchlist"
	infra_redis_collection_set "github.com/cineverse/core/internal/infra/redis/collection_set"
	infra_redis_init "github.com/cineverse/core/internal/infra/redis/init"
	infra_session_cache "github.com/cineverse/core/internal/infra/redis/session"
	infra_s3 "github.com/cineverse/core/internal/infra/s3"
	"github.com/cineverse/core/internal/infra/s3mock"
	service_session_auth "github.com/cineverse/core/internal/service/auth/session"
	"github.com/cineverse/core/internal/service/rating_summary"
	usecase_analytics "github.com/cineverse/core/internal/usecase/analytics"
	usecase_banner "github.com/cineverse/core/internal/usecase/banner"
	usecase_discussion "github.com/cineverse/core/internal/usecase/discussion"
	usecase_movie "github.com/cineverse/core/internal/usecase/movie"
	usecase_notification "github.com/cineverse/core/internal/usecase/notification"
	usecase_recommendation "github.com/cineverse/core/internal/usecase/recommendation"
	usecase_review "github.com/cineverse/core/internal/usecase/review"
	usecase_user "github.com/cineverse/core/internal/usecase/user"
	usecase_watchlist "github.com/cineverse/core/internal/usecase/watchlist"
)

// ObjectStorage is the media store contract shared by the real S3 driver
// and the in-memory mock.
type ObjectStorage interface {
	usecase_movie.PosterRepository
}

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	posterStorage, avatarStorage, bannerStorage := buildStorages(cfg)

	summarizer := rating_summary.New()
	aiClient := infra_ai.New(cfg.AI)

	movieRepository := infra_postgres_movie.New(pgConn)
	reviewRepository := infra_postgres_review.New(pgConn)
	recommendationRepository := infra_postgres_recommendation.New(pgConn)
	notificationRepository := infra_postgres_notification.New(pgConn)
	watchlistRepository := infra_postgres_watchlist.New(pgConn)
	userRepository := infra_postgres_user.New(pgConn)
	analyticsRepository := infra_postgres_analytics.New(pgConn)
	discussionRepository := infra_postgres_discussion.New(pgConn)
	bannerRepository := infra_postgres_banner.New(pgConn)

	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	collectionRegistry := infra_redis_collection_set.New(redisConn, "collection_set")

	authService := service_session_auth.New(userRepository, sessionCache, cfg.Session.TTL)
	sessionMiddleware := http_session_middleware.New(authService)

	hub := ws_discussion.NewHub()
	go hub.Run()

	movieUC := usecase_movie.New(movieRepository, posterStorage, reviewRepository, aiClient)
	reviewUC := usecase_review.New(reviewRepository, summarizer)
	recommendationUC := usecase_recommendation.New(recommendationRepository, movieRepository)
	notificationUC := usecase_notification.New(notificationRepository, movieRepository)
	watchlistUC := usecase_watchlist.New(watchlistRepository, movieRepository, reviewRepository, summarizer, collectionRegistry)
	userUC := usecase_user.New(userRepository, avatarStorage)
	analyticsUC := usecase_analytics.New(analyticsRepository)
	discussionUC := usecase_discussion.New(discussionRepository, hub)
	bannerUC := usecase_banner.New(bannerRepository, bannerStorage)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_auth.New(authService, sessionMiddleware))
	controllerPool.Add(http_movie.New(movieUC, sessionMiddleware))
	controllerPool.Add(http_review.New(reviewUC, sessionMiddleware))
	controllerPool.Add(http_recommendation.New(recommendationUC, sessionMiddleware))
	controllerPool.Add(http_notification.New(notificationUC, userUC, sessionMiddleware))
	controllerPool.Add(http_watchlist.New(watchlistUC, sessionMiddleware))
	controllerPool.Add(http_user.New(userUC, sessionMiddleware))
	controllerPool.Add(http_analytics.New(analyticsUC))
	controllerPool.Add(http_discussion.New(discussionUC, sessionMiddleware))
	controllerPool.Add(http_banner.New(bannerUC, sessionMiddleware))
	controllerPool.Add(ws_discussion.NewController(hub, sessionMiddleware))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}

func buildStorages(cfg *config.Config) (ObjectStorage, ObjectStorage, ObjectStorage) {
	if os.Getenv("AWS_ACCESS_KEY_ID") == "" && os.Getenv("S3_CLIENT_TYPE") == "" {
		mock := s3mock.New()
		return mock, mock, mock
	}

	s3conn := infra_s3.MustEstablishConn()

	posters, err := infra_s3.New(cfg.S3.Bucket, s3conn, cfg.S3.PosterPrefix)
	if err != nil {
		panic(err)
	}
	avatars, err := infra_s3.New(cfg.S3.Bucket, s3conn, cfg.S3.AvatarPrefix)
	if err != nil {
		panic(err)
	}
	banners, err := infra_s3.New(cfg.S3.Bucket, s3conn, cfg.S3.BannerPrefix)
	if err != nil {
		panic(err)
	}

	return posters, avatars, banners
}
