package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type S3 struct {
	Bucket       string
	PosterPrefix string
	AvatarPrefix string
	BannerPrefix string
}

type AI struct {
	URL   string
	Token string
	Model string
}

type Session struct {
	TTL time.Duration
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	S3       S3
	AI       AI
	Session  Session
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		S3:       *newS3(),
		AI:       *newAI(),
		Session:  *newSession(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "cineverse"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newS3() *S3 {
	return &S3{
		Bucket:       getenv("S3_BUCKET", "cineverse-media"),
		PosterPrefix: getenv("S3_POSTER_PREFIX", "poster/"),
		AvatarPrefix: getenv("S3_AVATAR_PREFIX", "avatar/"),
		BannerPrefix: getenv("S3_BANNER_PREFIX", "banner/"),
	}
}

func newAI() *AI {
	return &AI{
		URL:   getenv("AI_URL", ""),
		Token: getenv("AI_TOKEN", ""),
		Model: getenv("AI_MODEL", "gemini-1.5-flash"),
	}
}

func newSession() *Session {
	ttlHours, err := strconv.Atoi(getenv("SESSION_TTL_HOURS", "24"))
	if err != nil {
		ttlHours = 24
	}
	return &Session{
		TTL: time.Duration(ttlHours) * time.Hour,
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}
