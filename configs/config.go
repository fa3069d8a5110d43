package configs

import (
	"fmt"
	"os"
)

type Config struct {
	Addr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost string
	RedisPort string

	KafkaBootstrap string
	PostsTopic     string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
}

func LoadConfig() *Config {
	return &Config{
		Addr: def(os.Getenv("APP_PORT"), ":8080"),

		DBHost:     def(os.Getenv("DB_HOST"), "localhost"),
		DBPort:     def(os.Getenv("DB_PORT"), "5432"),
		DBUser:     def(os.Getenv("DB_USER"), "flink"),
		DBPassword: def(os.Getenv("DB_PASSWORD"), "flinkpass"),
		DBName:     def(os.Getenv("DB_NAME"), "flink_db"),

		RedisHost: def(os.Getenv("REDIS_HOST"), "localhost"),
		RedisPort: def(os.Getenv("REDIS_PORT"), "6379"),

		KafkaBootstrap: def(os.Getenv("KAFKA_BOOTSTRAP_SERVERS"), "kafka:9092"),
		PostsTopic:     def(os.Getenv("POSTS_TOPIC"), "posts.created"),

		S3Endpoint:  def(os.Getenv("S3_ENDPOINT"), "localhost:9000"),
		S3AccessKey: def(os.Getenv("S3_ACCESS_KEY"), "minioadmin"),
		S3SecretKey: def(os.Getenv("S3_SECRET_KEY"), "minioadmin"),
		S3Bucket:    def(os.Getenv("S3_BUCKET"), "flink-images"),
		S3UseSSL:    os.Getenv("S3_USE_SSL") == "true",
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func def(s, d string) string {
	if s == "" {
		return d
	}
	return s
}
