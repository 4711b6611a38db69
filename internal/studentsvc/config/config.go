package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	Cassandra CassandraConfig
	Mongo     MongoConfig
}

type CassandraConfig struct {
	Hosts       []string
	Port        int
	Datacenter  string
	Keyspace    string
	Table       string
	Username    string
	Password    string
	Timeout     time.Duration
	ConnTimeout time.Duration
}

type MongoConfig struct {
	URI        string // expected to be like: mongodb://localhost:27017/students
	Collection string
	Timeout    time.Duration
}

func Load() Config {
	return Config{
		Port: getEnv("STUDENT_SERVICE_PORT", "3000"),
		Cassandra: CassandraConfig{
			Hosts:       splitHosts(getEnv("CASSANDRA_HOSTS", "localhost")),
			Port:        getEnvInt("CASSANDRA_PORT", 9042),
			Datacenter:  getEnv("CASSANDRA_DATACENTER", "datacenter1"),
			Keyspace:    getEnv("CASSANDRA_KEYSPACE", "prn22510109"),
			Table:       getEnv("CASSANDRA_TABLE", "students_table"),
			Username:    os.Getenv("CASSANDRA_USERNAME"),
			Password:    os.Getenv("CASSANDRA_PASSWORD"),
			Timeout:     getEnvDuration("CASSANDRA_TIMEOUT", 10*time.Second),
			ConnTimeout: getEnvDuration("CASSANDRA_CONNECT_TIMEOUT", 5*time.Second),
		},
		Mongo: MongoConfig{
			URI:        getEnv("MONGODB_URI", "mongodb://localhost:27017/students"),
			Collection: getEnv("MONGODB_COLLECTION", "students"),
			Timeout:    getEnvDuration("MONGODB_TIMEOUT", 10*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitHosts(s string) []string {
	var hosts []string
	for _, h := range strings.Split(s, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
