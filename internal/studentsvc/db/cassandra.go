package db

import (
	"fmt"

	"github.com/avvvet/student-services/internal/studentsvc/config"
	"github.com/gocql/gocql"
)

func NewClusterConfig(cfg config.CassandraConfig) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Port = cfg.Port
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = gocql.LocalQuorum
	cluster.Timeout = cfg.Timeout
	cluster.ConnectTimeout = cfg.ConnTimeout
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(
		gocql.DCAwareRoundRobinPolicy(cfg.Datacenter),
	)

	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	return cluster
}

// ConnectCassandra opens the process wide session.
func ConnectCassandra(cfg config.CassandraConfig) (*gocql.Session, error) {
	session, err := NewClusterConfig(cfg).CreateSession()
	if err != nil {
		return nil, fmt.Errorf("create cassandra session: %w", err)
	}

	return session, nil
}
