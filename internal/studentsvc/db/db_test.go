package db

import (
	"testing"
	"time"

	"github.com/avvvet/student-services/internal/studentsvc/config"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClusterConfig(t *testing.T) {
	cluster := NewClusterConfig(config.CassandraConfig{
		Hosts:       []string{"cass-1", "cass-2"},
		Port:        9142,
		Datacenter:  "dc2",
		Keyspace:    "prn22510109",
		Username:    "cassandra",
		Password:    "secret",
		Timeout:     3 * time.Second,
		ConnTimeout: time.Second,
	})

	assert.Equal(t, []string{"cass-1", "cass-2"}, cluster.Hosts)
	assert.Equal(t, 9142, cluster.Port)
	assert.Equal(t, "prn22510109", cluster.Keyspace)
	assert.Equal(t, gocql.LocalQuorum, cluster.Consistency)
	assert.Equal(t, 3*time.Second, cluster.Timeout)
	assert.NotNil(t, cluster.PoolConfig.HostSelectionPolicy)
	assert.Equal(t, gocql.PasswordAuthenticator{Username: "cassandra", Password: "secret"}, cluster.Authenticator)
}

func TestNewClusterConfigWithoutAuth(t *testing.T) {
	cluster := NewClusterConfig(config.CassandraConfig{Hosts: []string{"localhost"}})
	assert.Nil(t, cluster.Authenticator)
}

func TestDatabaseName(t *testing.T) {
	name, err := DatabaseName("mongodb://localhost:27017/students")
	require.NoError(t, err)
	assert.Equal(t, "students", name)

	name, err = DatabaseName("mongodb://localhost:27017")
	require.NoError(t, err)
	assert.Equal(t, "students", name)

	name, err = DatabaseName("mongodb://user:pw@db-1:27017/campus?authSource=admin")
	require.NoError(t, err)
	assert.Equal(t, "campus", name)

	_, err = DatabaseName("mongodb://%zz")
	assert.Error(t, err)
}
