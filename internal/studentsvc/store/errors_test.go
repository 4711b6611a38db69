package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKeepsUnderlyingText(t *testing.T) {
	err := newError(KindQuery, "insert", errors.New("line 1:7 no viable alternative"))

	assert.Equal(t, "line 1:7 no viable alternative", err.Error())
	assert.Equal(t, KindQuery, KindOf(err))
	assert.False(t, IsNotFound(err))
}

func TestNotFoundMatchesThroughWrapping(t *testing.T) {
	driverErr := errors.New("not found")
	err := fmt.Errorf("read: %w", newError(KindNotFound, "read_one", driverErr))

	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindQuery, KindOf(errors.New("boom")))
	assert.Equal(t, "connection", KindConnection.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "query", KindQuery.String())
}
