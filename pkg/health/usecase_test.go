package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akunal1/smart-resume-backend/pkg/health"
	"github.com/akunal1/smart-resume-backend/pkg/health/checkers"
)

type staticResume string

func (s staticResume) Context() string { return string(s) }

func TestReady(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := health.NewService(
		checkers.NewResumeChecker(staticResume("COMPLETE RESUME DATA")),
		checkers.NewRedisChecker(client),
	)
	require.NoError(t, svc.Ready(context.Background()))

	mr.Close()
	err := svc.Ready(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: ")
}

func TestReady_ResumeMissing(t *testing.T) {
	svc := health.NewService(checkers.NewResumeChecker(staticResume("")), nil)

	err := svc.Ready(context.Background())

	assert.EqualError(t, err, "resume: resume context not loaded")
}

func TestRedisChecker_PingError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetErr(errors.New("LOADING Redis is loading the dataset in memory"))

	err := health.NewService(checkers.NewRedisChecker(client)).Ready(context.Background())

	assert.ErrorContains(t, err, "redis: LOADING")
	assert.NoError(t, mock.ExpectationsWereMet())
}
