package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hunt-ballistics/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
}

func (s *ClientTestSuite) TearDownTest() {
	s.mr.Close()
}

func (s *ClientTestSuite) TestConnectSingleNode() {
	client, err := redis.Connect([]string{s.mr.Addr()}, nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redis.Ping(context.Background(), client, time.Second))
}

func (s *ClientTestSuite) TestConnectRequiresEndpoint() {
	_, err := redis.Connect(nil, nil)
	s.Error(err)

	_, err = redis.NewClient("", nil)
	s.Error(err)

	_, err = redis.NewClusterClient(nil, nil)
	s.Error(err)
}

func (s *ClientTestSuite) TestPingFailsWhenServerIsGone() {
	client, err := redis.NewClient(s.mr.Addr(), &redis.Options{MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.mr.Close()
	s.Error(redis.Ping(context.Background(), client, 500*time.Millisecond))
}
