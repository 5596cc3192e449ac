package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/pixcontrol/internal/config"
	"github.com/GlebRadaev/pixcontrol/pkg/ratelimit"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_CleanShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestNewLimiter_Disabled() {
	s.app.cfg = &config.Config{WebhookRateLimit: 0}
	s.Nil(s.app.newLimiter(context.Background()))
}

func (s *ApplicationSuite) TestNewLimiter_Memory() {
	s.app.cfg = &config.Config{WebhookRateLimit: 5, WebhookRateWindow: time.Minute}
	s.IsType(&ratelimit.MemoryLimiter{}, s.app.newLimiter(context.Background()))
}

func (s *ApplicationSuite) TestNewLimiter_BadRedisURLFallsBack() {
	s.app.cfg = &config.Config{WebhookRateLimit: 5, WebhookRateWindow: time.Minute, RedisURL: "not-a-url"}
	s.IsType(&ratelimit.MemoryLimiter{}, s.app.newLimiter(context.Background()))
	s.Nil(s.app.redis)
}
