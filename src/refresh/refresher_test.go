package refresh

import (
	"testing"
	"time"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestRefresherTestSuite(t *testing.T) {
	suite.Run(t, new(RefresherTestSuite))
}

type RefresherTestSuite struct {
	suite.Suite
	config *config.Config
}

func (s *RefresherTestSuite) SetupSuite() {
	s.config = config.Default()
}

func (s *RefresherTestSuite) TestPokeNeverBlocks() {
	refresher := NewRefresher(s.config)
	require.NotNil(s.T(), refresher)

	// Not started, repeated pokes coalesce instead of blocking
	for i := 0; i < 10; i++ {
		refresher.Poke()
	}
}

func (s *RefresherTestSuite) TestPokeTriggersRefresh() {
	refreshed := make(chan struct{}, 1)

	refresher := NewRefresher(s.config).
		WithOnRefresh(func() error {
			select {
			case refreshed <- struct{}{}:
			default:
			}
			return nil
		})

	err := refresher.Start()
	require.NoError(s.T(), err)
	defer refresher.StopWait()

	refresher.Poke()

	select {
	case <-refreshed:
	case <-time.After(5 * time.Second):
		assert.Fail(s.T(), "refresh was not triggered")
	}
}
