package task

import (
	"context"
	"testing"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/common"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestTaskTestSuite(t *testing.T) {
	suite.Run(t, new(TaskTestSuite))
}

type TaskTestSuite struct {
	suite.Suite
	config *config.Config
}

func (s *TaskTestSuite) SetupSuite() {
	s.config = config.Default()
}

func (s *TaskTestSuite) TestContextCarriesConfig() {
	task := NewTask(s.config, "test-task")

	assert.Same(s.T(), s.config, common.GetConfig(task.Ctx))
	assert.Same(s.T(), s.config, common.GetConfig(task.CtxRunning))

	// Contexts from elsewhere carry nothing
	assert.Nil(s.T(), common.GetConfig(context.Background()))
}
