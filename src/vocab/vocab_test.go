package vocab

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestVocabTestSuite(t *testing.T) {
	suite.Run(t, new(VocabTestSuite))
}

type VocabTestSuite struct {
	suite.Suite
}

func (s *VocabTestSuite) TestAdminLabels() {
	cases := map[int64]string{
		StatusPending:     "pending",
		StatusApproved:    "approved",
		StatusRejected:    "rejected",
		StatusUnderReview: "under_review",
	}

	for code, expected := range cases {
		label, known := Map(code, Admin)
		assert.True(s.T(), known)
		assert.Equal(s.T(), expected, label)
	}
}

func (s *VocabTestSuite) TestOwnerLabels() {
	cases := map[int64]string{
		StatusPending:  "pending",
		StatusApproved: "active",
		StatusRejected: "rejected",
	}

	for code, expected := range cases {
		label, known := Map(code, Owner)
		assert.True(s.T(), known)
		assert.Equal(s.T(), expected, label)
	}
}

func (s *VocabTestSuite) TestOwnerUnderReviewCollapsesToPending() {
	label, known := Map(StatusUnderReview, Owner)
	assert.True(s.T(), known)
	assert.Equal(s.T(), "pending", label)
}

func (s *VocabTestSuite) TestUnknownCodeDegradesToDefault() {
	for _, code := range []int64{-1, 4, 99, 1 << 40} {
		for _, vocabulary := range []Vocabulary{Admin, Owner} {
			label, known := Map(code, vocabulary)
			assert.False(s.T(), known)
			assert.Equal(s.T(), DefaultLabel, label)
		}
	}
}

func (s *VocabTestSuite) TestFromBig() {
	assert.Equal(s.T(), int64(2), FromBig(big.NewInt(2)))
	assert.Equal(s.T(), int64(-1), FromBig(nil))

	tooBig := new(big.Int).Lsh(big.NewInt(1), 80)
	assert.Equal(s.T(), int64(-1), FromBig(tooBig))
}
