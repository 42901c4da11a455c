package registry

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestTypesTestSuite(t *testing.T) {
	suite.Run(t, new(TypesTestSuite))
}

type TypesTestSuite struct {
	suite.Suite
}

func (s *TypesTestSuite) TestDecodeApplicationTuple() {
	values := []interface{}{
		"user-7",
		common.HexToAddress("0x02"),
		"Qm123",
		uint8(1),
		big.NewInt(1700000000),
		big.NewInt(1700001000),
		"looks good",
		true,
	}

	out, err := decodeApplicationTuple("APP_7", values)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "APP_7", out.ID)
	assert.Equal(s.T(), "user-7", out.OwnerIdentity)
	assert.Equal(s.T(), common.HexToAddress("0x02"), out.OwnerWallet)
	assert.Equal(s.T(), "Qm123", out.DocumentHash)
	assert.Equal(s.T(), uint8(1), out.Status)
	assert.Equal(s.T(), int64(1700000000), out.SubmittedAt)
	assert.Equal(s.T(), int64(1700001000), out.UpdatedAt)
	assert.Equal(s.T(), "looks good", out.ReviewNotes)
	assert.True(s.T(), out.IsActive)
}

func (s *TypesTestSuite) TestDecodeBigIntStatus() {
	values := []interface{}{
		"user-7",
		common.HexToAddress("0x02"),
		"Qm123",
		big.NewInt(2),
		big.NewInt(1700000000),
		big.NewInt(1700001000),
		"",
		true,
	}

	out, err := decodeApplicationTuple("APP_7", values)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), uint8(2), out.Status)

	// Codes outside the uint8 range never truncate silently
	values[3] = big.NewInt(300)
	_, err = decodeApplicationTuple("APP_7", values)
	assert.Error(s.T(), err)
}

func (s *TypesTestSuite) TestDecodeRejectsWrongArity() {
	_, err := decodeApplicationTuple("APP_1", []interface{}{"user-1"})
	assert.Error(s.T(), err)
}

func (s *TypesTestSuite) TestDecodeRejectsWrongTypes() {
	values := []interface{}{
		"user-7",
		"not-an-address",
		"Qm123",
		uint8(1),
		big.NewInt(0),
		big.NewInt(0),
		"",
		true,
	}

	_, err := decodeApplicationTuple("APP_7", values)
	assert.Error(s.T(), err)
}

func (s *TypesTestSuite) TestRawApplicationMapping() {
	raw := rawApplication{
		AppId:                "APP_2",
		UserId:               "user-2",
		Wallet:               common.HexToAddress("0x03"),
		IpfsHash:             "Qm456",
		Status:               2,
		SubmissionTimestamp:  big.NewInt(1700000000),
		LastUpdatedTimestamp: nil,
		ReviewNotes:          "missing deed",
		IsActive:             false,
	}

	out := raw.toApplication()
	assert.Equal(s.T(), "APP_2", out.ID)
	assert.Equal(s.T(), uint8(2), out.Status)
	assert.Equal(s.T(), int64(1700000000), out.SubmittedAt)
	// Nil timestamps collapse to zero instead of panicking
	assert.Zero(s.T(), out.UpdatedAt)
}

func (s *TypesTestSuite) TestContractABIParses() {
	contractAbi, err := TheaterRegistryABI()
	require.NoError(s.T(), err)
	require.NotNil(s.T(), contractAbi)

	for _, method := range []string{
		MethodSubmitApplication,
		MethodGetApplication,
		MethodGetUserApplications,
		MethodUpdateApplicationStatus,
		MethodGetTotalApplications,
	} {
		_, found := contractAbi.Methods[method]
		assert.True(s.T(), found, method)
	}

	_, found := contractAbi.Events[EventApplicationSubmitted]
	assert.True(s.T(), found)
	_, found = contractAbi.Events[EventStatusUpdated]
	assert.True(s.T(), found)
}
