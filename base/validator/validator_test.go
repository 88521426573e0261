package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "checksummed",
			address:    "0x3C4cB2ABecfFA20b0bE9b05d1E81C45bc46c5a7a",
			expIsValid: true,
		},
		{
			desc:       "lower case",
			address:    "0x3c4cb2abecffa20b0be9b05d1e81c45bc46c5a7a",
			expIsValid: true,
		},
		{
			desc:       "not hex",
			address:    "0xzz4cb2abecffa20b0be9b05d1e81c45bc46c5a7a",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsValidPrice() {
	s.True(IsValidPrice("0.2"))
	s.True(IsValidPrice("12"))
	s.True(IsValidPrice("0.000000000000000001"))
	s.False(IsValidPrice("0.0000000000000000001"))
	s.False(IsValidPrice("0"))
	s.False(IsValidPrice("-1"))
	s.False(IsValidPrice("abc"))
	s.False(IsValidPrice(""))
}

func (s *ValidatorTestSuite) TestStructTags() {
	type req struct {
		AssetContract string `validate:"required,address"`
		Price         string `validate:"required,price"`
	}
	cv := NewCustomValidator(New())
	s.NoError(cv.Validate(&req{AssetContract: "0xa2c644D07a78aD12A71c75D5185Fc6885D4bBb48", Price: "0.2"}))
	s.Error(cv.Validate(&req{AssetContract: "0x1", Price: "0.2"}))
	s.Error(cv.Validate(&req{AssetContract: "0xa2c644D07a78aD12A71c75D5185Fc6885D4bBb48", Price: "free"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
