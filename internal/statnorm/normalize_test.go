package statnorm_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/paragonforge/planner-api/internal/statnorm"
)

type NormalizeTestSuite struct {
	suite.Suite
}

func (s *NormalizeTestSuite) TestNormalValue() {
	stat := statnorm.Normalize(30, 45)

	s.Equal(30.0, stat.ClampedValue)
	s.InDelta(66.67, stat.PercentOfCap, 0.01)
	s.Equal(statnorm.StatusNormal, stat.CapStatus)
}

func (s *NormalizeTestSuite) TestNegativeValueClampsToZero() {
	stat := statnorm.Normalize(-10, 45)

	s.Equal(0.0, stat.ClampedValue)
	s.Equal(0.0, stat.PercentOfCap)
	s.Equal(statnorm.StatusNormal, stat.CapStatus)
}

func (s *NormalizeTestSuite) TestValueExactlyAtCap() {
	stat := statnorm.Normalize(45, 45)

	s.Equal(45.0, stat.ClampedValue)
	s.Equal(100.0, stat.PercentOfCap)
	s.Equal(statnorm.StatusAtCap, stat.CapStatus)
}

func (s *NormalizeTestSuite) TestValueWithinCapTolerance() {
	stat := statnorm.Normalize(45.005, 45)

	s.Equal(statnorm.StatusAtCap, stat.CapStatus)
	s.Equal(100.0, stat.PercentOfCap)
}

func (s *NormalizeTestSuite) TestValueOverCap() {
	stat := statnorm.Normalize(52, 45)

	s.Equal(52.0, stat.ClampedValue)
	s.Equal(100.0, stat.PercentOfCap)
	s.Equal(statnorm.StatusOverCap, stat.CapStatus)
}

func (s *NormalizeTestSuite) TestJustOverTolerance() {
	stat := statnorm.Normalize(45.02, 45)

	s.Equal(statnorm.StatusOverCap, stat.CapStatus)
}

func (s *NormalizeTestSuite) TestJustUnderCapIsNormal() {
	stat := statnorm.Normalize(44.99, 45)

	s.Equal(statnorm.StatusNormal, stat.CapStatus)
	s.InDelta(99.98, stat.PercentOfCap, 0.01)
}

func (s *NormalizeTestSuite) TestUncappedStat() {
	stat := statnorm.Normalize(250, 0)

	s.Equal(250.0, stat.ClampedValue)
	s.Equal(0.0, stat.PercentOfCap)
	s.Equal(statnorm.StatusNormal, stat.CapStatus)
}

func (s *NormalizeTestSuite) TestFormatSignedPercent() {
	s.Equal("-10.0%", statnorm.FormatSignedPercent(-10))
	s.Equal("0.0%", statnorm.FormatSignedPercent(0))
	s.Equal("66.7%", statnorm.FormatSignedPercent(66.666))
}

func (s *NormalizeTestSuite) TestMilestoneReached() {
	s.False(statnorm.MilestoneReached(69.9, 70))
	s.True(statnorm.MilestoneReached(70, 70))
	s.True(statnorm.MilestoneReached(123.4, 70))
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeTestSuite))
}
