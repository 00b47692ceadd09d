package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	testCases := []struct {
		rank     int
		expected string
	}{
		{1, "天榜第一"},
		{2, "天榜第二"},
		{5, "天榜第五"},
		{10, "天榜第十"},
		{11, "地榜第一"},
		{15, "地榜第五"},
		{20, "地榜第十"},
		{21, "人榜第一"},
		{25, "人榜第五"},
		{30, "人榜第十"},
		{0, ""},
		{-1, ""},
		{31, ""},
		{100, ""},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("rank %d", tc.rank), func(t *testing.T) {
			assert.Equal(t, tc.expected, Title(tc.rank))
		})
	}
}

func TestTierFor(t *testing.T) {
	testCases := []struct {
		rank     int
		expected Tier
	}{
		{1, TierHeaven},
		{10, TierHeaven},
		{11, TierEarth},
		{20, TierEarth},
		{21, TierHuman},
		{30, TierHuman},
		{0, TierNone},
		{31, TierNone},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("rank %d", tc.rank), func(t *testing.T) {
			assert.Equal(t, tc.expected, TierFor(tc.rank))
		})
	}
}

// Every rank inside a tier uses the ordinal of its offset within that tier,
// so rank 5, 15 and 25 share the same ordinal with different prefixes.
func TestTitleOrdinalRepeatsAcrossTiers(t *testing.T) {
	for offset := 1; offset <= 10; offset++ {
		heaven := Title(offset)
		earth := Title(offset + 10)
		human := Title(offset + 20)

		assert.Equal(t, heaven[len("天榜第"):], earth[len("地榜第"):])
		assert.Equal(t, earth[len("地榜第"):], human[len("人榜第"):])
	}
}
