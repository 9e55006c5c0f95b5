package matching

import (
	"testing"

	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var directory = []domain.ProjectRecord{
	{OwnerProject: "uniswap", DisplayName: "Uniswap", Website: "https://uniswap.org", MainGithub: "https://github.com/Uniswap"},
	{OwnerProject: "unisat", DisplayName: "UniSat", Website: "https://unisat.io"},
	{OwnerProject: "aave", DisplayName: "Aave", Website: "https://aave.com", MainGithub: "https://github.com/aave"},
	{OwnerProject: "sushiswap", DisplayName: "SushiSwap", Website: "https://www.sushi.com"},
	{OwnerProject: "pancakeswap", DisplayName: "PancakeSwap", Website: "https://pancakeswap.finance"},
	{OwnerProject: "swapr", DisplayName: "Swapr", Website: "https://swapr.eth.limo"},
	{OwnerProject: "shapeshift", DisplayName: "ShapeShift", Website: "https://shapeshift.com"},
}

func TestMatcher_ExactOwner(t *testing.T) {
	matches := NewMatcher().Match("uniswap", directory)

	require.NotEmpty(t, matches)
	assert.Equal(t, "uniswap", matches[0].Record.OwnerProject)
	assert.Equal(t, domain.MatchExact, matches[0].Confidence)
	assert.Equal(t, domain.MatchFieldOwner, matches[0].Field)
}

func TestMatcher_ExactOwnerAfterNormalization(t *testing.T) {
	matches := NewMatcher().Match("  UniSwap ", directory)

	require.NotEmpty(t, matches)
	assert.Equal(t, domain.MatchExact, matches[0].Confidence)
	assert.Equal(t, "uniswap", matches[0].Record.OwnerProject)
}

func TestMatcher_ExactWebsiteIgnoresSchemeWwwSlash(t *testing.T) {
	for _, input := range []string{
		"https://sushi.com",
		"http://www.sushi.com/",
		"sushi.com",
		"www.sushi.com",
	} {
		matches := NewMatcher().Match(input, directory)
		require.NotEmpty(t, matches, "input %q", input)
		assert.Equal(t, "sushiswap", matches[0].Record.OwnerProject, "input %q", input)
		assert.Equal(t, domain.MatchExact, matches[0].Confidence, "input %q", input)
		assert.Equal(t, domain.MatchFieldWebsite, matches[0].Field, "input %q", input)
	}
}

func TestMatcher_ExactGithub(t *testing.T) {
	matches := NewMatcher().Match("https://github.com/aave", directory)

	require.NotEmpty(t, matches)
	assert.Equal(t, "aave", matches[0].Record.OwnerProject)
	assert.Equal(t, domain.MatchFieldGithub, matches[0].Field)
}

func TestMatcher_ExactBeforeSimilar(t *testing.T) {
	matches := NewMatcher().Match("uniswap", directory)

	sawSimilar := false
	for _, m := range matches {
		if m.Confidence == domain.MatchSimilar {
			sawSimilar = true
		}
		if sawSimilar {
			assert.Equal(t, domain.MatchSimilar, m.Confidence, "exact matches must precede similar ones")
		}
	}
}

func TestMatcher_SimilarFuzzy(t *testing.T) {
	matches := NewMatcher().Match("unsiwap", directory)

	require.NotEmpty(t, matches)
	owners := make([]string, 0, len(matches))
	for _, m := range matches {
		owners = append(owners, m.Record.OwnerProject)
	}
	assert.Contains(t, owners, "uniswap")
}

func TestMatcher_CapAtFive(t *testing.T) {
	matches := NewMatcher().Match("swap", directory)
	assert.LessOrEqual(t, len(matches), domain.MaxProjectMatches)
}

func TestMatcher_NoDuplicateRecords(t *testing.T) {
	matches := NewMatcher().Match("uniswap.org", directory)

	seen := make(map[string]int)
	for _, m := range matches {
		seen[m.Record.OwnerProject]++
	}
	for owner, n := range seen {
		assert.Equal(t, 1, n, "project %s reported %d times", owner, n)
	}
}

func TestMatcher_EmptyInputs(t *testing.T) {
	assert.Nil(t, NewMatcher().Match("", directory))
	assert.Nil(t, NewMatcher().Match("uniswap", nil))
}
