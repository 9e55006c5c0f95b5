package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureAbsoluteURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare domain", input: "example.com", want: "https://example.com"},
		{name: "already https", input: "https://example.com", want: "https://example.com"},
		{name: "already http", input: "http://example.com", want: "http://example.com"},
		{name: "path preserved", input: "example.com/docs/", want: "https://example.com/docs/"},
		{name: "whitespace trimmed", input: "  example.com ", want: "https://example.com"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureAbsoluteURL(tt.input)
			assert.Equal(t, tt.want, got)
			// applying again must not change the result
			assert.Equal(t, got, EnsureAbsoluteURL(got))
		})
	}
}

func TestNormalizeOwnerProject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already canonical", input: "uniswap", want: "uniswap"},
		{name: "uppercase", input: "Uniswap", want: "uniswap"},
		{name: "spaces to hyphens", input: "My Project", want: "my-project"},
		{name: "keeps underscores", input: "my_project", want: "my_project"},
		{name: "strips punctuation", input: "gro.w/the!pie", want: "growthepie"},
		{name: "leading separators trimmed", input: "--cool", want: "cool"},
		{name: "no usable characters", input: "!!!", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOwnerProject(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeOwnerProject(got))
			if got != "" {
				assert.Regexp(t, OwnerProjectPattern, got)
			}
		})
	}
}

func TestNormalizeTwitter(t *testing.T) {
	assert.Equal(t, "https://x.com/myproject", NormalizeTwitter("@myproject"))
	assert.Equal(t, "https://x.com/myproject", NormalizeTwitter("myproject"))
	assert.Equal(t, "https://twitter.com/myproject", NormalizeTwitter("https://twitter.com/myproject"))
	assert.Equal(t, "", NormalizeTwitter("  "))
}

func TestNormalizeTelegram(t *testing.T) {
	assert.Equal(t, "https://t.me/myproject", NormalizeTelegram("@myproject"))
	assert.Equal(t, "https://t.me/announcements", NormalizeTelegram("announcements"))
	assert.Equal(t, "https://t.me/myproject", NormalizeTelegram("https://t.me/myproject"))
}

func TestNormalizeGitHub(t *testing.T) {
	assert.Equal(t, "https://github.com/uniswap", NormalizeGitHub("uniswap"))
	assert.Equal(t, "https://github.com/Uniswap/v4-core", NormalizeGitHub("https://github.com/Uniswap/v4-core"))
}

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.example.com/", "example.com"},
		{"http://example.com", "example.com"},
		{"example.com///", "example.com"},
		{"HTTPS://Example.COM", "example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalURL(tt.input))
	}
}

func TestProjectForm_NormalizeFields(t *testing.T) {
	form := ProjectForm{
		OwnerProject: "My Project",
		DisplayName:  " My Project ",
		Website:      "myproject.xyz",
		MainGithub:   "myproject",
		Twitter:      "@myproject",
		Telegram:     "@myprojectchat",
	}

	got := form.Normalize()

	assert.Equal(t, "my-project", got.OwnerProject)
	assert.Equal(t, "My Project", got.DisplayName)
	assert.Equal(t, "https://myproject.xyz", got.Website)
	assert.Equal(t, "https://github.com/myproject", got.MainGithub)
	assert.Equal(t, "https://x.com/myproject", got.Twitter)
	assert.Equal(t, "https://t.me/myprojectchat", got.Telegram)

	// normalizing a normalized form is a no-op
	assert.Equal(t, got, got.Normalize())
}

func TestProjectForm_ValidateFields(t *testing.T) {
	valid := ProjectForm{OwnerProject: "uniswap", DisplayName: "Uniswap"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, ProjectForm{DisplayName: "X"}.Validate(), ErrMissingOwnerProject)

	var vErr *ValidationError
	err := ProjectForm{OwnerProject: "Bad Slug", DisplayName: "X"}.Validate()
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "owner_project", vErr.Field)
}
