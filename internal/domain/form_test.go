package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectForm_Normalize(t *testing.T) {
	form := ProjectForm{
		OwnerProject: " My Project ",
		DisplayName:  "  My Project  ",
		Website:      "myproject.xyz",
		Twitter:      "@myproject",
		Telegram:     "myproject",
		MainGithub:   "myproject",
	}.Normalize()

	assert.Equal(t, "my-project", form.OwnerProject)
	assert.Equal(t, "My Project", form.DisplayName)
	assert.Equal(t, "https://myproject.xyz", form.Website)
	assert.Equal(t, "https://x.com/myproject", form.Twitter)
	assert.Equal(t, "https://t.me/myproject", form.Telegram)
	assert.Equal(t, "https://github.com/myproject", form.MainGithub)
}

func TestProjectForm_Validate(t *testing.T) {
	err := ProjectForm{}.Validate()
	assert.ErrorIs(t, err, ErrMissingOwnerProject)

	err = ProjectForm{OwnerProject: "uniswap"}.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "display_name", verr.Field)

	err = ProjectForm{OwnerProject: "uniswap", DisplayName: "Uniswap"}.Validate()
	assert.NoError(t, err)
}

func TestDisplayNameFromSlug(t *testing.T) {
	assert.Equal(t, "My Project", DisplayNameFromSlug("my-project"))
	assert.Equal(t, "Yield Vaults", DisplayNameFromSlug("yield_vaults"))
	assert.Equal(t, "Uniswap", DisplayNameFromSlug("uniswap"))
}
