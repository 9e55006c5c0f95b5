package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProjectForm holds the project metadata edited through the contribution
// flow. Nothing here is persisted by the CLI beyond the working file;
// durability comes from the contribution API's pull requests.
type ProjectForm struct {
	OwnerProject string `json:"ownerProject" yaml:"name"`
	DisplayName  string `json:"displayName" yaml:"display_name"`
	Description  string `json:"description" yaml:"description,omitempty"`
	Website      string `json:"website" yaml:"website,omitempty"`
	MainGithub   string `json:"mainGithub" yaml:"main_github,omitempty"`
	Twitter      string `json:"twitter" yaml:"twitter,omitempty"`
	Telegram     string `json:"telegram" yaml:"telegram,omitempty"`
}

// Normalize applies the field normalizers to every member and returns the
// canonical form. Safe to apply repeatedly.
func (f ProjectForm) Normalize() ProjectForm {
	return ProjectForm{
		OwnerProject: NormalizeOwnerProject(f.OwnerProject),
		DisplayName:  strings.TrimSpace(f.DisplayName),
		Description:  strings.TrimSpace(f.Description),
		Website:      EnsureAbsoluteURL(f.Website),
		MainGithub:   NormalizeGitHub(f.MainGithub),
		Twitter:      NormalizeTwitter(f.Twitter),
		Telegram:     NormalizeTelegram(f.Telegram),
	}
}

// DisplayNameFromSlug derives a presentable display name from an owner
// slug, e.g. "my-project" becomes "My Project".
func DisplayNameFromSlug(slug string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(words)
}

// Validate checks the fields a contribution cannot be submitted without.
func (f ProjectForm) Validate() error {
	if f.OwnerProject == "" {
		return ErrMissingOwnerProject
	}
	if !OwnerProjectPattern.MatchString(f.OwnerProject) {
		return &ValidationError{Field: "owner_project", Message: "must be a lowercase slug (letters, digits, - and _)"}
	}
	if strings.TrimSpace(f.DisplayName) == "" {
		return &ValidationError{Field: "display_name", Message: "display name is required"}
	}
	return nil
}
