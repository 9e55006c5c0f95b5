package domain

// ProjectRecord is one entry of the externally maintained project
// directory. The directory is fetched once per run and treated as an
// immutable reference set.
type ProjectRecord struct {
	OwnerProject string `json:"owner_project"`
	DisplayName  string `json:"display_name"`
	Website      string `json:"website,omitempty"`
	MainGithub   string `json:"main_github,omitempty"`
}

// MatchConfidence grades a directory match.
type MatchConfidence string

const (
	MatchExact   MatchConfidence = "exact"
	MatchSimilar MatchConfidence = "similar"
)

// MatchField names which record field produced the match.
type MatchField string

const (
	MatchFieldOwner   MatchField = "owner_project"
	MatchFieldWebsite MatchField = "website"
	MatchFieldGithub  MatchField = "github"
)

// ProjectMatch is a ranked duplicate-detection result. Matches inform the
// user; they never block submission.
type ProjectMatch struct {
	Record     ProjectRecord   `json:"record"`
	Confidence MatchConfidence `json:"confidence"`
	Field      MatchField      `json:"field"`
}

// MaxProjectMatches caps how many ranked matches are reported.
const MaxProjectMatches = 5
