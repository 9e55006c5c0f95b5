package adapters

import (
	"github.com/google/wire"

	"github.com/openlabels/oli-cli/internal/adapters/attest"
	"github.com/openlabels/oli-cli/internal/adapters/contribution"
	"github.com/openlabels/oli-cli/internal/adapters/csvio"
	"github.com/openlabels/oli-cli/internal/adapters/directory"
	"github.com/openlabels/oli-cli/internal/adapters/interactive"
	"github.com/openlabels/oli-cli/internal/adapters/matching"
	queuerepo "github.com/openlabels/oli-cli/internal/adapters/repository/queue"
	"github.com/openlabels/oli-cli/internal/adapters/wallet"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// StorageSet provides the file-backed queue repository
var StorageSet = wire.NewSet(
	queuerepo.NewFileStore,
	wire.Bind(new(usecase.QueueRepository), new(*queuerepo.FileStore)),
)

// CSVSet provides the queue CSV codec
var CSVSet = wire.NewSet(
	csvio.NewCodec,
	wire.Bind(new(usecase.CSVCodec), new(*csvio.Codec)),
)

// DirectorySet provides the platform directory client and project matcher
var DirectorySet = wire.NewSet(
	directory.NewClient,
	wire.Bind(new(usecase.DirectoryClient), new(*directory.Client)),

	matching.NewMatcher,
	wire.Bind(new(usecase.ProjectMatcher), new(*matching.Matcher)),
)

// AttestSet provides row validation and transaction building
var AttestSet = wire.NewSet(
	attest.NewEncoder,

	attest.NewValidator,
	wire.Bind(new(usecase.RowValidator), new(*attest.Validator)),

	attest.NewPreparer,
	wire.Bind(new(usecase.TransactionPreparer), new(*attest.Preparer)),

	attest.NewSubmitter,
	wire.Bind(new(usecase.AttestationSubmitter), new(*attest.Submitter)),
)

// WalletSet provides the JSON-RPC wallet bridge
var WalletSet = wire.NewSet(
	wallet.NewBridge,
	wire.Bind(new(usecase.WalletBridge), new(*wallet.Bridge)),
)

// ContributionSet provides the profiler and contribution API client
var ContributionSet = wire.NewSet(
	contribution.NewClient,
	wire.Bind(new(usecase.ContributionClient), new(*contribution.Client)),
)

// InteractiveSet provides terminal prompts
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmer,
	wire.Bind(new(usecase.Confirmer), new(*interactive.Confirmer)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	StorageSet,
	CSVSet,
	DirectorySet,
	AttestSet,
	WalletSet,
	ContributionSet,
	InteractiveSet,
)
