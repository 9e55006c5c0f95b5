package attest

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

// easABI covers the two attestation service entry points the workflow
// uses. Matches the EAS v1 interface.
const easABI = `[
	{
		"name": "attest",
		"type": "function",
		"stateMutability": "payable",
		"inputs": [
			{
				"name": "request",
				"type": "tuple",
				"components": [
					{"name": "schema", "type": "bytes32"},
					{
						"name": "data",
						"type": "tuple",
						"components": [
							{"name": "recipient", "type": "address"},
							{"name": "expirationTime", "type": "uint64"},
							{"name": "revocable", "type": "bool"},
							{"name": "refUID", "type": "bytes32"},
							{"name": "data", "type": "bytes"},
							{"name": "value", "type": "uint256"}
						]
					}
				]
			}
		],
		"outputs": [{"name": "", "type": "bytes32"}]
	},
	{
		"name": "multiAttest",
		"type": "function",
		"stateMutability": "payable",
		"inputs": [
			{
				"name": "multiRequests",
				"type": "tuple[]",
				"components": [
					{"name": "schema", "type": "bytes32"},
					{
						"name": "data",
						"type": "tuple[]",
						"components": [
							{"name": "recipient", "type": "address"},
							{"name": "expirationTime", "type": "uint64"},
							{"name": "revocable", "type": "bool"},
							{"name": "refUID", "type": "bytes32"},
							{"name": "data", "type": "bytes"},
							{"name": "value", "type": "uint256"}
						]
					}
				]
			}
		],
		"outputs": [{"name": "", "type": "bytes32[]"}]
	}
]`

// attestationRequestData mirrors the EAS AttestationRequestData tuple.
type attestationRequestData struct {
	Recipient      common.Address
	ExpirationTime uint64
	Revocable      bool
	RefUID         [32]byte
	Data           []byte
	Value          *big.Int
}

type attestationRequest struct {
	Schema [32]byte
	Data   attestationRequestData
}

type multiAttestationRequest struct {
	Schema [32]byte
	Data   []attestationRequestData
}

// labelTags is the tags_json document attested for a contract. Empty
// fields are omitted from the payload.
type labelTags struct {
	ContractName  string `json:"contract_name,omitempty"`
	OwnerProject  string `json:"owner_project,omitempty"`
	UsageCategory string `json:"usage_category,omitempty"`
}

// Encoder builds ABI payloads for the attestation service. Label data is
// the schema tuple (string chain_id, string tags_json); transaction
// calldata wraps it in attest or multiAttest requests.
type Encoder struct {
	schema    common.Hash
	contract  abi.ABI
	labelArgs abi.Arguments
}

// NewEncoder creates an encoder bound to the configured schema UID. A
// missing schema only fails once calldata is requested, so read-only
// commands work without attestation config.
func NewEncoder(cfg *config.RuntimeConfig) (*Encoder, error) {
	parsed, err := abi.JSON(strings.NewReader(easABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse attestation ABI: %w", err)
	}

	stringType, err := abi.NewType("string", "", nil)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		schema:   common.HexToHash(cfg.Attest.SchemaUID),
		contract: parsed,
		labelArgs: abi.Arguments{
			{Type: stringType, Name: "chain_id"},
			{Type: stringType, Name: "tags_json"},
		},
	}, nil
}

// EncodeLabel packs one row into the schema's label payload.
func (e *Encoder) EncodeLabel(row domain.QueueRow) ([]byte, error) {
	tags, err := json.Marshal(labelTags{
		ContractName:  row.ContractName,
		OwnerProject:  row.OwnerProject,
		UsageCategory: row.UsageCategory,
	})
	if err != nil {
		return nil, err
	}

	data, err := e.labelArgs.Pack(row.ChainID, string(tags))
	if err != nil {
		return nil, fmt.Errorf("failed to encode label data: %w", err)
	}
	return data, nil
}

// AttestCalldata builds the attest() calldata for one prepared row.
func (e *Encoder) AttestCalldata(att domain.PreparedAttestation) ([]byte, error) {
	if e.schema == (common.Hash{}) {
		return nil, fmt.Errorf("no attestation schema configured")
	}
	return e.contract.Pack("attest", attestationRequest{
		Schema: e.schema,
		Data:   e.requestData(att),
	})
}

// MultiAttestCalldata builds the multiAttest() calldata covering all
// prepared rows in one request.
func (e *Encoder) MultiAttestCalldata(atts []domain.PreparedAttestation) ([]byte, error) {
	if e.schema == (common.Hash{}) {
		return nil, fmt.Errorf("no attestation schema configured")
	}
	data := make([]attestationRequestData, 0, len(atts))
	for _, att := range atts {
		data = append(data, e.requestData(att))
	}
	return e.contract.Pack("multiAttest", []multiAttestationRequest{
		{Schema: e.schema, Data: data},
	})
}

func (e *Encoder) requestData(att domain.PreparedAttestation) attestationRequestData {
	return attestationRequestData{
		Recipient: common.HexToAddress(att.Subject),
		Revocable: true,
		Data:      att.Data,
		Value:     big.NewInt(0),
	}
}
