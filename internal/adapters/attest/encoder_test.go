package attest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

const testSchemaUID = "0xb763e62d940bed6f527dd82418e146a904e62a297b8fa765c9b3e1f0bc6fdd68"

func testEncoder(t *testing.T) *Encoder {
	t.Helper()
	enc, err := NewEncoder(&config.RuntimeConfig{
		Attest: config.AttestConfig{SchemaUID: testSchemaUID},
	})
	require.NoError(t, err)
	return enc
}

func TestAttestCalldata_RequiresSchema(t *testing.T) {
	enc, err := NewEncoder(&config.RuntimeConfig{})
	require.NoError(t, err)

	_, err = enc.AttestCalldata(domain.PreparedAttestation{})
	assert.Error(t, err)
}

func TestEncodeLabel(t *testing.T) {
	enc := testEncoder(t)

	data, err := enc.EncodeLabel(domain.QueueRow{
		ChainID:       "eip155:8453",
		Address:       "0x1f98431c8ad98523631ae4a59f267346ea31f984",
		OwnerProject:  "uniswap",
		UsageCategory: "dex",
	})
	require.NoError(t, err)

	values, err := enc.labelArgs.Unpack(data)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "eip155:8453", values[0])
	assert.JSONEq(t, `{"owner_project":"uniswap","usage_category":"dex"}`, values[1].(string))
}

func TestEncodeLabel_OmitsEmptyTags(t *testing.T) {
	enc := testEncoder(t)

	data, err := enc.EncodeLabel(domain.QueueRow{
		ChainID:      "eip155:1",
		Address:      "0x1f98431c8ad98523631ae4a59f267346ea31f984",
		ContractName: "Router",
	})
	require.NoError(t, err)

	values, err := enc.labelArgs.Unpack(data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"contract_name":"Router"}`, values[1].(string))
}

func TestAttestCalldata(t *testing.T) {
	enc := testEncoder(t)

	label, err := enc.EncodeLabel(domain.QueueRow{ChainID: "eip155:8453", OwnerProject: "uniswap"})
	require.NoError(t, err)

	calldata, err := enc.AttestCalldata(domain.PreparedAttestation{
		ChainID: "eip155:8453",
		To:      "0x4200000000000000000000000000000000000021",
		Subject: "0x1f98431c8ad98523631ae4a59f267346ea31f984",
		Data:    label,
	})
	require.NoError(t, err)

	assert.Equal(t, enc.contract.Methods["attest"].ID, calldata[:4])
}

func TestMultiAttestCalldata(t *testing.T) {
	enc := testEncoder(t)

	atts := make([]domain.PreparedAttestation, 3)
	for i := range atts {
		label, err := enc.EncodeLabel(domain.QueueRow{ChainID: "eip155:8453", OwnerProject: "uniswap"})
		require.NoError(t, err)
		atts[i] = domain.PreparedAttestation{
			ChainID: "eip155:8453",
			To:      "0x4200000000000000000000000000000000000021",
			Subject: "0x1f98431c8ad98523631ae4a59f267346ea31f984",
			Data:    label,
		}
	}

	calldata, err := enc.MultiAttestCalldata(atts)
	require.NoError(t, err)

	assert.Equal(t, enc.contract.Methods["multiAttest"].ID, calldata[:4])
}
