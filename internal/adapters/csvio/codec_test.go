package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_Decode(t *testing.T) {
	input := "chain_id,address,contract_name,owner_project,usage_category\n" +
		"eip155:1,0xAbC,Router,uniswap,dex\n" +
		"eip155:8453,0xDeF,,aave,\n"

	rows, err := NewCodec().Decode(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, domain.QueueRow{
		ChainID: "eip155:1", Address: "0xAbC", ContractName: "Router",
		OwnerProject: "uniswap", UsageCategory: "dex",
	}, rows[0])
	assert.Equal(t, "aave", rows[1].OwnerProject)
}

func TestCodec_DecodeIgnoresUnknownColumns(t *testing.T) {
	input := "chain_id,address,deployer,owner_project\n" +
		"eip155:1,0xabc,0xdeadbeef,uniswap\n"

	rows, err := NewCodec().Decode(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "uniswap", rows[0].OwnerProject)
	assert.Empty(t, rows[0].ContractName)
}

func TestCodec_DecodeMalformed(t *testing.T) {
	input := "chain_id,address\n\"unterminated\n"

	_, err := NewCodec().Decode(strings.NewReader(input))
	assert.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	rows := []domain.QueueRow{
		{ChainID: "eip155:1", Address: "0xabc", ContractName: "Router", OwnerProject: "uniswap", UsageCategory: "dex"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewCodec().Encode(&buf, rows))
	assert.Contains(t, buf.String(), "chain_id,address,contract_name,owner_project,usage_category")

	decoded, err := NewCodec().Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, decoded)
}
