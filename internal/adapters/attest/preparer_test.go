package attest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

func testPreparer(t *testing.T) *Preparer {
	t.Helper()
	cfg := &config.RuntimeConfig{
		Attest: config.AttestConfig{
			SchemaUID: testSchemaUID,
			Contracts: map[string]string{
				"eip155:8453": "0x4200000000000000000000000000000000000021",
			},
		},
	}
	enc, err := NewEncoder(cfg)
	require.NoError(t, err)
	return NewPreparer(cfg, enc)
}

func TestPreparer_Prepare(t *testing.T) {
	rows := []domain.QueueRow{
		{ChainID: "eip155:8453", Address: "0x1F98431c8aD98523631AE4a59f267346ea31F984", OwnerProject: "uniswap"},
		{ChainID: "eip155:8453", Address: "0x7a250d5630b4cf539739df2c5dacb4c659f2488d", OwnerProject: "uniswap"},
	}

	prepared, err := testPreparer(t).Prepare(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, prepared, 2)

	for _, att := range prepared {
		assert.Equal(t, "eip155:8453", att.ChainID)
		assert.Equal(t, "0x4200000000000000000000000000000000000021", att.To)
		assert.NotEmpty(t, att.Data)
	}
	assert.Equal(t, "0x1f98431c8ad98523631ae4a59f267346ea31f984", prepared[0].Subject)
}

func TestPreparer_MixedChainsRejected(t *testing.T) {
	rows := []domain.QueueRow{
		{ChainID: "eip155:8453", Address: "0x1f98431c8ad98523631ae4a59f267346ea31f984"},
		{ChainID: "eip155:1", Address: "0x7a250d5630b4cf539739df2c5dacb4c659f2488d"},
	}

	_, err := testPreparer(t).Prepare(context.Background(), rows)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "chain_id", verr.Field)
	assert.Equal(t, 1, verr.RowIndex)
}

func TestPreparer_UnconfiguredChain(t *testing.T) {
	rows := []domain.QueueRow{
		{ChainID: "eip155:10", Address: "0x1f98431c8ad98523631ae4a59f267346ea31f984"},
	}

	_, err := testPreparer(t).Prepare(context.Background(), rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no attestation contract")
}

func TestPreparer_EmptyRows(t *testing.T) {
	prepared, err := testPreparer(t).Prepare(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, prepared)
}
