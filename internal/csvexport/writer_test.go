package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxara/internal/domain"
	"taxara/internal/engine"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 11)
	assert.Equal(t, "Transaction ID", row[0])
	assert.Equal(t, "Issues", row[10])
}

func TestWriteRow(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	record := &domain.TransactionRecord{
		ID:             uuid.New(),
		Type:           domain.TransactionExpense,
		Amount:         50_000,
		CategoryName:   "Office Supplies",
		Description:    "printer paper",
		HasVatEvidence: false,
		OccurredAt:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	result := engine.NewExpenseValidator().Validate(record)

	require.NoError(t, w.WriteRow(record, &result))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, record.ID.String(), row[0])
	assert.Equal(t, "Office Supplies", row[2])
	assert.Equal(t, "50000.00", row[4])
	assert.Equal(t, "No", row[5])
	assert.Equal(t, "No", row[8])
	assert.Equal(t, "Disallowed", row[9])
	assert.Contains(t, row[10], "VAT evidence")
}

func TestWriteRow_ApprovedWithIssues(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	record := &domain.TransactionRecord{
		ID:             uuid.New(),
		Type:           domain.TransactionExpense,
		Amount:         120_000,
		CategoryName:   "Entertainment",
		Description:    "office party catering",
		HasVatEvidence: true,
		OccurredAt:     time.Now().UTC(),
	}
	result := engine.NewExpenseValidator().Validate(record)

	require.NoError(t, w.WriteRow(record, &result))
	w.Flush()

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, "Yes", row[8])
	assert.Equal(t, "Approved", row[9])
	assert.Contains(t, row[10], "party")
}
