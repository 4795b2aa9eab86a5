package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseObjectID(t *testing.T) {
	t.Parallel()

	valid := bson.NewObjectID().Hex()
	objectID, err := parseObjectID(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, objectID.Hex())
}

func TestParseObjectID_NonHexWithCorrectLength(t *testing.T) {
	t.Parallel()

	// 24 characters: the driver fails with a hex decode error here, not
	// ErrInvalidHex, so the helper has to normalize it.
	_, err := parseObjectID("zzzzzzzzzzzzzzzzzzzzzzzz")
	assert.ErrorIs(t, err, bson.ErrInvalidHex)
}

func TestParseObjectID_WrongLength(t *testing.T) {
	t.Parallel()

	_, err := parseObjectID("123abc")
	assert.ErrorIs(t, err, bson.ErrInvalidHex)
}
