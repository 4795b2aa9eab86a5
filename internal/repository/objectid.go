package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// parseObjectID converts a client-supplied id into an ObjectID, normalizing
// every parse failure to bson.ErrInvalidHex. The driver only returns
// ErrInvalidHex for wrong-length input; a 24-character string with non-hex
// characters fails with a hex decoding error instead, which the HTTP layer
// could not classify as a client error.
func parseObjectID(id string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("invalid object id %q: %w", id, bson.ErrInvalidHex)
	}

	return objectID, nil
}
