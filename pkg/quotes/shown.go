package quotes

import (
	"context"
	"encoding/json"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/storage"
)

// RememberShown records q as the last quote shown in this session.
func RememberShown(ctx context.Context, session storage.Store, q Quote) error {
	data, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return session.Set(ctx, constants.LastQuoteKey, string(data))
}

// LastShown returns the last quote recorded with RememberShown.
func LastShown(ctx context.Context, session storage.Store) (Quote, error) {
	data, err := session.Get(ctx, constants.LastQuoteKey)
	if err != nil {
		return Quote{}, err
	}
	var q Quote
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return Quote{}, errors.NewStorageCorruptError(constants.LastQuoteKey, err)
	}
	return q, nil
}
