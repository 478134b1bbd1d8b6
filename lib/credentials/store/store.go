package store

import (
	"context"
	"encoding/json"
	credentialsapimodels "ets-backend/models/api/credentials"

	"github.com/pkg/errors"
	"github.com/redis/rueidis"
)

type Provider interface {
	Get(ctx context.Context, email string) (rec *credentialsapimodels.Record, err error)
	// Create stores rec unless the email is taken and reports whether it was stored.
	Create(ctx context.Context, rec credentialsapimodels.Record) (created bool, err error)
}

func NewInstance(client rueidis.Client, keyPrefix string) Provider {
	return &impl{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

type impl struct {
	client    rueidis.Client
	keyPrefix string
}

func (i impl) key(email string) string {
	return i.keyPrefix + ":" + email
}

func (i impl) Get(ctx context.Context, email string) (*credentialsapimodels.Record, error) {
	cmd := i.client.B().Get().Key(i.key(email)).Build()
	raw, err := i.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "redis get failed")
	}
	rec := credentialsapimodels.Record{}
	if err = json.Unmarshal(raw, &rec); err != nil {
		return nil, errors.Wrap(err, "broken credential record")
	}
	return &rec, nil
}

func (i impl) Create(ctx context.Context, rec credentialsapimodels.Record) (bool, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return false, err
	}
	cmd := i.client.B().Set().Key(i.key(rec.Email)).Value(rueidis.BinaryString(raw)).Nx().Build()
	err = i.client.Do(ctx, cmd).Error()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "redis set failed")
	}
	return true, nil
}
