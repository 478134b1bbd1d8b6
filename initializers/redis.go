package initializers

import (
	"ets-backend/config"

	"github.com/pkg/errors"
	"github.com/redis/rueidis"
)

func InitRedis() (rueidis.Client, error) {
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{config.Conf.Redis.Addr},
		Password:    config.Conf.Redis.Password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	return client, nil
}
