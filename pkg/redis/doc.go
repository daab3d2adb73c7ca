// Package redis connects to Redis from environment configuration.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//	provider := secrets.NewRedisProvider(client, "cookiekit:key")
package redis
