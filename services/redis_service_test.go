package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestRedisRoundtrip(t *testing.T) {
	rdb, _ := testRedis(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := SetToRedis(ctx, rdb, "test:key", payload{Name: "hotel", Count: 3}, time.Minute); err != nil {
		t.Fatalf("SetToRedis: %v", err)
	}

	var got payload
	hit, err := GetFromRedis(ctx, rdb, "test:key", &got)
	if err != nil {
		t.Fatalf("GetFromRedis: %v", err)
	}
	if !hit {
		t.Fatal("esperaba cache hit")
	}
	if got.Name != "hotel" || got.Count != 3 {
		t.Errorf("got = %+v", got)
	}
}

func TestRedisMissIsNotError(t *testing.T) {
	rdb, _ := testRedis(t)

	var got map[string]interface{}
	hit, err := GetFromRedis(context.Background(), rdb, "no:existe", &got)
	if err != nil {
		t.Fatalf("un miss no debería ser error: %v", err)
	}
	if hit {
		t.Fatal("esperaba cache miss")
	}
}

func TestDeleteByPattern(t *testing.T) {
	rdb, mr := testRedis(t)
	ctx := context.Background()

	for _, key := range []string{"hotels:page:1", "hotels:page:2", "config:all"} {
		if err := SetToRedis(ctx, rdb, key, "x", time.Minute); err != nil {
			t.Fatalf("SetToRedis(%s): %v", key, err)
		}
	}

	if err := DeleteByPattern(ctx, rdb, "hotels:*"); err != nil {
		t.Fatalf("DeleteByPattern: %v", err)
	}

	if mr.Exists("hotels:page:1") || mr.Exists("hotels:page:2") {
		t.Error("las claves hotels:* deberían haberse borrado")
	}
	if !mr.Exists("config:all") {
		t.Error("config:all no debería haberse borrado")
	}
}
